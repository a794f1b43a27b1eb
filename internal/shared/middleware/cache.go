// Package middleware holds HTTP middleware shared by the web handlers.
package middleware

import (
	"fmt"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	wroteHeader bool
	maxAge      time.Duration
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.wroteHeader = true
		if code == http.StatusOK {
			r.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(r.maxAge.Seconds())))
		} else {
			r.Header().Set("Cache-Control", "no-store")
		}
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// Cacheable marks successful GET responses as publicly cacheable for
// maxAge. Palette data is compiled in, so responses only change between
// releases. Error responses are never cached.
func Cacheable(maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(&statusRecorder{ResponseWriter: w, maxAge: maxAge}, r)
		})
	}
}
