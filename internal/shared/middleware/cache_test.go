package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCacheable(t *testing.T) {
	tests := []struct {
		name   string
		method string
		status int
		want   string
	}{
		{"ok", http.MethodGet, http.StatusOK, "public, max-age=3600"},
		{"implicit ok", http.MethodGet, 0, "public, max-age=3600"},
		{"not found", http.MethodGet, http.StatusNotFound, "no-store"},
		{"post", http.MethodPost, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Cacheable(time.Hour)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("body"))
			}))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, "/", nil))
			if got := rec.Header().Get("Cache-Control"); got != tt.want {
				t.Errorf("Cache-Control = %q, want %q", got, tt.want)
			}
			if rec.Body.String() != "body" {
				t.Errorf("body = %q", rec.Body.String())
			}
		})
	}
}
