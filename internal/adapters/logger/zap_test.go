package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		if _, err := New(lvl); err != nil {
			t.Errorf("New(%q) unexpected error: %v", lvl, err)
		}
	}
	if _, err := New("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core))

	l.Debug("derived colors", "palette", "Abbott", "n", 4)
	l.Error("derivation failed", "palette", "Nope")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "derived colors" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["palette"]; got != "Abbott" {
		t.Errorf("palette field = %v", got)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Errorf("second entry level = %v", entries[1].Level)
	}
}
