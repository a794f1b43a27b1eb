package util

import (
	"errors"
	"testing"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Direction
		wantErr bool
	}{
		{"", domain.Forward, false},
		{"1", domain.Forward, false},
		{"+1", domain.Forward, false},
		{"forward", domain.Forward, false},
		{"-1", domain.Reverse, false},
		{"Reverse", domain.Reverse, false},
		{"0", 0, true},
		{"2", 0, true},
		{"sideways", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidDirection) {
					t.Errorf("expected ErrInvalidDirection, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTriState(t *testing.T) {
	tests := []struct {
		in      string
		want    *bool
		wantErr bool
	}{
		{"", nil, false},
		{"any", nil, false},
		{"true", domain.Ptr(true), false},
		{"1", domain.Ptr(true), false},
		{"yes", domain.Ptr(true), false},
		{"false", domain.Ptr(false), false},
		{"no", domain.Ptr(false), false},
		{"maybe", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTriState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTriState(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("ParseTriState(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		max     int
		want    int
		wantErr bool
	}{
		{"", 10, 0, false},
		{"5", 10, 5, false},
		{"10", 10, 10, false},
		{"11", 10, 0, true},
		{"100000", 0, 100000, false},
		{"-3", 0, 0, true},
		{"many", 0, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.in, tt.max)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCount(%q, %d) error = %v, wantErr %v", tt.in, tt.max, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, domain.ErrInvalidCount) {
			t.Errorf("ParseCount(%q) expected ErrInvalidCount, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCount(%q, %d) = %d, want %d", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatFilter(t *testing.T) {
	if got := FormatFilter(domain.Filter{}); got != "all palettes" {
		t.Errorf("empty filter = %q", got)
	}
	f := domain.Filter{Sequential: domain.Ptr(true), ColorblindFriendly: domain.Ptr(false)}
	if got := FormatFilter(f); got != "sequential, not colorblind friendly" {
		t.Errorf("FormatFilter = %q", got)
	}
}
