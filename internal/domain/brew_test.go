package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var abbott = Palette{
	Name:   "Abbott",
	Colors: []string{"#950404", "#e04b28", "#c38961", "#9f5630", "#388f30", "#0f542f", "#007d82", "#004042"},
	Order:  []int{1, 6, 5, 4, 3, 8, 2, 7},
}

var alkalay1 = Palette{
	Name:               "Alkalay1",
	Colors:             []string{"#241d1d", "#5b2125", "#8d3431", "#bf542e", "#e9a800"},
	Order:              []int{5, 1, 4, 3, 2},
	ColorblindFriendly: true,
	Sequential:         true,
}

func TestBrewDiscrete_PriorityRank(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"rank one", 1, []string{"#950404"}},
		{"ranks one and two", 2, []string{"#950404", "#007d82"}},
		{"ranks one to four in storage order", 4, []string{"#950404", "#9f5630", "#388f30", "#007d82"}},
		{"whole palette", 8, abbott.Colors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscreteBrew(abbott, tt.n, Forward, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiscreteBrew(Abbott, %d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestBrewDiscrete_PriorityRankReversed(t *testing.T) {
	got, err := DiscreteBrew(abbott, 4, Reverse, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#007d82", "#388f30", "#9f5630", "#950404"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewDiscrete_OverrideOrderTakesPrefix(t *testing.T) {
	got, err := DiscreteBrew(abbott, 4, Forward, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(abbott.Colors[:4], got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = DiscreteBrew(abbott, 3, Reverse, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#004042", "#007d82", "#0f542f"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverse prefix mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewDiscrete_CyclingUsesPrefix(t *testing.T) {
	got, err := DiscreteBrew(abbott, 8+3, Forward, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := append(append([]string{}, abbott.Colors...), abbott.Colors[:3]...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewDiscrete_CyclingReversed(t *testing.T) {
	got, err := DiscreteBrew(alkalay1, 7, Reverse, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#e9a800", "#bf542e", "#8d3431", "#5b2125", "#241d1d", "#e9a800", "#bf542e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewDiscrete_ZeroIsEmpty(t *testing.T) {
	got, err := DiscreteBrew(abbott, 0, Forward, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no colors, got %v", got)
	}
}

func TestBrewDiscrete_Length(t *testing.T) {
	for _, p := range []Palette{abbott, alkalay1} {
		for n := 1; n <= 3*p.NumColors(); n++ {
			for _, override := range []bool{false, true} {
				got, err := DiscreteBrew(p, n, Forward, override)
				if err != nil {
					t.Fatalf("%s n=%d: unexpected error: %v", p.Name, n, err)
				}
				if len(got) != n {
					t.Errorf("%s n=%d override=%v: got %d colors", p.Name, n, override, len(got))
				}
			}
		}
	}
}

func TestBrewContinuous_Endpoints(t *testing.T) {
	for _, p := range []Palette{abbott, alkalay1} {
		for n := p.NumColors(); n <= 64; n++ {
			got, err := ContinuousBrew(p, n, Forward)
			if err != nil {
				t.Fatalf("%s n=%d: unexpected error: %v", p.Name, n, err)
			}
			if len(got) != n {
				t.Fatalf("%s n=%d: got %d colors", p.Name, n, len(got))
			}
			if !strings.EqualFold(got[0], p.Colors[0]) {
				t.Errorf("%s n=%d: first = %s, want %s", p.Name, n, got[0], p.Colors[0])
			}
			if last := p.Colors[p.NumColors()-1]; !strings.EqualFold(got[n-1], last) {
				t.Errorf("%s n=%d: last = %s, want %s", p.Name, n, got[n-1], last)
			}
		}
	}
}

func TestBrewContinuous_AtPaletteSizeReproducesBaseColors(t *testing.T) {
	got, err := ContinuousBrew(abbott, abbott.NumColors(), Forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(abbott.Colors, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewContinuous_Midpoint(t *testing.T) {
	p := Palette{Name: "bw", Colors: []string{"#000000", "#ffffff"}, Order: []int{1, 2}}
	got, err := ContinuousBrew(p, 3, Forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#000000", "#808080", "#ffffff"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewContinuous_InterpolatesAlpha(t *testing.T) {
	p := Palette{Name: "fade", Colors: []string{"#ff000000", "#ff0000ff"}, Order: []int{1, 2}}
	got, err := ContinuousBrew(p, 3, Forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#ff000000", "#ff000080", "#ff0000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewContinuous_SingleColor(t *testing.T) {
	p := Palette{Name: "mono", Colors: []string{"#123456"}, Order: []int{1}}
	got, err := ContinuousBrew(p, 4, Forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#123456", "#123456", "#123456", "#123456"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBrewContinuous_OneSampleIsFirstColor(t *testing.T) {
	got, err := ContinuousBrew(abbott, 1, Forward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"#950404"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReversalLaw(t *testing.T) {
	cases := []struct {
		brew BrewType
		n    int
	}{
		{BrewContinuous, 1},
		{BrewContinuous, 8},
		{BrewContinuous, 20},
		{BrewContinuous, 256},
		{BrewDiscrete, 3},
		{BrewDiscrete, 5},
		{BrewDiscrete, 8},
		{BrewDiscrete, 16},
	}
	for _, tc := range cases {
		fwd, err := DeriveColors(abbott, BrewOptions{N: tc.n, Brew: tc.brew, Direction: Forward})
		if err != nil {
			t.Fatalf("%s n=%d: unexpected error: %v", tc.brew, tc.n, err)
		}
		rev, err := DeriveColors(abbott, BrewOptions{N: tc.n, Brew: tc.brew, Direction: Reverse})
		if err != nil {
			t.Fatalf("%s n=%d: unexpected error: %v", tc.brew, tc.n, err)
		}
		if diff := cmp.Diff(reversed(fwd), rev); diff != "" {
			t.Errorf("%s n=%d: reverse is not the mirror of forward (-want +got):\n%s", tc.brew, tc.n, diff)
		}
	}
}

func TestDeriveColors_RoundTrip(t *testing.T) {
	got, err := DeriveColors(abbott, BrewOptions{N: abbott.NumColors(), Brew: BrewDiscrete, Direction: Forward, OverrideOrder: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(abbott.Colors, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveColors_Defaults(t *testing.T) {
	got, err := DeriveColors(abbott, BrewOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(abbott.Colors, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveColors_InfersBrew(t *testing.T) {
	// More colors than the palette holds is continuous, so colors get
	// interpolated instead of cycled.
	got, err := DeriveColors(abbott, BrewOptions{N: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := ContinuousBrew(abbott, 20, Forward)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expected continuous brew (-want +got):\n%s", diff)
	}

	got, err = DeriveColors(abbott, BrewOptions{N: 20, Brew: BrewDiscrete})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[8] != abbott.Colors[0] {
		t.Errorf("explicit discrete brew should cycle, got %v", got)
	}

	got, err = DeriveColors(abbott, BrewOptions{N: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"#950404", "#9f5630", "#388f30", "#007d82"}, got); diff != "" {
		t.Errorf("expected discrete brew (-want +got):\n%s", diff)
	}
}

func TestDeriveColors_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts BrewOptions
		want error
	}{
		{"direction 2", BrewOptions{Direction: 2}, ErrInvalidDirection},
		{"direction -2", BrewOptions{Direction: -2}, ErrInvalidDirection},
		{"unknown brew", BrewOptions{Brew: "smooth"}, ErrUnknownBrewType},
		{"negative count", BrewOptions{N: -1}, ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveColors(abbott, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != nil {
				t.Errorf("expected no colors on failure, got %v", got)
			}
		})
	}
}

func TestBrew_InvalidDirection(t *testing.T) {
	if _, err := DiscreteBrew(abbott, 3, 0, false); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("BrewDiscrete: expected ErrInvalidDirection, got %v", err)
	}
	if _, err := ContinuousBrew(abbott, 3, 3); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("BrewContinuous: expected ErrInvalidDirection, got %v", err)
	}
}

func TestDeriveColormap_Name(t *testing.T) {
	cm, err := DeriveColormap(abbott, BrewOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cm.Name != "Abbott" || cm.N() != 8 {
		t.Errorf("got %s with %d colors, want Abbott with 8", cm.Name, cm.N())
	}

	cm, err = DeriveColormap(abbott, BrewOptions{N: 5, Direction: Reverse})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cm.Name != "Abbott_r" || cm.N() != 5 {
		t.Errorf("got %s with %d colors, want Abbott_r with 5", cm.Name, cm.N())
	}
}

func TestParseBrewType(t *testing.T) {
	tests := []struct {
		in      string
		want    BrewType
		wantErr bool
	}{
		{"", BrewAuto, false},
		{"auto", BrewAuto, false},
		{"discrete", BrewDiscrete, false},
		{"continuous", BrewContinuous, false},
		{"linear", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBrewType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBrewType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownBrewType) {
			t.Errorf("ParseBrewType(%q) error = %v, want ErrUnknownBrewType", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseBrewType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
