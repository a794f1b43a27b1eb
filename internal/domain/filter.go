package domain

// Filter selects palettes by category flags. A nil field is ignored; a
// non-nil field keeps only palettes whose flag equals its value.
type Filter struct {
	Sequential         *bool
	Diverging          *bool
	ColorblindFriendly *bool
}

// Matches reports whether p passes every set predicate.
func (f Filter) Matches(p Palette) bool {
	return match(f.Sequential, p.Sequential) &&
		match(f.Diverging, p.Diverging) &&
		match(f.ColorblindFriendly, p.ColorblindFriendly)
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f.Sequential == nil && f.Diverging == nil && f.ColorblindFriendly == nil
}

func match(want *bool, got bool) bool {
	return want == nil || *want == got
}

// Ptr returns a pointer to b, for building filters inline.
func Ptr(b bool) *bool {
	return &b
}
