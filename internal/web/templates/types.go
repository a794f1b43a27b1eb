package templates

// PaletteCard is one palette as shown in the gallery.
type PaletteCard struct {
	Name               string
	Colors             []string
	Category           string
	ColorblindFriendly bool
}

type GalleryPage struct {
	Title    string
	Filter   string // Human-readable filter description
	Palettes []PaletteCard
	Error    string
}

// DerivedRow is one derived colormap on a palette page.
type DerivedRow struct {
	Label  string
	Colors []string
}

type PalettePage struct {
	Palette PaletteCard
	Order   []int
	N       int
	Brew    string
	Reverse bool
	Derived []DerivedRow
	Error   string
}
