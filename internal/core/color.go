package core

// Color is a palette entry understood by every Canvas implementation.
// The terminal host maps it to ANSI 256-color codes; the window host to RGBA.
type Color uint8

// Palette. ColorBlack is the playfield background.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	default:
		return "default"
	}
}
