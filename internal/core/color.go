package core

// Color is an index into the game palette.
// The platform maps each entry to an ANSI 256-color code.
type Color uint8

// Palette entries. The first eight mirror the eight-color level palette.
const (
	ColorDefault Color = iota
	ColorInk
	ColorDusk
	ColorMoss
	ColorLeaf
	ColorSand
	ColorEmber
	ColorBlood
	ColorSky
	ColorGray
	ColorWhite
	ColorPortal
)
