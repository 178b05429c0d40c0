package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for sprites, overlays and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// spritePalette is cycled through when sprites need distinct colors.
var spritePalette = []Color{
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightGreen,
	ColorOrange,
	ColorBrightBlue,
	ColorWhite,
}

// PaletteColor returns a stable color for the n-th sprite.
func PaletteColor(n uint64) Color {
	return spritePalette[n%uint64(len(spritePalette))]
}
