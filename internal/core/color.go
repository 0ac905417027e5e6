package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Palette used by the board, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorDarkOrange
	ColorGray
)
