package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-colour codes.
type Color uint8

// Terminal colours available to the renderer.
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
	ColorPink
	ColorBeige
	ColorBrown
	ColorDarkGray
	ColorPurple
)
