package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorDim
)
