package core

// Color is the foreground color of a screen cell. It holds either an ANSI
// 256-color code ("11") or a hex triplet ("#1fa3c4"); the empty string means
// the terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightCyan   Color = "14"
	ColorGray         Color = "245"
)
