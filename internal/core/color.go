package core

// Color is a terminal palette slot for a screen cell.
// The platform layer maps each slot to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorOrange
	ColorBrightWhite
)

// Style is the foreground and background of a single cell.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Plain is the zero style.
var Plain = Style{}

// Fg returns a style with only a foreground color.
func Fg(c Color) Style {
	return Style{Fg: c}
}

// WithBg returns a copy of s with the given background.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithBold returns a copy of s rendered bold.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}
