package core

// Color is a foreground color for a screen cell.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorRust // Martian rock
	ColorDust // background doodads and platforms

	colorCount
)

// ANSI 256-color codes, indexed by Color. ColorDefault has none.
var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorRust:          "130",
	ColorDust:          "180",
}

// ANSI returns the 256-color code of c, or "" for the terminal default and
// unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette lists every defined color, ColorDefault first.
func Palette() []Color {
	p := make([]Color, colorCount)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}
