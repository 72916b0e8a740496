package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette shared by all games. ColorDefault leaves the terminal color untouched.
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

// cycle is the order used by CycleColor.
var cycle = []Color{
	ColorRed, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorOrange,
}

// CycleColor returns a palette color for index i, wrapping around.
// Games use it for rows of bricks, balloons and tetromino kinds.
func CycleColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}
