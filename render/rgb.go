package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBYellow = RGB{255, 255, 0}
	RGBGray   = RGB{128, 128, 128}
)

// TcellColor converts to a tcell true color
func (c RGB) TcellColor() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
