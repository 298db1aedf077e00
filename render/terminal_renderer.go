package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TerminalRenderer is a Canvas over a tcell screen
// Each cell covers cellW x cellH logical pixels; a shape paints every cell it overlaps,
// except that shapes thinner than a cell paint only the cell line under their center
type TerminalRenderer struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	bg     RGB
}

// NewTerminalRenderer wraps an initialized screen
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH int) *TerminalRenderer {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &TerminalRenderer{
		screen: screen,
		cellW:  float64(cellW),
		cellH:  float64(cellH),
	}
}

// LogicalSize is the screen size in logical pixels
func (r *TerminalRenderer) LogicalSize() (w, h float64) {
	cols, rows := r.screen.Size()
	return float64(cols) * r.cellW, float64(rows) * r.cellH
}

// Clear fills the whole screen with bg
func (r *TerminalRenderer) Clear(bg RGB) {
	r.bg = bg
	r.screen.Fill(' ', tcell.StyleDefault.Background(bg.TcellColor()))
}

// FillRect paints solid cells
func (r *TerminalRenderer) FillRect(x, y, w, h float64, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	cols, rows := r.screen.Size()
	c0, c1 := cellSpan(x, w, r.cellW, cols)
	r0, r1 := cellSpan(y, h, r.cellH, rows)

	style := tcell.StyleDefault.Background(c.TcellColor())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// FillCircle paints cells whose area intersects the circle
func (r *TerminalRenderer) FillCircle(cx, cy, radius float64, c RGB) {
	if radius <= 0 {
		return
	}
	cols, rows := r.screen.Size()
	c0, c1 := cellSpan(cx-radius, radius*2, r.cellW, cols)
	r0, r1 := cellSpan(cy-radius, radius*2, r.cellH, rows)

	style := tcell.StyleDefault.Background(c.TcellColor())
	rr := radius * radius
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			// Nearest point of the cell rectangle to the circle center
			nx := math.Max(float64(col)*r.cellW, math.Min(cx, float64(col+1)*r.cellW))
			ny := math.Max(float64(row)*r.cellH, math.Min(cy, float64(row+1)*r.cellH))
			dx, dy := nx-cx, ny-cy
			if dx*dx+dy*dy < rr {
				r.screen.SetContent(col, row, ' ', nil, style)
				painted = true
			}
		}
	}

	// Tiny circles still get one cell
	if !painted {
		col, row := int(math.Floor(cx/r.cellW)), int(math.Floor(cy/r.cellH))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText writes text starting at the cell containing (x, y)
func (r *TerminalRenderer) DrawText(x, y float64, text string, c RGB) {
	cols, rows := r.screen.Size()
	row := int(math.Floor(y / r.cellH))
	if row < 0 || row >= rows {
		return
	}

	style := tcell.StyleDefault.Foreground(c.TcellColor()).Background(r.bg.TcellColor())
	col := int(math.Floor(x / r.cellW))
	for _, ch := range text {
		if col >= cols {
			break
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col += runewidth.RuneWidth(ch)
	}
}

// MeasureText returns the text extent: display width in cells by one cell high
func (r *TerminalRenderer) MeasureText(text string) (w, h float64) {
	return float64(runewidth.StringWidth(text)) * r.cellW, r.cellH
}

// Present shows the frame
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// cellSpan maps [pos, pos+size) onto an inclusive cell range clipped to [0, limit)
// Returns an empty range (lo > hi) when fully off screen
func cellSpan(pos, size, cell float64, limit int) (lo, hi int) {
	if size < cell {
		// Sub-cell shapes collapse onto the cell under their center
		lo = int(math.Floor((pos + size*0.5) / cell))
		hi = lo
	} else {
		lo = int(math.Floor(pos / cell))
		hi = int(math.Ceil((pos+size)/cell)) - 1
	}
	if lo < 0 {
		lo = 0
	}
	if hi >= limit {
		hi = limit - 1
	}
	return lo, hi
}
