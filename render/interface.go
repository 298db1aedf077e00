package render

// Canvas is the drawing surface the scene is rendered onto
// All coordinates and sizes are logical pixels
type Canvas interface {
	Clear(bg RGB)
	FillRect(x, y, w, h float64, c RGB)
	FillCircle(cx, cy, radius float64, c RGB)
	DrawText(x, y float64, text string, c RGB)

	// MeasureText returns the drawn extent of text
	MeasureText(text string) (w, h float64)

	// Present flushes the frame to the output
	Present()
}
