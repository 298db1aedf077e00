package render

// Palette assigns colors to scene elements
type Palette struct {
	Background RGB
	Paddle     RGB
	Ball       RGB
	Score      RGB
	MiddleLine RGB
	Notice     RGB
}

// DefaultPalette is white paddles and a yellow ball on black
func DefaultPalette() Palette {
	return Palette{
		Background: RGBBlack,
		Paddle:     RGBWhite,
		Ball:       RGBYellow,
		Score:      RGBWhite,
		MiddleLine: RGBWhite,
		Notice:     RGBGray,
	}
}
