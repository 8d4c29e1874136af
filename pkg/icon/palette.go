package icon

import "image/color"

// Palette holds the colors of the artwork. Colors are non-premultiplied so
// the translucent box color reads the same as its RGBA notation.
type Palette struct {
	Accent color.NRGBA // background fill and frame
	Box    color.NRGBA // inner box fill, slightly translucent
	Line   color.NRGBA // dimension lines
}

// DefaultPalette returns the brand colors.
func DefaultPalette() Palette {
	return Palette{
		Accent: color.NRGBA{R: 102, G: 126, B: 234, A: 255},
		Box:    color.NRGBA{R: 255, G: 255, B: 255, A: 230},
		Line:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
