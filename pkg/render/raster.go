package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/boxicon/pkg/icon"
)

// rasterEngine draws with fogleman/gg. gg composites fills source-over,
// so the translucent box blends into the accent background.
type rasterEngine struct{}

func (rasterEngine) Name() string { return EngineRaster }

func (rasterEngine) Render(w io.Writer, g icon.Geometry, p icon.Palette) error {
	dc := gg.NewContext(g.Size, g.Size)

	dc.SetColor(p.Accent)
	dc.Clear()

	fillRounded(dc, g.Frame(), g.FrameRadius, p.Accent)
	fillRounded(dc, g.Box(), g.BoxRadius, p.Box)

	dc.SetColor(p.Line)
	dc.SetLineWidth(float64(g.LineWidth))
	dc.SetLineCapButt()
	strokeSegment(dc, g.Horizontal)
	strokeSegment(dc, g.Vertical)

	return dc.EncodePNG(w)
}

func fillRounded(dc *gg.Context, r image.Rectangle, radius int, c color.Color) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	if radius > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, float64(radius))
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	dc.SetColor(c)
	dc.Fill()
}

func strokeSegment(dc *gg.Context, s icon.Segment) {
	dc.DrawLine(pixelSpan(s))
	dc.Stroke()
}
