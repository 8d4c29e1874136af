package render

import (
	"image"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/matzehuels/boxicon/pkg/icon"
)

// vectorEngine builds the icon from tdewolff/canvas paths. One canvas unit
// maps to one pixel. The canvas y-axis points up, so image rows are flipped
// on the way in.
type vectorEngine struct{}

func (vectorEngine) Name() string { return EngineVector }

func (vectorEngine) Render(w io.Writer, g icon.Geometry, p icon.Palette) error {
	size := float64(g.Size)
	c := canvas.New(size, size)
	ctx := canvas.NewContext(c)

	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(p.Accent)
	ctx.DrawPath(0, 0, canvas.Rectangle(size, size))

	drawRounded(ctx, g.Size, g.Frame(), g.FrameRadius, p.Accent)
	drawRounded(ctx, g.Size, g.Box(), g.BoxRadius, p.Box)

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(p.Line)
	ctx.SetStrokeWidth(float64(g.LineWidth))
	ctx.SetStrokeCapper(canvas.ButtCap)
	drawSegment(ctx, g.Size, g.Horizontal)
	drawSegment(ctx, g.Size, g.Vertical)

	// LinearColorSpace blends the sRGB values directly, matching gg.
	return renderers.PNG(canvas.DPMM(1.0), canvas.LinearColorSpace{})(w, c)
}

func drawRounded(ctx *canvas.Context, size int, r image.Rectangle, radius int, c color.Color) {
	ctx.SetFillColor(c)
	path := canvas.RoundedRectangle(float64(r.Dx()), float64(r.Dy()), float64(radius))
	ctx.DrawPath(float64(r.Min.X), float64(size-r.Max.Y), path)
}

func drawSegment(ctx *canvas.Context, size int, s icon.Segment) {
	x0, y0, x1, y1 := pixelSpan(s)
	y0, y1 = float64(size)-y0, float64(size)-y1
	ctx.DrawPath(x0, y0, canvas.Line(x1-x0, y1-y0))
}
