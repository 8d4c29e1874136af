package render

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/matzehuels/boxicon/pkg/errors"
	"github.com/matzehuels/boxicon/pkg/icon"
)

// Engine names.
const (
	EngineRaster = "raster"
	EngineVector = "vector"
)

// Engine draws one icon and writes it to w as PNG.
// Implementations must be deterministic: the same geometry and palette
// always produce the same bytes.
type Engine interface {
	Name() string
	Render(w io.Writer, g icon.Geometry, p icon.Palette) error
}

var engines = map[string]Engine{
	EngineRaster: rasterEngine{},
	EngineVector: vectorEngine{},
}

// Engines returns the names of all available engines, sorted.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidEngine,
			"invalid engine: %s (must be one of: %s)", name, strings.Join(Engines(), ", "))
	}
	return e, nil
}

// RenderPNG renders the icon of the given size and returns the encoded PNG.
func RenderPNG(ctx context.Context, e Engine, size int, p icon.Palette) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := icon.NewGeometry(size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := e.Render(&buf, g, p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s with %s engine", icon.Filename(size), e.Name())
	}
	return buf.Bytes(), nil
}

// pixelSpan returns stroke endpoints covering every pixel of s, both
// endpoints included. Axis-aligned segments run along pixel centres and
// are stretched half a pixel past each end, so butt caps cover the end
// pixels fully.
func pixelSpan(s icon.Segment) (x0, y0, x1, y1 float64) {
	x0, y0 = float64(s.From.X)+0.5, float64(s.From.Y)+0.5
	x1, y1 = float64(s.To.X)+0.5, float64(s.To.Y)+0.5
	switch {
	case s.From.Y == s.To.Y:
		x0, x1 = stretch(x0, x1)
	case s.From.X == s.To.X:
		y0, y1 = stretch(y0, y1)
	}
	return x0, y0, x1, y1
}

func stretch(a, b float64) (float64, float64) {
	if a <= b {
		return a - 0.5, b + 0.5
	}
	return a + 0.5, b - 0.5
}
