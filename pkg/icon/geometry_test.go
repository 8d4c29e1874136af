package icon

import (
	"image"
	"testing"

	"github.com/matzehuels/boxicon/pkg/errors"
)

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		size        int
		boxSize     int
		origin      int
		lineWidth   int
		boxRadius   int
		frameRadius int
		offset      int
	}{
		{size: 16, boxSize: 9, origin: 3, lineWidth: 1, boxRadius: 0, frameRadius: 2, offset: 1},
		{size: 48, boxSize: 28, origin: 10, lineWidth: 1, boxRadius: 2, frameRadius: 8, offset: 4},
		{size: 128, boxSize: 76, origin: 26, lineWidth: 3, boxRadius: 6, frameRadius: 21, offset: 12},
	}

	for _, tt := range tests {
		g, err := NewGeometry(tt.size)
		if err != nil {
			t.Fatalf("NewGeometry(%d) error: %v", tt.size, err)
		}
		if g.BoxSize != tt.boxSize {
			t.Errorf("size %d: BoxSize = %d, want %d", tt.size, g.BoxSize, tt.boxSize)
		}
		if g.BoxX != tt.origin || g.BoxY != tt.origin {
			t.Errorf("size %d: box origin = (%d,%d), want (%d,%d)", tt.size, g.BoxX, g.BoxY, tt.origin, tt.origin)
		}
		if g.LineWidth != tt.lineWidth {
			t.Errorf("size %d: LineWidth = %d, want %d", tt.size, g.LineWidth, tt.lineWidth)
		}
		if g.BoxRadius != tt.boxRadius {
			t.Errorf("size %d: BoxRadius = %d, want %d", tt.size, g.BoxRadius, tt.boxRadius)
		}
		if g.FrameRadius != tt.frameRadius {
			t.Errorf("size %d: FrameRadius = %d, want %d", tt.size, g.FrameRadius, tt.frameRadius)
		}
		if g.LineOffset != tt.offset {
			t.Errorf("size %d: LineOffset = %d, want %d", tt.size, g.LineOffset, tt.offset)
		}
	}
}

func TestGeometryDimensionLines(t *testing.T) {
	g, err := NewGeometry(128)
	if err != nil {
		t.Fatal(err)
	}

	wantH := Segment{From: image.Pt(26, 14), To: image.Pt(102, 14)}
	if g.Horizontal != wantH {
		t.Errorf("Horizontal = %v, want %v", g.Horizontal, wantH)
	}
	wantV := Segment{From: image.Pt(14, 26), To: image.Pt(14, 102)}
	if g.Vertical != wantV {
		t.Errorf("Vertical = %v, want %v", g.Vertical, wantV)
	}
}

func TestGeometryInvariants(t *testing.T) {
	for _, size := range Sizes {
		g, err := NewGeometry(size)
		if err != nil {
			t.Fatalf("NewGeometry(%d) error: %v", size, err)
		}

		if g.BoxSize >= size {
			t.Errorf("size %d: box %d not smaller than canvas", size, g.BoxSize)
		}
		if g.LineWidth < 1 {
			t.Errorf("size %d: LineWidth = %d", size, g.LineWidth)
		}
		if 2*g.FrameRadius > size {
			t.Errorf("size %d: frame radius %d exceeds half the canvas", size, g.FrameRadius)
		}
		if 2*g.BoxRadius > g.BoxSize {
			t.Errorf("size %d: box radius %d exceeds half the box", size, g.BoxRadius)
		}

		c := g.Center()
		if !c.In(g.Box()) {
			t.Errorf("size %d: center %v outside box %v", size, c, g.Box())
		}
		if !g.Box().In(g.Frame()) {
			t.Errorf("size %d: box %v outside frame %v", size, g.Box(), g.Frame())
		}
		if g.Horizontal.From.Y < 0 || g.Vertical.From.X < 0 {
			t.Errorf("size %d: dimension lines leave the canvas", size)
		}
	}
}

func TestNewGeometryInvalidSize(t *testing.T) {
	for _, size := range []int{0, -16, MaxSize + 1} {
		_, err := NewGeometry(size)
		if err == nil {
			t.Errorf("NewGeometry(%d) should fail", size)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("NewGeometry(%d) error code = %q, want %q", size, errors.GetCode(err), errors.ErrCodeInvalidSize)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(48); got != "icon48.png" {
		t.Errorf("Filename(48) = %q", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Accent.R != 102 || p.Accent.G != 126 || p.Accent.B != 234 || p.Accent.A != 255 {
		t.Errorf("Accent = %v", p.Accent)
	}
	if p.Box.A != 230 {
		t.Errorf("Box alpha = %d, want 230", p.Box.A)
	}
	if p.Line.A != 255 {
		t.Errorf("Line alpha = %d, want 255", p.Line.A)
	}
}

func TestGeometryBoxIncludesFarEdge(t *testing.T) {
	for _, size := range Sizes {
		g, _ := NewGeometry(size)
		box := g.Box()

		if box.Dx() != g.BoxSize+1 || box.Dy() != g.BoxSize+1 {
			t.Errorf("size %d: box %v should span %d pixels", size, box, g.BoxSize+1)
		}
		if !image.Pt(g.BoxX+g.BoxSize, g.BoxY+g.BoxSize).In(box) {
			t.Errorf("size %d: far corner missing from box %v", size, box)
		}

		left, right := box.Min.X, size-box.Max.X
		if d := left - right; d < -1 || d > 1 {
			t.Errorf("size %d: box margins %d/%d are not centred", size, left, right)
		}
	}
}
