package icon

import (
	"fmt"
	"image"

	"github.com/matzehuels/boxicon/pkg/errors"
)

// MaxSize is the largest icon edge, in pixels, NewGeometry accepts.
const MaxSize = 4096

// Sizes is the fixed list of icon sizes the generator produces.
var Sizes = []int{16, 48, 128}

// Segment is a straight line between two pixel coordinates, both
// endpoints included.
type Segment struct {
	From, To image.Point
}

// Geometry holds every size-derived drawing parameter of one icon.
// All values are in pixels and use integer floor division.
type Geometry struct {
	Size        int // canvas edge length
	FrameRadius int // corner radius of the full-canvas frame (size/6)

	BoxX      int // left edge of the inner box
	BoxY      int // top edge of the inner box
	BoxSize   int // edge length of the inner box (60% of size)
	BoxRadius int // corner radius of the inner box (size/20)

	LineWidth  int     // dimension line stroke width, at least 1
	LineOffset int     // distance of the dimension lines from the box (size/10)
	Horizontal Segment // dimension line above the box
	Vertical   Segment // dimension line left of the box
}

// NewGeometry computes the geometry for an icon of the given size.
// It returns an INVALID_SIZE error for sizes outside [1, MaxSize].
func NewGeometry(size int) (Geometry, error) {
	if size < 1 || size > MaxSize {
		return Geometry{}, errors.New(errors.ErrCodeInvalidSize, "icon size %d out of range [1, %d]", size, MaxSize)
	}

	// size*3/5 equals floor(size*0.6) without float rounding surprises.
	boxSize := size * 3 / 5
	origin := (size - boxSize) / 2
	offset := size / 10

	return Geometry{
		Size:        size,
		FrameRadius: size / 6,
		BoxX:        origin,
		BoxY:        origin,
		BoxSize:     boxSize,
		BoxRadius:   size / 20,
		LineWidth:   max(1, size/40),
		LineOffset:  offset,
		Horizontal: Segment{
			From: image.Pt(origin, origin-offset),
			To:   image.Pt(origin+boxSize, origin-offset),
		},
		Vertical: Segment{
			From: image.Pt(origin-offset, origin),
			To:   image.Pt(origin-offset, origin+boxSize),
		},
	}, nil
}

// Frame returns the full-canvas rectangle.
func (g Geometry) Frame() image.Rectangle {
	return image.Rect(0, 0, g.Size, g.Size)
}

// Box returns the pixels covered by the inner box. Both corners
// (BoxX, BoxY) and (BoxX+BoxSize, BoxY+BoxSize) are inside, so the
// rectangle is BoxSize+1 pixels wide.
func (g Geometry) Box() image.Rectangle {
	return image.Rect(g.BoxX, g.BoxY, g.BoxX+g.BoxSize+1, g.BoxY+g.BoxSize+1)
}

// Center returns the pixel at the middle of the canvas.
func (g Geometry) Center() image.Point {
	return image.Pt(g.Size/2, g.Size/2)
}

// Filename returns the conventional output file name for size.
func Filename(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}
