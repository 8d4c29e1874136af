// Package icon derives the drawing parameters of the boxicon artwork.
//
// The artwork is a solid accent-colored square with a rounded white box in
// the middle and two "dimension lines" above and to the left of the box, the
// way a technical drawing annotates measurements. Every parameter is an
// integer function of the icon size, so the same size always yields the same
// [Geometry]:
//
//	g, err := icon.NewGeometry(48)
//	// g.BoxSize == 28, g.BoxX == 10, g.BoxRadius == 2, g.LineWidth == 1
//
// Colors live in [Palette]; [DefaultPalette] returns the brand colors.
// Rendering the geometry is the job of the [render] package.
//
// [render]: github.com/matzehuels/boxicon/pkg/render
package icon
