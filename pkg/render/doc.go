// Package render draws boxicon artwork and encodes it as PNG.
//
// # Overview
//
// Rendering is a pure function of the icon size and the palette: [RenderPNG]
// derives an [icon.Geometry], hands it to an [Engine], and returns the PNG
// bytes. Nothing here touches the filesystem; writing files is the job of
// the pipeline package.
//
//	e, _ := render.Lookup(render.EngineRaster)
//	data, err := render.RenderPNG(ctx, e, 128, icon.DefaultPalette())
//
// # Engines
//
// An engine owns the canvas for one icon. Every engine issues the same
// sequence of drawing calls:
//
//  1. fill the canvas with the accent color
//  2. fill a rounded frame spanning the canvas with the accent color
//  3. fill the rounded inner box, blended source-over
//  4. stroke the horizontal, then the vertical dimension line
//
// Two engines are available:
//   - raster: immediate-mode drawing with fogleman/gg (default)
//   - vector: path construction with tdewolff/canvas, rasterized at one
//     dot per unit
//
// Shapes cover their end pixels: the inner box includes its far edge, and a
// dimension line paints every pixel from one endpoint to the other. Lines
// run along pixel centres, so odd stroke widths land on whole pixel rows and
// columns.
//
// [icon.Geometry]: github.com/matzehuels/boxicon/pkg/icon.Geometry
package render
