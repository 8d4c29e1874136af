// Package pipeline drives icon generation for boxicon.
//
// A [Runner] renders each requested size with its engine and writes the
// result to disk, one size after another. Sizes are independent: every icon
// gets its own canvas, and output files never collide because the file name
// encodes the size.
//
// # Usage
//
//	engine, _ := render.Lookup(render.EngineRaster)
//	runner := pipeline.NewRunner(engine, logger)
//	result, err := runner.Generate(ctx, pipeline.Options{Dir: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f.Path)
//	}
//
// The first failure stops the run. Icons written before the failure are left
// in place.
package pipeline

import (
	"github.com/matzehuels/boxicon/pkg/errors"
	"github.com/matzehuels/boxicon/pkg/icon"
)

// DefaultDir is the output directory used when Options.Dir is empty.
const DefaultDir = "."

// Options configures a generation run.
type Options struct {
	Dir   string // output directory; must exist
	Sizes []int  // icon sizes in generation order
}

// SetDefaults fills unset fields with the standard values.
func (o *Options) SetDefaults() {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if len(o.Sizes) == 0 {
		o.Sizes = append([]int(nil), icon.Sizes...)
	}
}

// Validate checks every requested size before any file is written.
func (o Options) Validate() error {
	seen := make(map[int]bool, len(o.Sizes))
	for _, size := range o.Sizes {
		if _, err := icon.NewGeometry(size); err != nil {
			return err
		}
		if seen[size] {
			return errors.New(errors.ErrCodeInvalidSize, "duplicate icon size %d", size)
		}
		seen[size] = true
	}
	return nil
}

// Artifact describes one written icon.
type Artifact struct {
	Size   int    // edge length in pixels
	Path   string // file path the icon was written to
	Bytes  int    // encoded PNG size
	Digest string // SHA-256 of the PNG bytes
}

// Result lists the icons a run produced, in generation order.
type Result struct {
	Files []Artifact
}
