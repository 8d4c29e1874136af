package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/boxicon/pkg/pipeline"
	"github.com/matzehuels/boxicon/pkg/render"
)

// runGenerate renders the fixed icon set with the selected engine.
func runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	engine, err := render.Lookup(opts.engine)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(engine, logger).Generate(ctx, pipeline.Options{Dir: opts.dir})
	if err != nil {
		return fmt.Errorf("generate icons: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d icons with %s engine", len(result.Files), engine.Name()))
	return nil
}
