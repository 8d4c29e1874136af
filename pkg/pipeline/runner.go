package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxicon/pkg/icon"
	"github.com/matzehuels/boxicon/pkg/io"
	"github.com/matzehuels/boxicon/pkg/observability"
	"github.com/matzehuels/boxicon/pkg/render"
)

// Runner renders icons with a single engine and writes them to disk.
type Runner struct {
	Engine  render.Engine
	Palette icon.Palette
	Logger  *log.Logger
}

// NewRunner creates a runner using the default palette.
// If logger is nil, log.Default() is used.
func NewRunner(engine render.Engine, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Engine:  engine,
		Palette: icon.DefaultPalette(),
		Logger:  logger,
	}
}

// Generate renders and writes every size in opts, sequentially.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r.Logger.Debug("generating icons", "engine", r.Engine.Name(), "dir", opts.Dir, "sizes", opts.Sizes)

	result := &Result{}
	for _, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		artifact, err := r.generateOne(ctx, opts.Dir, size)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, artifact)
		r.Logger.Infof("Created %s", icon.Filename(size))
	}

	r.Logger.Info("All icons created successfully!")
	return result, nil
}

// generateOne renders a single size and writes it into dir.
func (r *Runner) generateOne(ctx context.Context, dir string, size int) (Artifact, error) {
	hooks := observability.Pipeline()
	engine := r.Engine.Name()

	hooks.OnRenderStart(ctx, engine, size)
	start := time.Now()
	data, err := render.RenderPNG(ctx, r.Engine, size, r.Palette)
	hooks.OnRenderComplete(ctx, engine, size, len(data), time.Since(start), err)
	if err != nil {
		return Artifact{}, err
	}

	path := filepath.Join(dir, icon.Filename(size))
	err = io.WriteFile(path, data)
	hooks.OnWriteComplete(ctx, path, len(data), err)
	if err != nil {
		return Artifact{}, err
	}

	digest := io.Digest(data)
	r.Logger.Debug("wrote icon", "path", path, "bytes", len(data), "sha256", digest[:12])

	return Artifact{
		Size:   size,
		Path:   path,
		Bytes:  len(data),
		Digest: digest,
	}, nil
}
