// Package cli implements the boxicon command-line interface.
//
// Running boxicon without a subcommand renders icon16.png, icon48.png and
// icon128.png into the current directory. The CLI is built using cobra and
// logs through charmbracelet/log; --verbose (-v) switches to debug output.
//
// # Commands
//
//   - (root): generate the icons
//   - geometry: print the drawing parameters for each icon size
//   - completion: generate shell completion scripts
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxicon/pkg/buildinfo"
	"github.com/matzehuels/boxicon/pkg/pipeline"
	"github.com/matzehuels/boxicon/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "boxicon"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a timestamped logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// generateOpts holds the flags of the root command.
type generateOpts struct {
	dir    string
	engine string
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	opts := generateOpts{
		dir:    pipeline.DefaultDir,
		engine: render.EngineRaster,
	}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Boxicon draws the box-with-dimension-lines icon set",
		Long:         `Boxicon renders the 16, 48 and 128 pixel PNG icons of a box with dimension lines into the working directory.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug(strings.ReplaceAll(buildinfo.String(), "\n", ", "))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.dir, "dir", "d", opts.dir, "output directory")
	root.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine, "drawing engine: raster (default), vector")

	root.AddCommand(c.geometryCommand())
	root.AddCommand(c.completionCommand())

	return root
}
