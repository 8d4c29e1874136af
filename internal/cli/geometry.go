package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxicon/pkg/icon"
)

// geometryCommand prints the derived drawing parameters for every icon size.
func (c *CLI) geometryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "geometry",
		Short: "Show the drawing parameters for each icon size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printGeometry(cmd.OutOrStdout(), icon.Sizes)
		},
	}
}

func printGeometry(w io.Writer, sizes []int) error {
	for i, size := range sizes {
		g, err := icon.NewGeometry(size)
		if err != nil {
			return err
		}
		if i > 0 {
			printNewline(w)
		}
		printTitle(w, "%s (%dx%d)", icon.Filename(size), size, size)
		printKeyValue(w, "frame radius", px(g.FrameRadius))
		printKeyValue(w, "box", fmt.Sprintf("%s at (%d,%d)", px(g.BoxSize), g.BoxX, g.BoxY))
		printKeyValue(w, "box radius", px(g.BoxRadius))
		printKeyValue(w, "line width", px(g.LineWidth))
		printKeyValue(w, "line offset", px(g.LineOffset))
		printDetail(w, "horizontal %v → %v", g.Horizontal.From, g.Horizontal.To)
		printDetail(w, "vertical   %v → %v", g.Vertical.From, g.Vertical.To)
	}
	return nil
}

func px(v int) string {
	return StyleNumber.Render(fmt.Sprintf("%dpx", v))
}
