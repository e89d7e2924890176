package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
)

// renderCommand creates the render command: DOT sidecar → SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <workflow.dot>",
		Short: "Render a workflow DOT file to SVG",
		Long: `Render a workflow DOT file to SVG.

The input is the sidecar written by 'agentdeck edit --dot'. Node placement
is computed by Graphviz; the editor itself keeps no geometry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			svg, err := renderSVG(cmd.Context(), data)
			if err != nil {
				printError("render failed")
				return err
			}

			if out == "" {
				out = strings.TrimSuffix(args[0], ".dot") + ".svg"
			}
			if err := os.WriteFile(out, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			c.Logger.Debug("rendered", "bytes", len(svg))
			printSuccess("rendered")
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output SVG path (default: input with .svg extension)")

	return cmd
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv := graphviz.New()
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
