package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agentdeck/agentdeck/pkg/workflow"
)

// editCommand creates the edit command that runs the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		out     string
		dotPath string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive workflow editor",
		Long: `Open the interactive workflow editor.

Add typed nodes, connect them, and press x to export. The exported JSON
document is printed to stdout when the editor exits (or written to --out).
With --dot, a Graphviz DOT sidecar of the graph is written alongside for
use with 'agentdeck render'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				c.Logger.Warn("ignoring config", "err", err)
			}
			if out == "" {
				out = cfg.Export.Out
			}

			ser := workflow.Serializer{
				Model:       cfg.Export.Model,
				Temperature: cfg.Export.Temperature,
			}
			reg := workflow.NewRegistry(nil)

			c.Logger.Debug("starting editor", "model", ser.Model)
			p := tea.NewProgram(NewEditorModel(reg, ser),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("editor: %w", err)
			}

			model, ok := final.(EditorModel)
			if !ok || len(model.Exports) == 0 {
				return nil
			}
			return c.emitExport(model.Exports, out, dotPath)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write exported workflow JSON to a file (default: stdout)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "also write a Graphviz DOT sidecar of the graph")

	return cmd
}

// emitExport writes the most recent export. Every export keypress produced
// a complete document with a fresh workflow_id; only the latest one is
// emitted, since each projection fully replaces the previous.
func (c *CLI) emitExport(exports []ExportResult, out, dotPath string) error {
	last := exports[len(exports)-1]

	if out == "" {
		if err := workflow.WriteJSON(last.Doc, os.Stdout); err != nil {
			return err
		}
	} else {
		if err := workflow.ExportJSON(last.Doc, out); err != nil {
			return err
		}
		printSuccess("workflow %s written", last.Doc.WorkflowID)
		printFile(out)
	}

	if dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(last.DOT), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dotPath, err)
		}
		printFile(dotPath)
	}

	return nil
}
