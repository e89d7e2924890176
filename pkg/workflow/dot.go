package workflow

import (
	"bytes"
	"fmt"
)

// ToDOT converts the registry's graph to Graphviz DOT format for node-link
// visualization. Layout is left entirely to Graphviz; this package keeps
// no geometry. Edges whose endpoints no longer resolve are skipped,
// matching the canvas projection.
func ToDOT(r *Registry) string {
	var buf bytes.Buffer
	buf.WriteString("digraph workflow {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range r.Nodes() {
		label := fmt.Sprintf("%s\n[%s]", n.Name, n.Kind.Info().Label)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", n.ID, label, fillColor(n.Kind))
	}

	buf.WriteString("\n")
	for _, e := range r.Edges() {
		if _, ok := r.FindByID(e.From); !ok {
			continue
		}
		if _, ok := r.FindByID(e.To); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// fillColor maps a kind to an X11 color name Graphviz understands. Kept
// separate from the catalog's terminal color tags, which are opaque
// rendering directives for the TUI.
func fillColor(k Kind) string {
	switch k {
	case KindAgent:
		return "lightcyan"
	case KindGroupChat:
		return "lightgoldenrod"
	case KindSequential:
		return "palegreen"
	case KindParallel:
		return "lightskyblue"
	default:
		return "white"
	}
}
