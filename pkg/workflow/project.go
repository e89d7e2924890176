package workflow

import (
	"fmt"
	"strings"
)

// =============================================================================
// Projections - Registry State → Display Text
// =============================================================================

// Decorator applies a presentational color tag to text. The display layer
// supplies one (internal/cli backs it with lipgloss); nil renders plain
// text. Tags come exclusively from the kind catalog, never from call
// sites.
type Decorator func(colorTag, text string) string

// Fixed marker strings used by the projections. Exported so the display
// layer and tests can match on them.
const (
	// EmptyListLine is the placeholder when the registry has no nodes.
	EmptyListLine = "No nodes yet."

	// EmptyCanvasMessage marks an empty canvas.
	EmptyCanvasMessage = "Canvas is empty. Press a/g/s/p to add a node."

	// NoSelectionMessage prompts for a selection in the properties pane.
	NoSelectionMessage = "Select a node to inspect its properties."

	// SelectionGoneMessage is the defensive fallback for a selection that
	// no longer resolves. Cascade delete should make this unreachable.
	SelectionGoneMessage = "Selected node not found."

	canvasMarker = "◉"
	edgeArrow    = "→"
)

func decorate(dec Decorator, tag, text string) string {
	if dec == nil {
		return text
	}
	return dec(tag, text)
}

// ProjectList renders one line per node as "<label>: <name>", label
// colored through dec, in insertion order. An empty registry yields the
// single placeholder line.
func ProjectList(r *Registry, dec Decorator) []string {
	if r.Len() == 0 {
		return []string{EmptyListLine}
	}
	lines := make([]string, 0, r.Len())
	for _, n := range r.Nodes() {
		info := n.Kind.Info()
		lines = append(lines, decorate(dec, info.Color, info.Label)+": "+n.Name)
	}
	return lines
}

// ProjectCanvas renders the diagram view: one line per node with a marker
// glyph, the node name and the bracketed kind label, followed by a
// "Connections:" section when at least one edge resolves both endpoints.
// Edges with a dangling endpoint are silently skipped, not repaired; the
// registry's cascade delete is expected to prevent them in the first
// place. An empty registry yields the explicit empty-state message.
func ProjectCanvas(r *Registry, dec Decorator) string {
	if r.Len() == 0 {
		return EmptyCanvasMessage
	}

	var b strings.Builder
	for _, n := range r.Nodes() {
		info := n.Kind.Info()
		fmt.Fprintf(&b, "%s %s [%s]\n",
			decorate(dec, info.Color, canvasMarker), n.Name, decorate(dec, info.Color, info.Label))
	}

	var conns []string
	for _, e := range r.Edges() {
		from, ok := r.FindByID(e.From)
		if !ok {
			continue
		}
		to, ok := r.FindByID(e.To)
		if !ok {
			continue
		}
		conns = append(conns, fmt.Sprintf("  %s %s %s", from.Name, edgeArrow, to.Name))
	}
	if len(conns) > 0 {
		b.WriteString("\nConnections:\n")
		b.WriteString(strings.Join(conns, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// ProjectProperties renders the properties pane for the current selection:
// the node's name, kind label and description, and the actions available
// on it. With no selection it returns a prompt; a dangling selection
// returns the defensive not-found message.
func ProjectProperties(r *Registry, dec Decorator) string {
	if r.SelectedID() == "" {
		return NoSelectionMessage
	}
	n, ok := r.Selected()
	if !ok {
		return SelectionGoneMessage
	}

	info := n.Kind.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", n.Name)
	fmt.Fprintf(&b, "Kind: %s\n", decorate(dec, info.Color, info.Label))
	fmt.Fprintf(&b, "%s\n", info.Description)
	b.WriteString("\nActions: e rename · c connect · d delete · esc deselect")
	return b.String()
}
