package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentdeck/agentdeck/pkg/workflow"
)

func newTestEditor() EditorModel {
	i := 0
	reg := workflow.NewRegistry(func() string {
		i++
		return "n" + string(rune('0'+i))
	})
	ser := workflow.Serializer{NewID: func() string { return "workflow-test" }}
	return NewEditorModel(reg, ser)
}

// press feeds a sequence of keys through Update and returns the final model.
func press(t *testing.T, m EditorModel, keys ...string) EditorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(EditorModel)
		if !ok {
			t.Fatalf("Update returned %T, want EditorModel", next)
		}
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEditorAddSelects(t *testing.T) {
	m := press(t, newTestEditor(), "a")

	if m.Registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Registry.Len())
	}
	sel, ok := m.Registry.Selected()
	if !ok || sel.Kind != workflow.KindAgent {
		t.Errorf("Selected() = %v, %v; want the new agent", sel, ok)
	}
}

func TestEditorAddKeymap(t *testing.T) {
	tests := []struct {
		key  string
		want workflow.Kind
	}{
		{"a", workflow.KindAgent},
		{"g", workflow.KindGroupChat},
		{"s", workflow.KindSequential},
		{"p", workflow.KindParallel},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := press(t, newTestEditor(), tt.key)
			n, ok := m.Registry.NodeAt(0)
			if !ok || n.Kind != tt.want {
				t.Errorf("added kind = %v, want %v", n, tt.want)
			}
		})
	}
}

func TestEditorCursorSelection(t *testing.T) {
	m := press(t, newTestEditor(), "a", "p", "up")

	sel, ok := m.Registry.Selected()
	if !ok || sel.Kind != workflow.KindAgent {
		t.Errorf("selection after up = %v, want first node", sel)
	}

	m = press(t, m, "down")
	sel, ok = m.Registry.Selected()
	if !ok || sel.Kind != workflow.KindParallel {
		t.Errorf("selection after down = %v, want second node", sel)
	}
}

func TestEditorDeselect(t *testing.T) {
	m := press(t, newTestEditor(), "a", "esc")

	if _, ok := m.Registry.Selected(); ok {
		t.Error("esc did not clear the selection")
	}
}

func TestEditorDeleteSelected(t *testing.T) {
	m := press(t, newTestEditor(), "a", "g", "d")

	if m.Registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Registry.Len())
	}
	if _, ok := m.Registry.Selected(); ok {
		t.Error("selection survived delete")
	}
}

func TestEditorDeleteWithoutSelection(t *testing.T) {
	m := press(t, newTestEditor(), "a", "esc", "d")

	if m.Registry.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (delete with no selection is a no-op)", m.Registry.Len())
	}
}

func TestEditorRename(t *testing.T) {
	m := press(t, newTestEditor(), "a", "e")

	// Rename mode starts from the current name; clear it first.
	current := len(m.input)
	keys := make([]string, 0, current+8)
	for i := 0; i < current; i++ {
		keys = append(keys, "backspace")
	}
	keys = append(keys, "p", "l", "a", "n", "n", "e", "r", "enter")
	m = press(t, m, keys...)

	n, _ := m.Registry.NodeAt(0)
	if n.Name != "planner" {
		t.Errorf("name = %q, want planner", n.Name)
	}
}

func TestEditorRenameCancel(t *testing.T) {
	m := press(t, newTestEditor(), "a", "e", "z", "esc")

	n, _ := m.Registry.NodeAt(0)
	if n.Name != "new_agent_1" {
		t.Errorf("name = %q, want unchanged default", n.Name)
	}
}

func TestEditorConnect(t *testing.T) {
	// Two nodes; cursor on the second. Connect mode starts at target 0,
	// so enter links second → first.
	m := press(t, newTestEditor(), "a", "g", "c", "enter")

	edges := m.Registry.Edges()
	if len(edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(edges))
	}
	from, _ := m.Registry.FindByID(edges[0].From)
	to, _ := m.Registry.FindByID(edges[0].To)
	if from.Kind != workflow.KindGroupChat || to.Kind != workflow.KindAgent {
		t.Errorf("edge = %s → %s, want group chat → agent", from.Name, to.Name)
	}
}

func TestEditorConnectNeedsTwoNodes(t *testing.T) {
	m := press(t, newTestEditor(), "a", "c")

	if m.mode != modeNormal {
		t.Error("connect mode entered with a single node")
	}
}

func TestEditorExport(t *testing.T) {
	m := press(t, newTestEditor(), "a", "p", "x")

	if len(m.Exports) != 1 {
		t.Fatalf("exports = %d, want 1", len(m.Exports))
	}
	doc := m.Exports[0].Doc
	if doc.WorkflowID != "workflow-test" {
		t.Errorf("workflow_id = %q", doc.WorkflowID)
	}
	if len(doc.Agents) != 1 {
		t.Errorf("agents = %d, want 1 (agent-kind only)", len(doc.Agents))
	}
	if len(doc.Orchestration.Agents) != 2 {
		t.Errorf("orchestration.agents = %d, want 2 (all nodes)", len(doc.Orchestration.Agents))
	}
	if !strings.Contains(m.Exports[0].DOT, "digraph workflow") {
		t.Error("export did not capture the DOT sidecar")
	}
}

func TestEditorQuit(t *testing.T) {
	m := newTestEditor()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestEditorViewReflectsState(t *testing.T) {
	m := newTestEditor()

	if view := m.View(); !strings.Contains(view, workflow.EmptyCanvasMessage) {
		t.Error("empty editor view missing canvas empty-state marker")
	}

	m = press(t, m, "a")
	view := m.View()
	if strings.Contains(view, workflow.EmptyCanvasMessage) {
		t.Error("view still shows empty-state marker after add")
	}
	if !strings.Contains(view, "new_agent_1") {
		t.Error("view missing the added node")
	}
}
