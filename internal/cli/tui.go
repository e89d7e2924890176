package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentdeck/agentdeck/pkg/errors"
	"github.com/agentdeck/agentdeck/pkg/workflow"
)

// =============================================================================
// EditorModel - Interactive Workflow Editor
// =============================================================================

// editorMode distinguishes normal navigation from inline rename entry and
// connect-target picking.
type editorMode int

const (
	modeNormal editorMode = iota
	modeRename
	modeConnect
)

// ExportResult captures one export keypress: the serialized document plus
// the DOT sidecar for later rendering.
type ExportResult struct {
	Doc workflow.Export
	DOT string
}

// EditorModel is the bubbletea model for the workflow editor. It owns the
// registry and maps key events to registry operations; the three panes are
// re-projected after every mutation and fully replace the previous
// projection.
type EditorModel struct {
	Registry   *workflow.Registry
	Serializer workflow.Serializer

	// Exports collects every document produced by the export key, in
	// order. The command layer decides where they go after the program
	// exits.
	Exports []ExportResult

	mode   editorMode
	cursor int    // index into Registry.Nodes(); selection follows cursor
	target int    // connect-mode target index
	input  string // rename buffer
	status string
	errMsg string

	listView   []string
	canvasView string
	propsView  string
}

// NewEditorModel creates an editor over the given registry.
func NewEditorModel(reg *workflow.Registry, ser workflow.Serializer) EditorModel {
	m := EditorModel{Registry: reg, Serializer: ser, cursor: -1}
	m.project()
	return m
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeRename:
		return m.updateRename(keyMsg)
	case modeConnect:
		return m.updateConnect(keyMsg)
	default:
		return m.updateNormal(keyMsg)
	}
}

// =============================================================================
// Normal Mode
// =============================================================================

func (m EditorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		return m.addNode(workflow.KindAgent)
	case "g":
		return m.addNode(workflow.KindGroupChat)
	case "s":
		return m.addNode(workflow.KindSequential)
	case "p":
		return m.addNode(workflow.KindParallel)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.selectCursor()
		}
	case "down", "j":
		if m.cursor < m.Registry.Len()-1 {
			m.cursor++
			m.selectCursor()
		}

	case "esc":
		m.Registry.Deselect()

	case "e":
		if n, ok := m.Registry.Selected(); ok {
			m.mode = modeRename
			m.input = n.Name
		}

	case "c":
		if _, ok := m.Registry.Selected(); ok && m.Registry.Len() > 1 {
			m.mode = modeConnect
			m.target = 0
		}

	case "d", "backspace":
		if n, ok := m.Registry.Selected(); ok {
			name := n.Name
			m.Registry.DeleteNode(n.ID)
			if m.cursor >= m.Registry.Len() {
				m.cursor = m.Registry.Len() - 1
			}
			m.status = fmt.Sprintf("deleted %s", name)
		}

	case "x":
		doc := m.Serializer.Serialize(m.Registry)
		m.Exports = append(m.Exports, ExportResult{
			Doc: doc,
			DOT: workflow.ToDOT(m.Registry),
		})
		m.status = fmt.Sprintf("exported %s", doc.WorkflowID)
	}

	m.project()
	return m, nil
}

func (m *EditorModel) addNode(kind workflow.Kind) (tea.Model, tea.Cmd) {
	n := m.Registry.AddNode(kind)
	m.cursor = m.Registry.Len() - 1
	if err := m.Registry.Select(n.ID); err != nil {
		m.errMsg = errors.UserMessage(err)
	}
	m.status = fmt.Sprintf("added %s", n.Name)
	m.project()
	return *m, nil
}

// selectCursor keeps the selection in step with the cursor. A cursor that
// points outside the list (empty registry) deselects.
func (m *EditorModel) selectCursor() {
	n, ok := m.Registry.NodeAt(m.cursor)
	if !ok {
		m.Registry.Deselect()
		return
	}
	if err := m.Registry.Select(n.ID); err != nil {
		m.errMsg = errors.UserMessage(err)
	}
}

// =============================================================================
// Rename Mode
// =============================================================================

func (m EditorModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeNormal
		m.input = ""

	case tea.KeyEnter:
		m.mode = modeNormal
		if n, ok := m.Registry.Selected(); ok {
			if err := m.Registry.Rename(n.ID, m.input); err != nil {
				m.errMsg = errors.UserMessage(err)
			} else {
				m.status = fmt.Sprintf("renamed to %s", m.input)
			}
		}
		m.input = ""
		m.project()

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case tea.KeySpace:
		m.input += " "

	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}

	return m, nil
}

// =============================================================================
// Connect Mode
// =============================================================================

func (m EditorModel) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal

	case "up", "k":
		if m.target > 0 {
			m.target--
		}
	case "down", "j":
		if m.target < m.Registry.Len()-1 {
			m.target++
		}

	case "enter":
		m.mode = modeNormal
		from, ok := m.Registry.Selected()
		if !ok {
			break
		}
		to, ok := m.Registry.NodeAt(m.target)
		if !ok {
			break
		}
		if err := m.Registry.Connect(from.ID, to.ID); err != nil {
			m.errMsg = errors.UserMessage(err)
		} else {
			m.status = fmt.Sprintf("connected %s %s %s", from.Name, iconArrow, to.Name)
		}
		m.project()
	}

	return m, nil
}

// =============================================================================
// Projection
// =============================================================================

// project refreshes the three text blocks from current registry state. The
// new projection fully replaces the previous one.
func (m *EditorModel) project() {
	m.listView = workflow.ProjectList(m.Registry, colorize)
	m.canvasView = workflow.ProjectCanvas(m.Registry, colorize)
	m.propsView = workflow.ProjectProperties(m.Registry, colorize)
}

// =============================================================================
// View
// =============================================================================

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.helpLine()))
	b.WriteString("\n\n")

	list := stylePaneFocused.Render(stylePaneTitle.Render("Nodes") + "\n" + m.renderList())
	canvas := stylePane.Render(stylePaneTitle.Render("Canvas") + "\n" + m.canvasView)
	props := stylePane.Render(stylePaneTitle.Render("Properties") + "\n" + m.propsView)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, canvas, props))
	b.WriteString("\n")

	switch {
	case m.mode == modeRename:
		b.WriteString(StyleValue.Render("rename: " + m.input + "█"))
	case m.mode == modeConnect:
		b.WriteString(m.connectPrompt())
	case m.errMsg != "":
		b.WriteString(styleErrMsg.Render(iconError + " " + m.errMsg))
	case m.status != "":
		b.WriteString(styleStatus.Render(iconSuccess + " " + m.status))
	}
	b.WriteString("\n")

	return b.String()
}

// renderList draws the list projection with the cursor marker, and the
// connect-mode target marker when picking a target.
func (m EditorModel) renderList() string {
	var b strings.Builder
	for i, line := range m.listView {
		marker := "  "
		if m.Registry.Len() > 0 && i == m.cursor {
			marker = iconCursor + " "
		}
		if m.mode == modeConnect && i == m.target {
			marker = iconArrow + " "
		}
		b.WriteString(marker + line)
		if i < len(m.listView)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m EditorModel) connectPrompt() string {
	from, ok := m.Registry.Selected()
	if !ok {
		return StyleDim.Render("connect: no source selected")
	}
	to, ok := m.Registry.NodeAt(m.target)
	if !ok {
		return StyleDim.Render("connect: pick a target")
	}
	return StyleValue.Render(fmt.Sprintf("connect: %s %s %s (enter to link, esc to cancel)",
		from.Name, iconArrow, to.Name))
}

func (m EditorModel) helpLine() string {
	switch m.mode {
	case modeRename:
		return "type a name · enter confirm · esc cancel"
	case modeConnect:
		return "↑/↓ pick target · enter connect · esc cancel"
	default:
		return "a/g/s/p add · ↑/↓ select · e rename · c connect · d delete · x export · q quit"
	}
}
