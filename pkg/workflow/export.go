package workflow

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// =============================================================================
// Export Schema Constants
// =============================================================================

const (
	// SchemaVersion is the fixed version tag of the export document.
	SchemaVersion = "2.0"

	// AgentClass is the class every exported agent is assigned.
	AgentClass = "AssistantAgent"

	// OrchestrationType is the fixed orchestration strategy.
	OrchestrationType = "Sequential"

	// DefaultModel and DefaultTemperature are the llm_config defaults.
	DefaultModel       = "gpt-4"
	DefaultTemperature = 0.3
)

// =============================================================================
// Export Document
// =============================================================================

// LLMConfig carries the model settings of an exported agent.
type LLMConfig struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

// AgentSpec describes one Agent-kind node in the export document.
type AgentSpec struct {
	Name          string    `json:"name"`
	Class         string    `json:"class"`
	SystemMessage string    `json:"system_message"`
	LLMConfig     LLMConfig `json:"llm_config"`
	Tools         []string  `json:"tools"`
}

// Orchestration describes the execution order of the whole graph.
type Orchestration struct {
	Type   string   `json:"type"`
	Agents []string `json:"agents"`
}

// Export is the versioned workflow document emitted on each export call.
// It is a value object: generated fresh per call, never mutated afterward.
//
// Known schema quirk, preserved as observed downstream behavior: Agents
// holds Agent-kind nodes only, while Orchestration.Agents lists every
// node's name in insertion order regardless of kind.
type Export struct {
	SchemaVersion string        `json:"schema_version"`
	WorkflowID    string        `json:"workflow_id"`
	Agents        []AgentSpec   `json:"agents"`
	Orchestration Orchestration `json:"orchestration"`
}

// =============================================================================
// Serializer
// =============================================================================

// Serializer builds export documents. The zero value is usable: empty
// fields fall back to the schema defaults and a uuid-based workflow ID.
type Serializer struct {
	NewID       func() string // workflow_id source; nil means "workflow-<uuid>"
	Model       string
	Temperature float64
}

// Serialize converts the registry into an export document. It never fails:
// an empty registry yields empty (non-nil) agent lists. Each call
// generates a fresh workflow_id; uniqueness across calls, not stability,
// is the only requirement.
func (s Serializer) Serialize(r *Registry) Export {
	newID := s.NewID
	if newID == nil {
		newID = func() string { return "workflow-" + uuid.NewString() }
	}
	model := s.Model
	if model == "" {
		model = DefaultModel
	}
	temp := s.Temperature
	if temp == 0 {
		temp = DefaultTemperature
	}

	out := Export{
		SchemaVersion: SchemaVersion,
		WorkflowID:    newID(),
		Agents:        []AgentSpec{},
		Orchestration: Orchestration{Type: OrchestrationType, Agents: []string{}},
	}

	for _, n := range r.Nodes() {
		if n.Kind == KindAgent {
			out.Agents = append(out.Agents, AgentSpec{
				Name:      n.Name,
				Class:     AgentClass,
				LLMConfig: LLMConfig{Model: model, Temperature: temp},
				Tools:     []string{},
			})
		}
		out.Orchestration.Agents = append(out.Orchestration.Agents, n.Name)
	}

	return out
}

// =============================================================================
// Output
// =============================================================================

// WriteJSON encodes the document as indented JSON to w. Key order follows
// the struct definition; one complete document is written per call.
func WriteJSON(e Export, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the document to a JSON file at path. This is a
// convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(e Export, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(e, f)
}
