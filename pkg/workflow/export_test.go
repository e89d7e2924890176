package workflow

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSerializeEmpty(t *testing.T) {
	r := NewRegistry(seqIDs())
	out := Serializer{NewID: func() string { return "workflow-test" }}.Serialize(r)

	if out.SchemaVersion != "2.0" {
		t.Errorf("schema_version = %q, want 2.0", out.SchemaVersion)
	}
	if out.WorkflowID != "workflow-test" {
		t.Errorf("workflow_id = %q, want workflow-test", out.WorkflowID)
	}
	if out.Agents == nil || len(out.Agents) != 0 {
		t.Errorf("agents = %v, want empty non-nil slice", out.Agents)
	}
	if out.Orchestration.Type != "Sequential" {
		t.Errorf("orchestration.type = %q, want Sequential", out.Orchestration.Type)
	}
	if out.Orchestration.Agents == nil || len(out.Orchestration.Agents) != 0 {
		t.Errorf("orchestration.agents = %v, want empty non-nil slice", out.Orchestration.Agents)
	}
}

// agents holds Agent-kind nodes only; orchestration.agents lists every
// node. The asymmetry is part of the wire format.
func TestSerializeAgentFilterAsymmetry(t *testing.T) {
	r := NewRegistry(seqIDs())
	a := r.AddNode(KindAgent)
	p := r.AddNode(KindParallel)
	if err := r.Rename(a.ID, "X"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if err := r.Rename(p.ID, "Y"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	out := Serializer{}.Serialize(r)

	if len(out.Agents) != 1 || out.Agents[0].Name != "X" {
		t.Fatalf("agents = %v, want exactly one entry for X", out.Agents)
	}
	spec := out.Agents[0]
	if spec.Class != "AssistantAgent" {
		t.Errorf("class = %q, want AssistantAgent", spec.Class)
	}
	if spec.SystemMessage != "" {
		t.Errorf("system_message = %q, want empty", spec.SystemMessage)
	}
	if spec.LLMConfig.Model != "gpt-4" || spec.LLMConfig.Temperature != 0.3 {
		t.Errorf("llm_config = %+v, want gpt-4/0.3", spec.LLMConfig)
	}
	if spec.Tools == nil || len(spec.Tools) != 0 {
		t.Errorf("tools = %v, want empty non-nil slice", spec.Tools)
	}

	want := []string{"X", "Y"}
	if len(out.Orchestration.Agents) != 2 || out.Orchestration.Agents[0] != want[0] || out.Orchestration.Agents[1] != want[1] {
		t.Errorf("orchestration.agents = %v, want %v", out.Orchestration.Agents, want)
	}
}

func TestSerializeFreshWorkflowID(t *testing.T) {
	r := NewRegistry(seqIDs())
	s := Serializer{}

	a := s.Serialize(r)
	b := s.Serialize(r)

	if a.WorkflowID == b.WorkflowID {
		t.Errorf("workflow_id %q repeated across calls", a.WorkflowID)
	}
	if !strings.HasPrefix(a.WorkflowID, "workflow-") {
		t.Errorf("workflow_id = %q, want workflow- prefix", a.WorkflowID)
	}
}

func TestSerializeOverrides(t *testing.T) {
	r := NewRegistry(seqIDs())
	r.AddNode(KindAgent)

	out := Serializer{Model: "gpt-4o", Temperature: 0.7}.Serialize(r)

	cfg := out.Agents[0].LLMConfig
	if cfg.Model != "gpt-4o" || cfg.Temperature != 0.7 {
		t.Errorf("llm_config = %+v, want gpt-4o/0.7", cfg)
	}
}

func TestWriteJSON(t *testing.T) {
	r := NewRegistry(seqIDs())
	r.AddNode(KindAgent)
	out := Serializer{NewID: func() string { return "workflow-test" }}.Serialize(r)

	var buf bytes.Buffer
	if err := WriteJSON(out, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	// Valid JSON, one document.
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Stable top-level key order.
	s := buf.String()
	order := []string{`"schema_version"`, `"workflow_id"`, `"agents"`, `"orchestration"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		if idx < 0 {
			t.Fatalf("output missing key %s", key)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}

	if doc["schema_version"] != "2.0" {
		t.Errorf("schema_version = %v, want 2.0", doc["schema_version"])
	}
}
