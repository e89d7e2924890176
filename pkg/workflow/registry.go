package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agentdeck/agentdeck/pkg/errors"
)

// =============================================================================
// Node & Edge
// =============================================================================

// Node is a typed unit in the workflow graph. Nodes are owned by the
// [Registry]; other components hold only transient lookups by ID.
type Node struct {
	ID   string // unique, stable for the node's lifetime
	Kind Kind
	Name string // user-editable, no uniqueness constraint
}

// Edge is a directed reference between two node IDs. Edges are
// illustrative: no cycle or duplicate validation is performed.
type Edge struct {
	From string
	To   string
}

// IDSource produces unique node identifiers. It is injectable so tests can
// assert deterministic IDs.
type IDSource func() string

// =============================================================================
// Registry
// =============================================================================

// Registry holds the ordered collection of nodes and edges plus the
// current selection. Insertion order is preserved and is the canonical
// iteration order used by every projection and by export; it is the only
// representation of "arrangement" (there is no 2-D geometry).
//
// The registry is transient and has a single owner; it is not safe for
// concurrent use.
type Registry struct {
	nodes    []*Node
	edges    []Edge
	selected string
	newID    IDSource
	counts   map[Kind]int // per-kind monotonic counters for default names
}

// NewRegistry creates an empty registry. A nil idSource falls back to
// uuid-based IDs.
func NewRegistry(idSource IDSource) *Registry {
	if idSource == nil {
		idSource = func() string { return "node-" + uuid.NewString() }
	}
	return &Registry{newID: idSource, counts: make(map[Kind]int)}
}

// AddNode constructs a new node of the given kind with a fresh unique ID
// and a default name of the form "new_<kind>_<n>", appends it in insertion
// order, and returns it. The per-kind counter never resets, so default
// names are not reused after deletes. AddNode never fails.
func (r *Registry) AddNode(kind Kind) *Node {
	r.counts[kind]++
	n := &Node{
		ID:   r.newID(),
		Kind: kind,
		Name: fmt.Sprintf("new_%s_%d", kind.Slug(), r.counts[kind]),
	}
	r.nodes = append(r.nodes, n)
	return n
}

// DeleteNode removes the node with the given ID. An absent ID is a no-op,
// not an error. Every edge whose endpoint matches the ID is removed in the
// same step, and the selection is cleared if it pointed at the node.
func (r *Registry) DeleteNode(id string) {
	idx := -1
	for i, n := range r.nodes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	r.nodes = append(r.nodes[:idx], r.nodes[idx+1:]...)

	kept := r.edges[:0]
	for _, e := range r.edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	r.edges = kept

	if r.selected == id {
		r.selected = ""
	}
}

// Rename sets the node's name. Names carry no uniqueness constraint.
// Returns a NOT_FOUND error if the ID is absent; the registry is left
// untouched in that case.
func (r *Registry) Rename(id, name string) error {
	n, ok := r.FindByID(id)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "node %s", id)
	}
	n.Name = name
	return nil
}

// FindByID returns the node with the given ID. The scan is linear; node
// counts are small and human-created.
func (r *Registry) FindByID(id string) (*Node, bool) {
	for _, n := range r.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Connect appends a directed edge between two existing nodes. Returns a
// NOT_FOUND error if either endpoint is absent.
func (r *Registry) Connect(from, to string) error {
	if _, ok := r.FindByID(from); !ok {
		return errors.New(errors.ErrCodeNotFound, "node %s", from)
	}
	if _, ok := r.FindByID(to); !ok {
		return errors.New(errors.ErrCodeNotFound, "node %s", to)
	}
	r.edges = append(r.edges, Edge{From: from, To: to})
	return nil
}

// =============================================================================
// Selection
// =============================================================================

// Select marks the node with the given ID as the current UI focus.
// Returns a NOT_FOUND error if the ID is absent; the previous selection is
// kept in that case.
func (r *Registry) Select(id string) error {
	if _, ok := r.FindByID(id); !ok {
		return errors.New(errors.ErrCodeNotFound, "node %s", id)
	}
	r.selected = id
	return nil
}

// Deselect clears the selection unconditionally. Idempotent.
func (r *Registry) Deselect() { r.selected = "" }

// Selected returns the currently selected node, if any. A selection that
// no longer resolves (which cascade delete should prevent) reports false.
func (r *Registry) Selected() (*Node, bool) {
	if r.selected == "" {
		return nil, false
	}
	return r.FindByID(r.selected)
}

// SelectedID returns the raw selection ID, empty when nothing is selected.
func (r *Registry) SelectedID() string { return r.selected }

// =============================================================================
// Accessors
// =============================================================================

// Nodes returns the nodes in insertion order. Callers must treat the
// returned slice as a read-only view.
func (r *Registry) Nodes() []*Node { return r.nodes }

// Edges returns the edges in creation order. Read-only view.
func (r *Registry) Edges() []Edge { return r.edges }

// Len returns the number of nodes.
func (r *Registry) Len() int { return len(r.nodes) }

// NodeAt returns the node at position i in insertion order.
func (r *Registry) NodeAt(i int) (*Node, bool) {
	if i < 0 || i >= len(r.nodes) {
		return nil, false
	}
	return r.nodes[i], true
}
