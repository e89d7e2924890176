// Package workflow implements the in-memory model behind the agentdeck
// editor: a kind catalog, an ordered node/edge registry with a single
// selection, read-only text projections of the current state, and the
// versioned JSON export format.
//
// # Architecture
//
// The package is pure: no terminal I/O, no logging, no goroutines. The
// interactive layer (internal/cli) owns a [Registry], mutates it in
// response to key events, and re-projects after every mutation:
//
//	reg := workflow.NewRegistry(nil)
//	n := reg.AddNode(workflow.KindAgent)
//	lines := workflow.ProjectList(reg, nil)
//
// # Export
//
// [Serializer.Serialize] produces an [Export] document. The schema is
// fixed at version 2.0 and carries a quirk inherited from downstream
// consumers: agents lists Agent-kind nodes only, while
// orchestration.agents lists every node's name. See [Export].
//
// # Presentation
//
// Projections take a [Decorator] so the display layer can apply color.
// Color tags originate in the kind catalog and are opaque to this package.
//
// # Concurrency
//
// A Registry has a single owner and is not safe for concurrent use. The
// editor is strictly single-threaded, so no locking is provided.
package workflow
