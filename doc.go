// Package schemavisit provides a mutating visitor for JSON-Schema-shaped
// object graphs.
//
// schemavisit walks an in-memory schema graph depth-first, calls overridable
// hooks at each node, and lets those hooks replace or delete nodes in place
// without corrupting the traversal, even on cyclic graphs.
//
// # Overview
//
// The library consists of four packages:
//
//   - schema: the node model — a Schema struct carrying the structurally
//     significant child slots, and the Referencer capability for values
//     carrying a $ref
//   - visitor: the traversal engine — identity-based cycle detection,
//     snapshot-safe structural mutation, a reflection fallback for arbitrary
//     payloads, and deterministic per-node paths
//   - transforms: ready-made passes built on the hook surface (definition
//     renaming, pruning, reference collection)
//   - sverrors: structured error types with errors.Is/errors.As support
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/schemavisit
//
// # Quick Start
//
// Visit every schema in a graph and record its path:
//
//	import (
//	    "github.com/erraggy/schemavisit/schema"
//	    "github.com/erraggy/schemavisit/visitor"
//	)
//
//	root := &schema.Schema{
//	    Properties: map[string]*schema.Schema{
//	        "name": {Type: "string"},
//	    },
//	}
//
//	var paths []string
//	err := visitor.Visit(root,
//	    visitor.WithSchemaHook(func(wc *visitor.VisitContext, s *schema.Schema) (*schema.Schema, error) {
//	        paths = append(paths, wc.Path)
//	        return s, nil
//	    }),
//	)
//
// Replace a node by returning a different one, or delete it by returning nil:
//
//	visitor.Visit(root,
//	    visitor.WithSchemaHook(func(wc *visitor.VisitContext, s *schema.Schema) (*schema.Schema, error) {
//	        if s.Format == "legacy" {
//	            return nil, nil // spliced out of its owning slot
//	        }
//	        return s, nil
//	    }),
//	)
//
// # Guarantees
//
//   - every node is visited at most once per Visit call, even across cycles
//     and diamonds; already-visited nodes silently end their branch
//   - collections are snapshotted before iteration, so mutating entry k
//     never skips or duplicates the visits of its siblings
//   - slot visitation order is fixed and documented; tests may assert on it
//   - the root may be mutated in place but never wholesale-replaced; such an
//     attempt fails with sverrors.ErrUnsupportedReplace
//
// The graph is always owned by the caller. The visitor allocates no schema
// nodes and mutates only through the slot a node was reached through.
// Mutations are committed incrementally: a hook failing mid-traversal leaves
// earlier mutations applied.
//
// # What this library does not do
//
// schemavisit neither parses nor emits any wire format, does not validate
// schema content, and does not resolve references. The schema model carries
// yaml/json struct tags so callers can wire their own serialization layer,
// and the reference hook exposes $ref values so callers can build resolution
// on top.
package schemavisit
