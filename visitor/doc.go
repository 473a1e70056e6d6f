// Package visitor provides a mutating depth-first traversal over schema
// graphs built from the schema package.
//
// The visitor walks an arbitrary, possibly cyclic, object graph in pre-order,
// invokes hooks at each typed node, and lets those hooks replace or delete
// the node in place without corrupting the traversal. Cycles are detected by
// object identity: each node is visited at most once per Visit call, and a
// branch that reaches an already-visited node simply ends there.
//
// # Quick Start
//
// Collect the path of every schema in a graph:
//
//	var paths []string
//	err := visitor.Visit(root,
//	    visitor.WithSchemaHook(func(wc *visitor.VisitContext, s *schema.Schema) (*schema.Schema, error) {
//	        paths = append(paths, wc.Path)
//	        return s, nil
//	    }),
//	)
//
// # Mutation
//
// A hook controls the node's fate through its return value:
//
//   - return the input unchanged: no-op, traversal descends into the node
//   - return a different node: the new node is committed into the slot the
//     old one was reached through, and traversal continues with it
//   - return nil: the node is deleted (single-child slots cleared, map
//     entries removed, sequence elements spliced out) and that branch ends
//
// Collections are snapshotted before iteration, so deleting or replacing one
// entry never skips or duplicates the visits of its siblings. Mutations are
// committed incrementally: if a hook fails mid-traversal, earlier mutations
// stay applied.
//
// The root node may be transformed in place, but a hook that returns a
// different node for the root fails the traversal with
// sverrors.ErrUnsupportedReplace: there is no parent slot to rebind the root
// into. The same error is returned for elements yielded by an [Enumerable],
// which have no backing storage to write into.
//
// # Traversal Order
//
// Schema nodes recurse into their slots in a fixed, contractual order:
// definitions, additionalItems, additionalProperties, items (single schema),
// items (tuple), allOf, anyOf, oneOf, not, properties, patternProperties.
// Map slots visit their keys in sorted order. Values the typed engine does
// not recognize fall back to a reflection-driven walk over string-keyed
// maps, slices, enumerables, and exported struct fields; strings are leaves
// and are never decomposed.
//
// # Hooks and References
//
// Two hooks exist: the schema hook fires for every *schema.Schema, and the
// reference hook fires for every node implementing schema.Referencer. A
// schema with a $ref is both at once; it runs the schema hook first, then
// the reference hook on whatever node the schema hook left in the slot.
// Hooks run strictly sequentially; there is no parallelism between sibling
// subtrees. The caller-supplied context from [WithContext] is exposed to
// hooks via wc.Context() for cancellation, which hooks must honor
// themselves.
package visitor
