package visitor

import (
	"context"

	"github.com/erraggy/schemavisit/schema"
)

// Hook types for the two privileged node kinds.
// Each hook receives the current node and its visit context, and returns the
// node to keep in that slot: the same node to leave it untouched, a different
// node to replace it, or nil to delete it.

// SchemaHook is called for each *schema.Schema node exactly once per
// traversal. Returning a different schema replaces the node in its owning
// slot; returning nil deletes it.
type SchemaHook func(wc *VisitContext, s *schema.Schema) (*schema.Schema, error)

// ReferenceHook is called for each node exposing reference semantics
// (implementing schema.Referencer), including schemas, which run the schema
// hook first. Returning a different value substitutes it into the owning
// slot; returning nil deletes the node.
type ReferenceHook func(wc *VisitContext, ref schema.Referencer) (any, error)

// SkipHandler is called when a node is skipped because it was already
// visited in this traversal (a cycle or diamond in the graph). This is the
// normal cycle-termination mechanism, not a fault.
type SkipHandler func(wc *VisitContext, node any)

// Visitor walks a schema graph depth-first in pre-order, calling hooks for
// each node and committing replacements through the slot each node was
// reached through.
type Visitor struct {
	// Hooks
	onSchema    SchemaHook
	onReference ReferenceHook
	onSkip      SkipHandler

	// Configuration
	logger  Logger
	userCtx context.Context

	// Internal state
	visited identitySet
}

// New creates a new Visitor with default settings: identity hooks, no-op
// logging, and a background context.
func New() *Visitor {
	return &Visitor{
		logger: NopLogger{},
	}
}

// Option configures the Visitor.
type Option func(*Visitor)

// Visit traverses the graph rooted at root and calls registered hooks for
// each node. The root is addressed as "#"; it may be mutated in place by
// hooks but never wholesale-replaced, since no parent slot holds it. A hook
// returning a different node for the root fails the traversal with
// sverrors.ErrUnsupportedReplace.
//
// A nil root is silently skipped, like any other nil node.
func Visit(root any, opts ...Option) error {
	v := New()
	for _, opt := range opts {
		opt(v)
	}
	return v.Visit(root)
}

// Visit performs the traversal with a fresh identity set, so the same graph
// may be safely re-traversed by successive calls.
func (v *Visitor) Visit(root any) error {
	v.visited = make(identitySet)
	defer func() { v.visited = nil }()

	v.logger.Debug("starting traversal", "root", rootPath)
	return v.visit(root, rootPath, "", failingReplacer(rootPath, rootTarget))
}

// rootPath is the address of the traversal root.
const rootPath = "#"

// visit is the core recursive step: identity check, hooks, then slot or
// generic recursion. typeHint carries the map key or field name the node was
// reached through, for hooks that name things.
func (v *Visitor) visit(node any, path, typeHint string, replace replaceFn) error {
	if isNilNode(node) {
		return nil
	}
	if id, tracked := identityOf(node); tracked {
		if _, seen := v.visited[id]; seen {
			v.logger.Debug("skipping already-visited node", "path", path)
			if v.onSkip != nil {
				v.onSkip(v.newContext(path, typeHint), node)
			}
			return nil
		}
		// Pre-order marking: record before recursing so self-references
		// terminate.
		v.visited[id] = struct{}{}
	}

	cur := node
	if s, ok := cur.(*schema.Schema); ok && v.onSchema != nil {
		next, err := v.onSchema(v.newContext(path, typeHint), s)
		if err != nil {
			return err
		}
		if next != s {
			cur, err = v.applyReplace(replace, next, path)
			if err != nil {
				return err
			}
		}
	}

	if !isNilNode(cur) && v.onReference != nil {
		if ref, ok := cur.(schema.Referencer); ok {
			next, err := v.onReference(v.newContext(path, typeHint), ref)
			if err != nil {
				return err
			}
			if !sameNode(next, cur) {
				cur, err = v.applyReplace(replace, next, path)
				if err != nil {
					return err
				}
			}
		}
	}

	switch n := cur.(type) {
	case nil:
		// Deleted by a hook; nothing left to descend into.
		return nil
	case *schema.Schema:
		return v.visitSlots(n, path)
	case string:
		// Strings are leaves, never decomposed.
		return nil
	default:
		return v.walkGeneric(cur, path, replace)
	}
}

// applyReplace commits a hook-provided replacement through the current slot
// and returns the node traversal should continue with. A nil (or typed-nil)
// replacement deletes the slot.
func (v *Visitor) applyReplace(replace replaceFn, next any, path string) (any, error) {
	if isNilNode(next) {
		if err := replace(nil); err != nil {
			return nil, err
		}
		v.logger.Debug("deleted node", "path", path)
		return nil, nil
	}
	if err := replace(next); err != nil {
		return nil, err
	}
	v.logger.Debug("replaced node", "path", path)
	return next, nil
}

// newContext builds the per-hook visit context.
func (v *Visitor) newContext(path, typeHint string) *VisitContext {
	return &VisitContext{
		Path:     path,
		TypeHint: typeHint,
		ctx:      v.userCtx,
	}
}
