package visitor

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/sverrors"
)

// replaceFn commits a replacement or deletion back into the exact slot the
// current node was reached through. A nil newNode deletes the slot: single
// child slots are cleared, map entries removed, sequence elements spliced
// out. Slots with no rebindable storage (the root, iterator-yielded items)
// always return a ReplaceError.
type replaceFn func(newNode any) error

// rootTarget aliases the error taxonomy constant for readability at the
// call site in Visit.
const rootTarget = sverrors.TargetRoot

// failingReplacer builds a replacer for structurally non-rebindable slots.
func failingReplacer(path, target string) replaceFn {
	return func(any) error {
		return &sverrors.ReplaceError{Target: target, Path: path}
	}
}

// replaceSchemaSlot builds a replacer for a single optional child slot,
// writing through the supplied setter. Deletion clears the slot to nil.
func replaceSchemaSlot(path string, set func(*schema.Schema)) replaceFn {
	return func(newNode any) error {
		if isNilNode(newNode) {
			set(nil)
			return nil
		}
		s, ok := newNode.(*schema.Schema)
		if !ok {
			return &sverrors.ReplaceError{
				Target:  "schema slot",
				Path:    path,
				Message: fmt.Sprintf("cannot store %T", newNode),
			}
		}
		set(s)
		return nil
	}
}

// replaceSchemaKey builds a replacer for an entry of a keyed schema map.
// Deletion removes the entry.
func replaceSchemaKey(path string, m map[string]*schema.Schema, key string) replaceFn {
	return func(newNode any) error {
		if isNilNode(newNode) {
			delete(m, key)
			return nil
		}
		s, ok := newNode.(*schema.Schema)
		if !ok {
			return &sverrors.ReplaceError{
				Target:  "map entry",
				Path:    path,
				Message: fmt.Sprintf("cannot store %T", newNode),
			}
		}
		m[key] = s
		return nil
	}
}

// replaceSchemaIndex builds a replacer for an element of an index-significant
// schema sequence, using replace-or-delete splice semantics. The element's
// position is looked up by identity at apply time, so deletions of earlier
// siblings in the same pass cannot make the splice land on the wrong slot,
// and a second replacement (schema hook then reference hook) finds the node
// the first one stored.
func replaceSchemaIndex(path string, slot *[]*schema.Schema, current *schema.Schema) replaceFn {
	return func(newNode any) error {
		seq := *slot
		index := slices.Index(seq, current)
		if index < 0 {
			return &sverrors.ReplaceError{
				Target:  "sequence element",
				Path:    path,
				Message: "element no longer present in sequence",
			}
		}
		if isNilNode(newNode) {
			*slot = spliceSchemas(seq, index, nil)
			current = nil
			return nil
		}
		s, ok := newNode.(*schema.Schema)
		if !ok {
			return &sverrors.ReplaceError{
				Target:  "sequence element",
				Path:    path,
				Message: fmt.Sprintf("cannot store %T", newNode),
			}
		}
		*slot = spliceSchemas(seq, index, s)
		current = s
		return nil
	}
}

// spliceSchemas removes the element at index and, when repl is non-nil,
// reinserts it at the same position. Elements before index keep their
// positions; on deletion, elements after index shift down by one. The input
// sequence is not modified.
func spliceSchemas(seq []*schema.Schema, index int, repl *schema.Schema) []*schema.Schema {
	out := make([]*schema.Schema, 0, len(seq))
	out = append(out, seq[:index]...)
	if repl != nil {
		out = append(out, repl)
	}
	out = append(out, seq[index+1:]...)
	return out
}

// replaceMapEntry builds a replacer for an entry of an arbitrary
// string-keyed map encountered by the generic walker.
func replaceMapEntry(path string, m reflect.Value, key string) replaceFn {
	return func(newNode any) error {
		kv := reflect.ValueOf(key).Convert(m.Type().Key())
		if isNilNode(newNode) {
			m.SetMapIndex(kv, reflect.Value{})
			return nil
		}
		nv := reflect.ValueOf(newNode)
		if !nv.Type().AssignableTo(m.Type().Elem()) {
			return &sverrors.ReplaceError{
				Target:  "map entry",
				Path:    path,
				Message: fmt.Sprintf("cannot store %T in %s", newNode, m.Type()),
			}
		}
		m.SetMapIndex(kv, nv)
		return nil
	}
}

// replaceStructField builds a replacer that writes a new value back onto a
// settable struct field. Deletion resets the field to its zero value.
func replaceStructField(path string, fv reflect.Value) replaceFn {
	return func(newNode any) error {
		if isNilNode(newNode) {
			fv.SetZero()
			return nil
		}
		nv := reflect.ValueOf(newNode)
		if !nv.Type().AssignableTo(fv.Type()) {
			return &sverrors.ReplaceError{
				Target:  sverrors.TargetField,
				Path:    path,
				Message: fmt.Sprintf("cannot store %T in field of type %s", newNode, fv.Type()),
			}
		}
		fv.Set(nv)
		return nil
	}
}
