package visitor

import (
	"fmt"
	"iter"
	"reflect"
	"sort"

	"github.com/erraggy/schemavisit/sverrors"
)

// Enumerable is implemented by container values that yield elements without
// index-addressable storage. The walker traverses yielded elements in yield
// order, but their replacers always fail: a pure iterator gives no slot to
// rebind an element into.
type Enumerable interface {
	// Elements yields the contained elements in a stable order.
	Elements() iter.Seq[any]
}

// walkGeneric traverses a value whose shape is unknown to the typed engine,
// using structural introspection: string-keyed maps, index-addressable
// sequences, enumerables, then plain structured objects. Everything else is
// a leaf.
func (v *Visitor) walkGeneric(node any, path string, replace replaceFn) error {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		return v.walkMap(rv, path)
	case reflect.Slice:
		return v.walkSequence(rv, path, replace)
	case reflect.Array:
		return v.walkArray(rv, path)
	}

	if e, ok := node.(Enumerable); ok {
		return v.walkEnumerable(e, path)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return v.walkStruct(rv.Elem(), path)
		}
		return nil
	case reflect.Struct:
		return v.walkStruct(rv, path)
	default:
		return nil
	}
}

// walkMap traverses a string-keyed map. Entries are snapshotted and sorted
// by key before iteration; per-entry replacers set or delete the key on the
// live map. Maps with non-string keys are leaves.
func (v *Visitor) walkMap(rv reflect.Value, path string) error {
	if rv.Type().Key().Kind() != reflect.String {
		return nil
	}

	type entry struct {
		key string
		val any
	}
	entries := make([]entry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		entries = append(entries, entry{key: it.Key().String(), val: it.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	for _, e := range entries {
		p := path + "/" + e.key
		if err := v.visit(e.val, p, e.key, replaceMapEntry(p, rv, e.key)); err != nil {
			return err
		}
	}
	return nil
}

// walkSequence traverses a slice. Elements are snapshotted before iteration.
// Replacing an element writes it in place; deleting one splices the sequence
// and rebinds it through the parent replacer, so deletion fails where the
// parent slot is itself non-rebindable (e.g. a slice passed as the root).
// Replacers locate their element by identity in the live sequence at apply
// time, so deletions of earlier siblings cannot shift the splice position.
func (v *Visitor) walkSequence(rv reflect.Value, path string, replace replaceFn) error {
	length := rv.Len()
	snapshot := make([]any, length)
	for i := range length {
		snapshot[i] = rv.Index(i).Interface()
	}

	cur := rv
	for i, elem := range snapshot {
		p := fmt.Sprintf("%s[%d]", path, i)
		current := elem
		rep := func(newNode any) error {
			index := -1
			for j := range cur.Len() {
				if sameNode(cur.Index(j).Interface(), current) {
					index = j
					break
				}
			}
			if index < 0 {
				return &sverrors.ReplaceError{
					Target:  "sequence element",
					Path:    p,
					Message: "element no longer present in sequence",
				}
			}
			if !isNilNode(newNode) {
				nv := reflect.ValueOf(newNode)
				if !nv.Type().AssignableTo(cur.Type().Elem()) {
					return &sverrors.ReplaceError{
						Target:  "sequence element",
						Path:    p,
						Message: fmt.Sprintf("cannot store %T in %s", newNode, cur.Type()),
					}
				}
				cur.Index(index).Set(nv)
				current = newNode
				return nil
			}
			next := reflect.MakeSlice(cur.Type(), 0, cur.Len()-1)
			next = reflect.AppendSlice(next, cur.Slice(0, index))
			next = reflect.AppendSlice(next, cur.Slice(index+1, cur.Len()))
			cur = next
			return replace(cur.Interface())
		}
		if err := v.visit(elem, p, "", rep); err != nil {
			return err
		}
	}
	return nil
}

// walkArray traverses a fixed-length array. Arrays cannot grow or shrink
// and arrive by value, so element replacers always fail.
func (v *Visitor) walkArray(rv reflect.Value, path string) error {
	for i := range rv.Len() {
		p := fmt.Sprintf("%s[%d]", path, i)
		if err := v.visit(rv.Index(i).Interface(), p, "", failingReplacer(p, sverrors.TargetArrayElement)); err != nil {
			return err
		}
	}
	return nil
}

// walkEnumerable traverses a non-index-addressable iterable. Elements are
// snapshotted before visiting so a hook mutating the underlying container
// cannot disturb the iteration.
func (v *Visitor) walkEnumerable(e Enumerable, path string) error {
	var snapshot []any
	for item := range e.Elements() {
		snapshot = append(snapshot, item)
	}
	for i, item := range snapshot {
		p := fmt.Sprintf("%s[%d]", path, i)
		if err := v.visit(item, p, "", failingReplacer(p, sverrors.TargetItem)); err != nil {
			return err
		}
	}
	return nil
}

// walkStruct traverses the exported fields of a plain structured object.
// Fields holding nil are skipped. Field replacers write back by name when
// the struct is addressable (reached through a pointer); otherwise the field
// is traversed read-only and its replacer fails.
func (v *Visitor) walkStruct(rv reflect.Value, path string) error {
	t := rv.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if isNilField(fv) {
			continue
		}
		p := path + "/" + f.Name

		var rep replaceFn
		if fv.CanSet() {
			rep = replaceStructField(p, fv)
		} else {
			rep = failingReplacer(p, sverrors.TargetField)
		}
		if err := v.visit(fv.Interface(), p, f.Name, rep); err != nil {
			return err
		}
	}
	return nil
}
