package visitor

import "reflect"

// nodeID identifies a node by reference identity. The kind disambiguates
// values of different kinds that can share an address, such as a struct and
// the first element of a slice inside it.
type nodeID struct {
	ptr  uintptr
	kind reflect.Kind
}

// identitySet records the identities visited in the current traversal.
// It is created fresh per top-level Visit call and discarded afterward.
type identitySet map[nodeID]struct{}

// identityOf returns the identity key for node. Values of non-reference
// kinds (scalars, strings, structs by value) report tracked=false: they
// cannot close a cycle, so they are visited without being recorded.
func identityOf(node any) (id nodeID, tracked bool) {
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return nodeID{ptr: rv.Pointer(), kind: rv.Kind()}, true
	default:
		return nodeID{}, false
	}
}

// isNilNode reports whether node is nil, including typed nils boxed in an
// interface, such as (*schema.Schema)(nil).
func isNilNode(node any) bool {
	if node == nil {
		return true
	}
	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// isNilField reports whether a struct field value holds no node: a nil
// pointer, map, slice, interface, func, or channel. Zero scalars are values,
// not absences.
func isNilField(fv reflect.Value) bool {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return fv.IsNil()
	default:
		return false
	}
}

// sameNode reports whether a and b are the same node by identity. Used to
// decide whether a hook's return value is a replacement or a no-op.
func sameNode(a, b any) bool {
	if isNilNode(a) || isNilNode(b) {
		return isNilNode(a) && isNilNode(b)
	}
	ida, aok := identityOf(a)
	idb, bok := identityOf(b)
	if aok || bok {
		return aok && bok && ida == idb
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Comparable() {
		return false
	}
	return a == b
}
