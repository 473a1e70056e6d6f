package visitor

import (
	"fmt"
	"slices"
	"sort"

	"github.com/erraggy/schemavisit/schema"
)

// sortedMapKeys returns sorted keys from any map with string keys, giving
// map slots a deterministic visitation order.
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// visitSlots recurses into the structurally significant slots of a schema
// node. The order is a contract: definitions, additionalItems,
// additionalProperties, items (single), items (tuple), allOf, anyOf, oneOf,
// not, properties, patternProperties. Map and sequence slots are snapshotted
// before iteration so hook mutations cannot skip or duplicate visits.
func (v *Visitor) visitSlots(s *schema.Schema, path string) error {
	if err := v.visitSchemaMap(s.Definitions, path+"/definitions"); err != nil {
		return err
	}

	if s.AdditionalItems != nil {
		p := path + "/additionalItems"
		if err := v.visit(s.AdditionalItems, p, "", replaceSchemaSlot(p, func(n *schema.Schema) { s.AdditionalItems = n })); err != nil {
			return err
		}
	}

	if s.AdditionalProperties != nil {
		p := path + "/additionalProperties"
		if err := v.visit(s.AdditionalProperties, p, "", replaceSchemaSlot(p, func(n *schema.Schema) { s.AdditionalProperties = n })); err != nil {
			return err
		}
	}

	if s.Item != nil {
		p := path + "/items"
		if err := v.visit(s.Item, p, "", replaceSchemaSlot(p, func(n *schema.Schema) { s.Item = n })); err != nil {
			return err
		}
	}

	if err := v.visitSchemaSeq(&s.Items, path+"/items"); err != nil {
		return err
	}
	if err := v.visitSchemaSeq(&s.AllOf, path+"/allOf"); err != nil {
		return err
	}
	if err := v.visitSchemaSeq(&s.AnyOf, path+"/anyOf"); err != nil {
		return err
	}
	if err := v.visitSchemaSeq(&s.OneOf, path+"/oneOf"); err != nil {
		return err
	}

	if s.Not != nil {
		p := path + "/not"
		if err := v.visit(s.Not, p, "", replaceSchemaSlot(p, func(n *schema.Schema) { s.Not = n })); err != nil {
			return err
		}
	}

	if err := v.visitSchemaMap(s.Properties, path+"/properties"); err != nil {
		return err
	}
	return v.visitSchemaMap(s.PatternProperties, path+"/patternProperties")
}

// visitSchemaMap walks a keyed schema map slot. Entries are snapshotted
// up front: deleting or replacing entry k from a hook does not perturb the
// entries still to be visited after it.
func (v *Visitor) visitSchemaMap(m map[string]*schema.Schema, basePath string) error {
	if len(m) == 0 {
		return nil
	}
	keys := sortedMapKeys(m)
	snapshot := make([]*schema.Schema, len(keys))
	for i, key := range keys {
		snapshot[i] = m[key]
	}
	for i, key := range keys {
		entry := snapshot[i]
		if entry == nil {
			continue
		}
		p := basePath + "/" + key
		if err := v.visit(entry, p, key, replaceSchemaKey(p, m, key)); err != nil {
			return err
		}
	}
	return nil
}

// visitSchemaSeq walks an index-significant schema sequence slot. Elements
// are snapshotted up front; paths carry the snapshot index, while replacers
// locate their element by identity in the live sequence at apply time.
func (v *Visitor) visitSchemaSeq(slot *[]*schema.Schema, basePath string) error {
	snapshot := slices.Clone(*slot)
	for i, entry := range snapshot {
		if entry == nil {
			continue
		}
		p := fmt.Sprintf("%s[%d]", basePath, i)
		if err := v.visit(entry, p, "", replaceSchemaIndex(p, slot, entry)); err != nil {
			return err
		}
	}
	return nil
}
