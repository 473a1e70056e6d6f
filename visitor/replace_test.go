// replace_test.go - Unit tests for the replacer machinery, independent of
// the traversal engine.

package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/sverrors"
)

func TestSpliceSchemas_Replace(t *testing.T) {
	a := &schema.Schema{Title: "a"}
	b := &schema.Schema{Title: "b"}
	c := &schema.Schema{Title: "c"}
	repl := &schema.Schema{Title: "r"}

	out := spliceSchemas([]*schema.Schema{a, b, c}, 1, repl)

	require.Len(t, out, 3, "replacing preserves length")
	assert.Same(t, a, out[0])
	assert.Same(t, repl, out[1], "new value at the replaced index")
	assert.Same(t, c, out[2], "order otherwise preserved")
}

func TestSpliceSchemas_Delete(t *testing.T) {
	a := &schema.Schema{Title: "a"}
	b := &schema.Schema{Title: "b"}
	c := &schema.Schema{Title: "c"}

	out := spliceSchemas([]*schema.Schema{a, b, c}, 1, nil)

	require.Len(t, out, 2, "deleting shrinks length by one")
	assert.Same(t, a, out[0])
	assert.Same(t, c, out[1], "following elements shift down by one")
}

func TestSpliceSchemas_Bounds(t *testing.T) {
	a := &schema.Schema{Title: "a"}
	b := &schema.Schema{Title: "b"}

	assert.Equal(t, []*schema.Schema{b}, spliceSchemas([]*schema.Schema{a, b}, 0, nil))
	assert.Equal(t, []*schema.Schema{a}, spliceSchemas([]*schema.Schema{a, b}, 1, nil))
}

func TestSpliceSchemas_InputUntouched(t *testing.T) {
	a := &schema.Schema{Title: "a"}
	b := &schema.Schema{Title: "b"}
	in := []*schema.Schema{a, b}

	_ = spliceSchemas(in, 0, nil)

	assert.Equal(t, []*schema.Schema{a, b}, in)
}

func TestFailingReplacer(t *testing.T) {
	rep := failingReplacer("#", sverrors.TargetRoot)

	err := rep(&schema.Schema{})
	require.Error(t, err)
	assert.ErrorIs(t, err, sverrors.ErrUnsupportedReplace)

	// Deletion through a failing replacer fails the same way.
	assert.ErrorIs(t, rep(nil), sverrors.ErrUnsupportedReplace)
}

func TestReplaceSchemaSlot(t *testing.T) {
	holder := &schema.Schema{Not: &schema.Schema{Title: "old"}}
	rep := replaceSchemaSlot("#/not", func(n *schema.Schema) { holder.Not = n })

	next := &schema.Schema{Title: "new"}
	require.NoError(t, rep(next))
	assert.Same(t, next, holder.Not)

	require.NoError(t, rep(nil))
	assert.Nil(t, holder.Not)
}

func TestReplaceSchemaSlot_TypeMismatch(t *testing.T) {
	holder := &schema.Schema{}
	rep := replaceSchemaSlot("#/not", func(n *schema.Schema) { holder.Not = n })

	err := rep("not a schema")
	assert.ErrorIs(t, err, sverrors.ErrUnsupportedReplace)
}

func TestReplaceSchemaKey(t *testing.T) {
	m := map[string]*schema.Schema{"a": {Title: "old"}}
	rep := replaceSchemaKey("#/properties/a", m, "a")

	next := &schema.Schema{Title: "new"}
	require.NoError(t, rep(next))
	assert.Same(t, next, m["a"])

	require.NoError(t, rep(nil))
	assert.NotContains(t, m, "a")
}

func TestReplaceSchemaIndex_MissingElement(t *testing.T) {
	gone := &schema.Schema{Title: "gone"}
	seq := []*schema.Schema{{Title: "a"}}
	rep := replaceSchemaIndex("#/allOf[1]", &seq, gone)

	err := rep(&schema.Schema{Title: "new"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sverrors.ErrUnsupportedReplace)
}

// The schema hook and reference hook may both replace the same element; the
// second replacement must find the node the first one stored.
func TestReplaceSchemaIndex_DoubleReplace(t *testing.T) {
	a := &schema.Schema{Title: "a"}
	seq := []*schema.Schema{a}
	rep := replaceSchemaIndex("#/allOf[0]", &seq, a)

	first := &schema.Schema{Title: "first"}
	require.NoError(t, rep(first))
	assert.Same(t, first, seq[0])

	second := &schema.Schema{Title: "second"}
	require.NoError(t, rep(second))
	assert.Same(t, second, seq[0])
}
