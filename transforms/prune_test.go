package transforms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/sverrors"
	"github.com/erraggy/schemavisit/visitor"
)

func TestPrune_Deprecated(t *testing.T) {
	root := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"keep": {Type: "string"},
			"old":  {Type: "string", Format: "legacy"},
		},
		AllOf: []*schema.Schema{
			{Type: "object"},
			{Type: "object", Format: "legacy"},
		},
	}

	pruned, err := Prune(root, func(wc *visitor.VisitContext, s *schema.Schema) bool {
		return s.Format == "legacy"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	want := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"keep": {Type: "string"},
		},
		AllOf: []*schema.Schema{
			{Type: "object"},
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("pruned graph mismatch (-want +got):\n%s", diff)
	}
}

func TestPrune_ChildrenNotVisited(t *testing.T) {
	var seen []string
	root := &schema.Schema{
		Properties: map[string]*schema.Schema{
			"doomed": {
				Title: "doomed",
				Properties: map[string]*schema.Schema{
					"child": {Type: "string"},
				},
			},
		},
	}

	_, err := Prune(root, func(wc *visitor.VisitContext, s *schema.Schema) bool {
		seen = append(seen, wc.Path)
		return s.Title == "doomed"
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#", "#/properties/doomed"}, seen,
		"a pruned schema's children are never offered to the predicate")
}

func TestPrune_RootRejected(t *testing.T) {
	root := &schema.Schema{Type: "object"}

	_, err := Prune(root, func(wc *visitor.VisitContext, s *schema.Schema) bool {
		return true
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sverrors.ErrUnsupportedReplace)
}

func TestPrune_NilPredicate(t *testing.T) {
	_, err := Prune(&schema.Schema{}, nil)
	assert.ErrorIs(t, err, sverrors.ErrConfig)
}

func TestPrune_NothingMatches(t *testing.T) {
	root := &schema.Schema{
		Properties: map[string]*schema.Schema{"a": {Type: "string"}},
	}

	pruned, err := Prune(root, func(wc *visitor.VisitContext, s *schema.Schema) bool {
		return false
	})
	require.NoError(t, err)
	assert.Zero(t, pruned)
	assert.Len(t, root.Properties, 1)
}
