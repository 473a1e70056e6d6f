package transforms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemavisit/schema"
)

func TestCollectRefs(t *testing.T) {
	root := &schema.Schema{
		Definitions: map[string]*schema.Schema{
			"Pet": {Type: "object"},
		},
		Properties: map[string]*schema.Schema{
			"pet":   {Ref: "#/definitions/Pet"},
			"other": {Ref: "external.json#/Pet"},
			"plain": {Type: "string"},
		},
	}

	refs, err := CollectRefs(root)
	require.NoError(t, err)

	want := []*RefInfo{
		{Ref: "external.json#/Pet", Path: "#/properties/other"},
		{Ref: "#/definitions/Pet", Path: "#/properties/pet"},
	}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("collected refs mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectRefs_SharedReferenceOnce(t *testing.T) {
	shared := &schema.Schema{Ref: "#/definitions/Pet"}
	root := &schema.Schema{
		Properties: map[string]*schema.Schema{"a": shared, "b": shared},
	}

	refs, err := CollectRefs(root)
	require.NoError(t, err)
	require.Len(t, refs, 1, "a shared reference node reports once")
	assert.Equal(t, "#/properties/a", refs[0].Path)
}

func TestCollectRefs_NoRefs(t *testing.T) {
	refs, err := CollectRefs(&schema.Schema{Type: "object"})
	require.NoError(t, err)
	assert.Empty(t, refs)
}
