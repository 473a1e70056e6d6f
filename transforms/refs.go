package transforms

import (
	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/visitor"
)

// RefInfo describes a $ref encountered during traversal.
type RefInfo struct {
	// Ref is the raw reference value (e.g. "#/definitions/Pet").
	Ref string

	// Path is the traversal path where the reference was encountered.
	Path string
}

// CollectRefs traverses the graph and returns every reference it carries, in
// traversal order. Nodes reachable through multiple slots are reported once.
func CollectRefs(root any) ([]*RefInfo, error) {
	var refs []*RefInfo
	err := visitor.Visit(root,
		visitor.WithReferenceHook(func(wc *visitor.VisitContext, ref schema.Referencer) (any, error) {
			if r := ref.RefString(); r != "" {
				refs = append(refs, &RefInfo{Ref: r, Path: wc.Path})
			}
			return ref, nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return refs, nil
}
