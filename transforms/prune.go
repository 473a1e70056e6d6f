package transforms

import (
	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/sverrors"
	"github.com/erraggy/schemavisit/visitor"
)

// Prune deletes every schema for which predicate returns true, splicing it
// out of whatever slot held it. Children of a pruned schema are not visited.
//
// The root cannot be pruned: a predicate matching the root fails the
// traversal with sverrors.ErrUnsupportedReplace, leaving any earlier
// deletions applied.
//
// Returns the number of schemas pruned.
func Prune(root any, predicate func(wc *visitor.VisitContext, s *schema.Schema) bool) (int, error) {
	if predicate == nil {
		return 0, &sverrors.ConfigError{Option: "predicate", Message: "must not be nil"}
	}

	pruned := 0
	err := visitor.Visit(root,
		visitor.WithSchemaHook(func(wc *visitor.VisitContext, s *schema.Schema) (*schema.Schema, error) {
			if predicate(wc, s) {
				pruned++
				return nil, nil
			}
			return s, nil
		}),
	)
	if err != nil {
		return pruned, err
	}
	return pruned, nil
}
