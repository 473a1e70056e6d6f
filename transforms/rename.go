package transforms

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/schemavisit/schema"
	"github.com/erraggy/schemavisit/sverrors"
	"github.com/erraggy/schemavisit/visitor"
)

// RenameDefinitions rewrites the keys of every definitions map in the graph
// using rename. A rename that maps a key to itself is a no-op; a rename that
// collides with an existing key overwrites that entry, last-sorted-key wins.
// $ref strings pointing at renamed definitions are not rewritten; callers
// that need that should pair this with a reference-fixing pass.
//
// Returns the number of definitions renamed.
func RenameDefinitions(root *schema.Schema, rename func(string) string) (int, error) {
	if root == nil {
		return 0, &sverrors.ConfigError{Option: "root", Message: "must not be nil"}
	}
	if rename == nil {
		return 0, &sverrors.ConfigError{Option: "rename", Message: "must not be nil"}
	}

	renamed := 0
	err := visitor.Visit(root,
		visitor.WithSchemaHook(func(wc *visitor.VisitContext, s *schema.Schema) (*schema.Schema, error) {
			if len(s.Definitions) == 0 {
				return s, nil
			}
			// Snapshot keys before rewriting: the hook runs before the
			// engine descends into this node's slots, so the engine sees
			// the renamed map.
			keys := make([]string, 0, len(s.Definitions))
			for name := range s.Definitions {
				keys = append(keys, name)
			}
			for _, name := range keys {
				next := rename(name)
				if next == name || next == "" {
					continue
				}
				s.Definitions[next] = s.Definitions[name]
				delete(s.Definitions, name)
				renamed++
			}
			return s, nil
		}),
	)
	if err != nil {
		return renamed, err
	}
	return renamed, nil
}

// TitleNamer returns a rename function that title-cases names using English
// casing rules, e.g. "pet store" becomes "Pet Store".
func TitleNamer() func(string) string {
	c := cases.Title(language.English)
	return c.String
}

// LowerNamer returns a rename function that lower-cases names using English
// casing rules.
func LowerNamer() func(string) string {
	c := cases.Lower(language.English)
	return c.String
}

// PrefixNamer returns a rename function that prepends prefix to names that
// do not already carry it.
func PrefixNamer(prefix string) func(string) string {
	return func(name string) string {
		if strings.HasPrefix(name, prefix) {
			return name
		}
		return prefix + name
	}
}
