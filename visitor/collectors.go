package visitor

import "github.com/erraggy/schemavisit/schema"

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *schema.Schema

	// Name is the map key the schema was reached through (a definition or
	// property name). Empty for sequence elements and single-child slots.
	Name string

	// Path is the full traversal path to the schema.
	Path string

	// IsReference is true when the schema carries a $ref.
	IsReference bool
}

// SchemaCollector holds schemas collected during a traversal.
type SchemaCollector struct {
	// All contains all schemas in traversal order.
	All []*SchemaInfo

	// References contains only schemas carrying a $ref.
	References []*SchemaInfo

	// ByPath provides lookup by traversal path.
	ByPath map[string]*SchemaInfo

	// ByName provides lookup by the name the schema was reached through.
	// Note: if multiple schemas share a name, only the last one is stored.
	ByName map[string]*SchemaInfo
}

// CollectSchemas traverses the graph and collects every schema node.
// Each node appears exactly once even when multiple slots reach it.
func CollectSchemas(root any) (*SchemaCollector, error) {
	collector := &SchemaCollector{
		All:        make([]*SchemaInfo, 0),
		References: make([]*SchemaInfo, 0),
		ByPath:     make(map[string]*SchemaInfo),
		ByName:     make(map[string]*SchemaInfo),
	}

	err := Visit(root,
		WithSchemaHook(func(wc *VisitContext, s *schema.Schema) (*schema.Schema, error) {
			info := &SchemaInfo{
				Schema:      s,
				Name:        wc.TypeHint,
				Path:        wc.Path,
				IsReference: s.IsReference(),
			}

			collector.All = append(collector.All, info)
			collector.ByPath[wc.Path] = info
			if wc.TypeHint != "" {
				collector.ByName[wc.TypeHint] = info
			}
			if info.IsReference {
				collector.References = append(collector.References, info)
			}

			return s, nil
		}),
	)

	if err != nil {
		return nil, err
	}
	return collector, nil
}

// CollectPaths traverses the graph and returns the path of every visited
// schema node in traversal order. Useful for asserting on visitation
// sequence and for quick structural diffs between graphs.
func CollectPaths(root any) ([]string, error) {
	var paths []string
	err := Visit(root,
		WithSchemaHook(func(wc *VisitContext, s *schema.Schema) (*schema.Schema, error) {
			paths = append(paths, wc.Path)
			return s, nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return paths, nil
}
