// Package schema defines the in-memory node model traversed by the visitor
// package.
//
// A [Schema] carries the structurally significant child slots of a JSON
// Schema document: single optional children (not, items-as-schema), keyed
// maps (definitions, properties, patternProperties), and index-significant
// sequences (items-as-tuple, allOf, anyOf, oneOf). The model is supplied
// fully formed by the caller; this library never parses or emits any wire
// format itself, though the struct tags keep the model compatible with
// standard YAML/JSON unmarshaling for callers that do.
package schema

// Schema represents a single JSON Schema node.
//
// The zero value is a valid, empty schema. All slot collections may be nil.
// Schemas form an object graph that may contain cycles; the visitor package
// handles cycle detection, so no care is needed when wiring self-referential
// structures.
type Schema struct {
	// Ref is the raw JSON Reference value (e.g. "#/definitions/Pet").
	// A schema with a non-empty Ref also acts as a [Referencer].
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Structural slots, listed in the order the visitor recurses into them.

	// Definitions holds named reusable schemas.
	Definitions map[string]*Schema `yaml:"definitions,omitempty" json:"definitions,omitempty"`

	// AdditionalItems constrains array elements beyond the Items tuple.
	AdditionalItems *Schema `yaml:"additionalItems,omitempty" json:"additionalItems,omitempty"`

	// AdditionalProperties constrains object members not named in Properties.
	AdditionalProperties *Schema `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`

	// Item is the single-schema form of the "items" keyword.
	Item *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Items is the tuple form of the "items" keyword. Element order is
	// significant. Item and Items are mutually exclusive on the wire; the
	// serialization layer that built the graph decides which one is set.
	Items []*Schema `yaml:"-" json:"-"`

	// Composition keywords
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`

	// Object keywords
	Properties        map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	PatternProperties map[string]*Schema `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`

	// Extra captures specification extensions (fields starting with "x-").
	// The visitor does not descend into Extra; it is inert payload.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RefString implements Referencer. It returns the raw $ref value; an empty
// string means this schema is not a reference.
func (s *Schema) RefString() string {
	return s.Ref
}

// IsReference reports whether this schema carries a JSON Reference.
func (s *Schema) IsReference() bool {
	return s.Ref != ""
}

// Referencer marks a value that carries a JSON Reference and may be
// substituted for its resolution target independently of any schema slots.
//
// A node can be both a *Schema and a Referencer at the same time; the visitor
// runs the schema hook first and the reference hook second in that case.
// Values other than *Schema may also implement Referencer, in which case the
// visitor runs only the reference hook before descending generically.
type Referencer interface {
	// RefString returns the raw reference value, e.g. "#/definitions/Pet".
	// An empty string means the value is not currently a reference.
	RefString() string
}

// Ensure Schema implements Referencer at compile time.
var _ Referencer = (*Schema)(nil)
