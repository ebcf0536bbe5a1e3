// Package xsd defines the in-memory XML Schema tree consumed by the type
// generator, and a loader that decodes schema documents into it.
//
// The tree is deliberately small: it models elements, complex and simple
// types, attributes, sequence/all/choice groups, simple content extensions,
// restrictions and enumerations. Anything else in a schema document is
// ignored by the loader.
package xsd

// Schema is the root of a schema tree.
type Schema struct {
	// TargetNamespace is informational; the generator does not qualify names.
	TargetNamespace string

	// Elements are the top-level element declarations in document order.
	Elements []Element

	// ComplexTypes are the top-level named complex types in document order.
	ComplexTypes []ComplexType

	// SimpleTypes are the top-level named simple types in document order.
	SimpleTypes []SimpleType
}

// Element is an element declaration, either top-level or inside a group.
type Element struct {
	Name string

	// Type is the element's value type. The zero value means no type was
	// declared and the element holds a string.
	Type TypeSource

	// MinOccurs is nil when the attribute was absent.
	MinOccurs *int

	// MaxOccurs is nil when the attribute was absent. Otherwise it holds a
	// numeral or Unbounded.
	MaxOccurs *string

	Doc string
}

// Unbounded is the maxOccurs sentinel for unlimited repetition.
const Unbounded = "unbounded"

// Use is the use of an attribute.
type Use int

const (
	UseOptional Use = iota // XSD default when use is absent
	UseRequired
	UseProhibited
)

// String returns the XSD spelling of the use.
func (u Use) String() string {
	switch u {
	case UseOptional:
		return "optional"
	case UseRequired:
		return "required"
	case UseProhibited:
		return "prohibited"
	default:
		return "unknown"
	}
}

// ParseUse converts an XSD use value. The empty string maps to UseOptional.
func ParseUse(s string) (Use, bool) {
	switch s {
	case "", "optional":
		return UseOptional, true
	case "required":
		return UseRequired, true
	case "prohibited":
		return UseProhibited, true
	default:
		return UseOptional, false
	}
}

// Attribute is an attribute declaration.
type Attribute struct {
	Name string
	Type TypeSource
	Use  Use
	Doc  string
}

// GroupKind identifies a model group compositor.
type GroupKind int

const (
	GroupSequence GroupKind = iota
	GroupAll
	GroupChoice
)

// String returns the XSD element name of the compositor.
func (k GroupKind) String() string {
	switch k {
	case GroupSequence:
		return "sequence"
	case GroupAll:
		return "all"
	case GroupChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Group is a sequence, all or choice compositor.
type Group struct {
	Kind     GroupKind
	Elements []Element

	// MinOccurs is the group-level minOccurs, nil when absent.
	MinOccurs *int
}

// SimpleContentExtension models a text value with attributes.
type SimpleContentExtension struct {
	Base       string
	Attributes []Attribute
}

// ComplexType is a complex type definition. Name is empty for anonymous
// types; the owner assigns one during generation.
type ComplexType struct {
	Name string

	// Group is the content model group, if any.
	Group *Group

	// SimpleContent is set for simpleContent/extension types. A well-formed
	// tree never sets both Group and SimpleContent.
	SimpleContent *SimpleContentExtension

	Attributes []Attribute

	Doc string
}

// SimpleType is a simple type definition. Name is empty for anonymous types.
type SimpleType struct {
	Name        string
	Restriction *Restriction
	Doc         string
}

// Restriction restricts a base type, optionally to a set of literals.
type Restriction struct {
	Base string

	// Enumerations holds the raw enumeration literals in document order.
	// Nil or empty means no enumeration facet.
	Enumerations []string
}

// Int returns a pointer to n. It keeps occurrence literals in tests and
// hand-built trees short.
func Int(n int) *int { return &n }

// Str returns a pointer to s.
func Str(s string) *string { return &s }
