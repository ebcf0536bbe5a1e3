package xsd

// SourceKind identifies which variant a TypeSource holds.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceReference
	SourceComplex
	SourceSimple
)

// String returns the name of the variant.
func (k SourceKind) String() string {
	switch k {
	case SourceNone:
		return "None"
	case SourceReference:
		return "Reference"
	case SourceComplex:
		return "InlineComplex"
	case SourceSimple:
		return "InlineSimple"
	default:
		return "Unknown"
	}
}

// TypeSource is where an element or attribute gets its type from: a named
// reference, an owned anonymous complex type, an owned anonymous simple type,
// or nothing. Exactly one variant is active; construct values with Ref,
// Complex and Simple. The zero value is the None variant.
type TypeSource struct {
	kind    SourceKind
	ref     string
	complex *ComplexType
	simple  *SimpleType
}

// Ref returns a TypeSource referencing a primitive or named type.
// An empty name yields the None variant.
func Ref(name string) TypeSource {
	if name == "" {
		return TypeSource{}
	}
	return TypeSource{kind: SourceReference, ref: name}
}

// Complex returns a TypeSource owning an anonymous complex type.
// A nil type yields the None variant.
func Complex(ct *ComplexType) TypeSource {
	if ct == nil {
		return TypeSource{}
	}
	return TypeSource{kind: SourceComplex, complex: ct}
}

// Simple returns a TypeSource owning an anonymous simple type.
// A nil type yields the None variant.
func Simple(st *SimpleType) TypeSource {
	if st == nil {
		return TypeSource{}
	}
	return TypeSource{kind: SourceSimple, simple: st}
}

// Kind returns the active variant.
func (s TypeSource) Kind() SourceKind { return s.kind }

// Reference returns the referenced type name, or "" for other variants.
func (s TypeSource) Reference() string { return s.ref }

// ComplexType returns the owned complex type, or nil for other variants.
func (s TypeSource) ComplexType() *ComplexType { return s.complex }

// SimpleType returns the owned simple type, or nil for other variants.
func (s TypeSource) SimpleType() *SimpleType { return s.simple }

// IsInline reports whether the source owns an anonymous nested type.
func (s TypeSource) IsInline() bool {
	return s.kind == SourceComplex || s.kind == SourceSimple
}
