package ir

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	// Named type descriptors (appear in Schema.Types)
	KindStruct DescriptorKind = iota // Aggregate with named, wire-tagged fields
	KindAlias                        // Named alias of another type expression
	KindEnum                         // Closed set of string literals

	// Expression type descriptors (appear nested in fields/types)
	KindPrimitive // Built-in scalar
	KindArray     // Repeated element (maxOccurs > 1)
	KindReference // Reference to a named type
	KindOptional  // Optional value (minOccurs=0, use=optional)
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindAlias:
		return "Alias"
	case KindEnum:
		return "Enum"
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindReference:
		return "Reference"
	case KindOptional:
		return "Optional"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// TypeName returns the resolved identifier of a named type.
	// Returns "" for expression types (primitives, arrays, etc).
	TypeName() string

	// Doc returns associated documentation.
	// Returns zero value for expression types.
	Doc() Documentation

	// Src returns the schema node the type was generated from.
	// Returns zero value for expression types.
	Src() Source

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// exprBase provides zero-value implementations of TypeDescriptor methods
// for expression type descriptors that don't have names, docs, or source.
type exprBase struct{}

func (exprBase) TypeName() string   { return "" }
func (exprBase) Doc() Documentation { return Documentation{} }
func (exprBase) Src() Source        { return Source{} }
func (exprBase) sealed()            {}
