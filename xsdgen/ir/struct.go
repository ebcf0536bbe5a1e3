package ir

// WireRole tells a serializer where a field's value appears in the markup.
type WireRole int

const (
	RoleAttribute WireRole = iota // Attribute of the owning element
	RoleElement                   // Child element
	RoleText                      // Text content of the owning element
)

// String returns the string representation of the wire role.
func (r WireRole) String() string {
	switch r {
	case RoleAttribute:
		return "attribute"
	case RoleElement:
		return "element"
	case RoleText:
		return "text"
	default:
		return "unknown"
	}
}

// StructDescriptor represents an aggregate type generated from a complex
// type or an enumeration wrapper.
type StructDescriptor struct {
	// Name is the resolved type identifier.
	Name string

	// Fields contains all fields: attributes first, then elements or text.
	Fields []FieldDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source is the schema node this struct was generated from.
	Source Source
}

// Kind returns KindStruct.
func (d *StructDescriptor) Kind() DescriptorKind { return KindStruct }

// TypeName returns the struct's name.
func (d *StructDescriptor) TypeName() string { return d.Name }

// Doc returns the struct's documentation.
func (d *StructDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the struct's source location.
func (d *StructDescriptor) Src() Source { return d.Source }

func (*StructDescriptor) sealed() {}

// FieldDescriptor represents a single field within a struct.
type FieldDescriptor struct {
	// Name is the snake_case field identifier. Generators escape or re-case it.
	Name string

	// WireName is the exact schema identifier of the attribute or element.
	// Empty for text content fields.
	WireName string

	// Role is where the value appears in the markup.
	Role WireRole

	// Type is the field's type descriptor. Optional and repeated fields are
	// wrapped in OptionalDescriptor and ArrayDescriptor.
	Type TypeDescriptor

	// Default indicates the deserializer should use the zero value when the
	// field is absent (minOccurs=0).
	Default bool

	// Documentation for this field.
	Documentation Documentation
}
