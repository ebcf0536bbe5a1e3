package ir

// EnumDescriptor represents a closed set of string literals.
// Generators emit it as a sum type or a string type with constants.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name string

	// Members contains all enum variants in schema order.
	Members []EnumMember

	// Documentation for this type.
	Documentation Documentation

	// Source is the schema node this enum was generated from.
	Source Source
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() DescriptorKind { return KindEnum }

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() string { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the enum's source location.
func (d *EnumDescriptor) Src() Source { return d.Source }

func (*EnumDescriptor) sealed() {}

// EnumMember represents a single enum variant.
type EnumMember struct {
	// Name is the variant identifier.
	Name string `json:"name"`

	// Value is the literal exactly as written in the schema. It is the wire
	// form of the variant.
	Value string `json:"value"`
}
