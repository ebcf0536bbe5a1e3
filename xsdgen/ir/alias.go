package ir

// AliasDescriptor represents a named alias of another type expression,
// produced for simple types without a usable enumeration.
type AliasDescriptor struct {
	// Name is the type identifier.
	Name string

	// Underlying is the aliased type.
	Underlying TypeDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source is the schema node this alias was generated from.
	Source Source
}

// Kind returns KindAlias.
func (d *AliasDescriptor) Kind() DescriptorKind { return KindAlias }

// TypeName returns the alias's name.
func (d *AliasDescriptor) TypeName() string { return d.Name }

// Doc returns the alias's documentation.
func (d *AliasDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the alias's source location.
func (d *AliasDescriptor) Src() Source { return d.Source }

func (*AliasDescriptor) sealed() {}
