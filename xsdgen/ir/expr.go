package ir

// ArrayDescriptor represents a repeated element (maxOccurs other than 1).
type ArrayDescriptor struct {
	exprBase

	// Element is the array element type.
	Element TypeDescriptor
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

// Slice returns an ArrayDescriptor for a repeated element.
func Slice(element TypeDescriptor) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element}
}

// ReferenceDescriptor represents a reference to a named type.
// The target may be defined later in Schema.Types, or not at all when it
// lives in another schema document.
type ReferenceDescriptor struct {
	exprBase

	// Target is the referenced type's resolved identifier.
	Target string
}

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

// Ref returns a ReferenceDescriptor for a named type.
func Ref(name string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: name}
}

// OptionalDescriptor represents a value that may be absent on the wire.
type OptionalDescriptor struct {
	exprBase

	// Element is the wrapped type.
	Element TypeDescriptor
}

// Kind returns KindOptional.
func (d *OptionalDescriptor) Kind() DescriptorKind { return KindOptional }

// Optional returns an OptionalDescriptor wrapping element.
func Optional(element TypeDescriptor) *OptionalDescriptor {
	return &OptionalDescriptor{Element: element}
}
