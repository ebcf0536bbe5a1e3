package ir

// PrimitiveKind is the scalar category an XML Schema built-in type maps to.
type PrimitiveKind int

const (
	PrimitiveBool   PrimitiveKind = iota // xs:boolean
	PrimitiveInt                         // xs:integer and its signed subtypes
	PrimitiveUint                        // non-negative and unsigned integer types
	PrimitiveFloat                       // xs:decimal, xs:double, xs:float
	PrimitiveString                      // string family, date/time family, and unknown built-ins
)

var primitiveKindNames = [...]string{
	PrimitiveBool:   "Bool",
	PrimitiveInt:    "Int",
	PrimitiveUint:   "Uint",
	PrimitiveFloat:  "Float",
	PrimitiveString: "String",
}

func (k PrimitiveKind) String() string {
	if k < 0 || int(k) >= len(primitiveKindNames) {
		return "Unknown"
	}
	return primitiveKindNames[k]
}

// PrimitiveDescriptor is a scalar leaf of a type expression.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind

	// BitSize is 8, 16, 32 or 64 for integers and 32 or 64 for floats.
	// Zero means unspecified; see Width.
	BitSize int
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

// Width returns the bit width generators should use: BitSize when set,
// 64 for numeric kinds otherwise, and 0 for bool and string.
func (d *PrimitiveDescriptor) Width() int {
	switch d.PrimitiveKind {
	case PrimitiveInt, PrimitiveUint:
		if d.BitSize == 0 {
			return 64
		}
		return d.BitSize
	case PrimitiveFloat:
		if d.BitSize == 32 {
			return 32
		}
		return 64
	}
	return 0
}

func Bool() *PrimitiveDescriptor   { return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBool} }
func String() *PrimitiveDescriptor { return &PrimitiveDescriptor{PrimitiveKind: PrimitiveString} }

func Int(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveInt, BitSize: bitSize}
}

func Uint(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveUint, BitSize: bitSize}
}

func Float(bitSize int) *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveFloat, BitSize: bitSize}
}
