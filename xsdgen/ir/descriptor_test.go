package ir

import "testing"

func TestDescriptorKind_String(t *testing.T) {
	tests := []struct {
		kind DescriptorKind
		want string
	}{
		{KindStruct, "Struct"},
		{KindAlias, "Alias"},
		{KindEnum, "Enum"},
		{KindPrimitive, "Primitive"},
		{KindArray, "Array"},
		{KindReference, "Reference"},
		{KindOptional, "Optional"},
		{DescriptorKind(999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("DescriptorKind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprBase_ZeroValues(t *testing.T) {
	exprs := []TypeDescriptor{String(), Slice(Bool()), Ref("User"), Optional(Int(32))}
	for _, e := range exprs {
		if e.TypeName() != "" {
			t.Errorf("%s.TypeName() = %q, want empty", e.Kind(), e.TypeName())
		}
		if !e.Doc().IsZero() {
			t.Errorf("%s.Doc() should return zero value", e.Kind())
		}
		if !e.Src().IsZero() {
			t.Errorf("%s.Src() should return zero value", e.Kind())
		}
	}
}

func TestNamedDescriptors(t *testing.T) {
	doc := NewDocumentation("A color.\n\nUsed for paint.")
	src := Source{Path: "simpleType[Color]"}

	named := []TypeDescriptor{
		&StructDescriptor{Name: "Color", Documentation: doc, Source: src},
		&EnumDescriptor{Name: "Color", Documentation: doc, Source: src},
		&AliasDescriptor{Name: "Color", Documentation: doc, Source: src},
	}
	kinds := []DescriptorKind{KindStruct, KindEnum, KindAlias}

	for i, d := range named {
		if d.Kind() != kinds[i] {
			t.Errorf("Kind() = %v, want %v", d.Kind(), kinds[i])
		}
		if d.TypeName() != "Color" {
			t.Errorf("%s.TypeName() = %q, want Color", d.Kind(), d.TypeName())
		}
		if d.Doc() != doc {
			t.Errorf("%s.Doc() = %v, want %v", d.Kind(), d.Doc(), doc)
		}
		if d.Src() != src {
			t.Errorf("%s.Src() = %v, want %v", d.Kind(), d.Src(), src)
		}
	}
}

func TestNewDocumentation(t *testing.T) {
	tests := []struct {
		in      string
		summary string
		body    string
	}{
		{"", "", ""},
		{"   ", "", ""},
		{"One line.", "One line.", "One line."},
		{"First.\n\nSecond.", "First.", "First.\n\nSecond."},
		{"  padded  ", "padded", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NewDocumentation(tt.in)
			if got.Summary != tt.summary || got.Body != tt.body {
				t.Errorf("NewDocumentation(%q) = %+v, want summary %q body %q", tt.in, got, tt.summary, tt.body)
			}
		})
	}
}

func TestWireRole_String(t *testing.T) {
	tests := []struct {
		role WireRole
		want string
	}{
		{RoleAttribute, "attribute"},
		{RoleElement, "element"},
		{RoleText, "text"},
		{WireRole(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("WireRole(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestPrimitiveConstructors(t *testing.T) {
	tests := []struct {
		name    string
		got     *PrimitiveDescriptor
		want    PrimitiveKind
		bitSize int
	}{
		{"Bool", Bool(), PrimitiveBool, 0},
		{"String", String(), PrimitiveString, 0},
		{"Int8", Int(8), PrimitiveInt, 8},
		{"Uint16", Uint(16), PrimitiveUint, 16},
		{"Float32", Float(32), PrimitiveFloat, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.PrimitiveKind != tt.want || tt.got.BitSize != tt.bitSize {
				t.Errorf("%s = %v/%d, want %v/%d", tt.name, tt.got.PrimitiveKind, tt.got.BitSize, tt.want, tt.bitSize)
			}
			if tt.got.Kind() != KindPrimitive {
				t.Errorf("%s.Kind() = %v, want KindPrimitive", tt.name, tt.got.Kind())
			}
		})
	}
	if got := PrimitiveKind(99).String(); got != "Unknown" {
		t.Errorf("PrimitiveKind(99).String() = %q, want Unknown", got)
	}
}

func TestPrimitiveWidth(t *testing.T) {
	tests := []struct {
		in   *PrimitiveDescriptor
		want int
	}{
		{Bool(), 0},
		{String(), 0},
		{Int(0), 64},
		{Int(16), 16},
		{Uint(8), 8},
		{Float(0), 64},
		{Float(32), 32},
	}
	for _, tt := range tests {
		if got := tt.in.Width(); got != tt.want {
			t.Errorf("%v/%d Width() = %d, want %d", tt.in.PrimitiveKind, tt.in.BitSize, got, tt.want)
		}
	}
}
