package ir

import (
	"strings"
	"testing"
)

func TestSchema_AddAndFind(t *testing.T) {
	s := &Schema{}
	s.AddType(&StructDescriptor{Name: "User"})
	s.AddType(&AliasDescriptor{Name: "UserID", Underlying: String()})
	s.AddWarning(Warning{Code: WarnEnumFallback, Message: "fallback"})

	if len(s.Types) != 2 {
		t.Errorf("Schema.Types length = %d, want 2", len(s.Types))
	}
	if len(s.Warnings) != 1 {
		t.Errorf("Schema.Warnings length = %d, want 1", len(s.Warnings))
	}
	if found := s.FindType("UserID"); found == nil || found.Kind() != KindAlias {
		t.Errorf("FindType(UserID) = %v, want alias", found)
	}
	if found := s.FindType("Missing"); found != nil {
		t.Error("FindType should return nil for non-existing type")
	}
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name  string
		types []TypeDescriptor
		codes []string
	}{
		{
			name: "valid",
			types: []TypeDescriptor{
				&StructDescriptor{Name: "Person", Fields: []FieldDescriptor{
					{Name: "id", WireName: "id", Role: RoleAttribute, Type: String()},
					{Name: "address", WireName: "address", Role: RoleElement, Type: Ref("PersonAddress")},
				}},
				&EnumDescriptor{Name: "ColorEnum", Members: []EnumMember{{Name: "Red", Value: "Red"}}},
				&AliasDescriptor{Name: "Code", Underlying: Int(32)},
			},
		},
		{
			name: "duplicate type",
			types: []TypeDescriptor{
				&StructDescriptor{Name: "Person"},
				&AliasDescriptor{Name: "Person", Underlying: String()},
			},
			codes: []string{"duplicate_type"},
		},
		{
			name: "duplicate field",
			types: []TypeDescriptor{
				&StructDescriptor{Name: "Person", Fields: []FieldDescriptor{
					{Name: "id", Role: RoleAttribute, Type: String()},
					{Name: "id", Role: RoleElement, Type: String()},
				}},
			},
			codes: []string{"duplicate_field"},
		},
		{
			name: "enum problems",
			types: []TypeDescriptor{
				&EnumDescriptor{Name: "Empty"},
				&EnumDescriptor{Name: "Twice", Members: []EnumMember{{Name: "A", Value: "a"}, {Name: "A", Value: "A"}}},
			},
			codes: []string{"empty_enum", "duplicate_enum_member"},
		},
		{
			name: "missing pieces",
			types: []TypeDescriptor{
				&StructDescriptor{Fields: []FieldDescriptor{{Name: "x"}}},
				&StructDescriptor{Name: "T", Fields: []FieldDescriptor{{Name: "x"}}},
				&AliasDescriptor{Name: "A"},
			},
			codes: []string{"missing_name", "missing_field_type", "missing_underlying_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schema{Types: tt.types}
			errs := s.Validate()
			if len(errs) != len(tt.codes) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.codes), errs)
			}
			for i, err := range errs {
				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error %d is %T, want *ValidationError", i, err)
				}
				if ve.Code != tt.codes[i] {
					t.Errorf("error %d code = %q, want %q (%s)", i, ve.Code, tt.codes[i], ve.Message)
				}
			}
		})
	}
}

func TestSchema_UnresolvedReferences(t *testing.T) {
	s := &Schema{Types: []TypeDescriptor{
		&StructDescriptor{
			Name:   "Order",
			Source: Source{Path: "complexType[Order]"},
			Fields: []FieldDescriptor{
				{Name: "item", Type: Slice(Ref("OrderItem"))},
				{Name: "buyer", Type: Optional(Ref("Party"))},
			},
		},
		&StructDescriptor{Name: "OrderItem"},
	}}

	warnings := s.UnresolvedReferences()
	if len(warnings) != 1 {
		t.Fatalf("UnresolvedReferences() = %v, want 1 warning", warnings)
	}
	w := warnings[0]
	if w.Code != WarnMissingReference || w.TypeName != "Order" || w.Path != "complexType[Order]" {
		t.Errorf("unexpected warning %+v", w)
	}
	if !strings.Contains(w.Message, "Party") {
		t.Errorf("warning message %q does not name the missing type", w.Message)
	}
}

func TestReferences(t *testing.T) {
	s := &StructDescriptor{Name: "A", Fields: []FieldDescriptor{
		{Name: "b", Type: Ref("B")},
		{Name: "c", Type: Slice(Ref("C"))},
		{Name: "b2", Type: Optional(Ref("B"))},
		{Name: "s", Type: String()},
	}}
	got := References(s)
	want := []string{"B", "C"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("References() = %v, want %v", got, want)
	}

	if got := References(&AliasDescriptor{Name: "X", Underlying: Ref("Y")}); len(got) != 1 || got[0] != "Y" {
		t.Errorf("References(alias) = %v, want [Y]", got)
	}
	if got := References(&EnumDescriptor{Name: "E"}); len(got) != 0 {
		t.Errorf("References(enum) = %v, want none", got)
	}
}
