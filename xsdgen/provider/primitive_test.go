package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broady/xsdgen/xsdgen/ir"
)

func newTestBuilder() *schemaBuilder {
	return &schemaBuilder{
		schema:   &ir.Schema{},
		prefixes: map[string]bool{"xs": true, "xsd": true},
		claimed:  make(map[string]string),
	}
}

func TestResolveTypeRef(t *testing.T) {
	tests := []struct {
		ref  string
		want ir.TypeDescriptor
	}{
		{"", ir.String()},
		{"xs:string", ir.String()},
		{"xsd:string", ir.String()},
		{"xs:NMTOKEN", ir.String()},
		{"xs:anyURI", ir.String()},
		{"xs:boolean", ir.Bool()},
		{"xs:decimal", ir.Float(64)},
		{"xs:double", ir.Float(64)},
		{"xs:float", ir.Float(32)},
		{"xs:integer", ir.Int(64)},
		{"xs:long", ir.Int(64)},
		{"xs:negativeInteger", ir.Int(64)},
		{"xs:int", ir.Int(32)},
		{"xs:short", ir.Int(16)},
		{"xsd:byte", ir.Int(8)},
		{"xs:nonNegativeInteger", ir.Uint(64)},
		{"xs:positiveInteger", ir.Uint(64)},
		{"xs:unsignedInt", ir.Uint(32)},
		{"xs:unsignedShort", ir.Uint(16)},
		{"xs:unsignedByte", ir.Uint(8)},
		{"xs:dateTime", ir.String()},
		{"xs:gYearMonth", ir.String()},
		{"Address", ir.Ref("Address")},
		{"tns:Address", ir.Ref("Address")},
		{"tns:postal_address", ir.Ref("PostalAddress")},
		{"string", ir.Ref("String")},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			b := newTestBuilder()
			assert.Equal(t, tt.want, b.resolveTypeRef(tt.ref, "p"))
			assert.Empty(t, b.schema.Warnings)
		})
	}
}

func TestResolveTypeRef_Unknown(t *testing.T) {
	b := newTestBuilder()
	got := b.resolveTypeRef("xs:anySimpleType", "complexType[T]")

	assert.Equal(t, ir.String(), got)
	assert.Equal(t, []ir.Warning{{
		Code:    ir.WarnUnknownPrimitive,
		Message: "unknown primitive xs:anySimpleType, using string",
		Path:    "complexType[T]",
	}}, b.schema.Warnings)
}
