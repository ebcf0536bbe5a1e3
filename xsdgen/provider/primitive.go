package provider

import (
	"strings"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/naming"
)

// DefaultPrimitivePrefixes are the namespace prefixes conventionally bound to
// the XML Schema namespace.
var DefaultPrimitivePrefixes = []string{"xs", "xsd"}

// primitives maps XML Schema built-in type names to scalar descriptors.
// Date and time types stay strings; they are not parsed.
var primitives = map[string]func() *ir.PrimitiveDescriptor{
	"string":           ir.String,
	"normalizedString": ir.String,
	"token":            ir.String,
	"language":         ir.String,
	"Name":             ir.String,
	"NCName":           ir.String,
	"NMTOKEN":          ir.String,
	"ID":               ir.String,
	"IDREF":            ir.String,
	"anyURI":           ir.String,
	"QName":            ir.String,

	"boolean": ir.Bool,

	"decimal": func() *ir.PrimitiveDescriptor { return ir.Float(64) },
	"float":   func() *ir.PrimitiveDescriptor { return ir.Float(32) },
	"double":  func() *ir.PrimitiveDescriptor { return ir.Float(64) },

	"integer":            func() *ir.PrimitiveDescriptor { return ir.Int(64) },
	"nonPositiveInteger": func() *ir.PrimitiveDescriptor { return ir.Int(64) },
	"negativeInteger":    func() *ir.PrimitiveDescriptor { return ir.Int(64) },
	"long":               func() *ir.PrimitiveDescriptor { return ir.Int(64) },
	"int":                func() *ir.PrimitiveDescriptor { return ir.Int(32) },
	"short":              func() *ir.PrimitiveDescriptor { return ir.Int(16) },
	"byte":               func() *ir.PrimitiveDescriptor { return ir.Int(8) },

	"nonNegativeInteger": func() *ir.PrimitiveDescriptor { return ir.Uint(64) },
	"positiveInteger":    func() *ir.PrimitiveDescriptor { return ir.Uint(64) },
	"unsignedLong":       func() *ir.PrimitiveDescriptor { return ir.Uint(64) },
	"unsignedInt":        func() *ir.PrimitiveDescriptor { return ir.Uint(32) },
	"unsignedShort":      func() *ir.PrimitiveDescriptor { return ir.Uint(16) },
	"unsignedByte":       func() *ir.PrimitiveDescriptor { return ir.Uint(8) },

	"dateTime":   ir.String,
	"time":       ir.String,
	"date":       ir.String,
	"duration":   ir.String,
	"gYearMonth": ir.String,
	"gYear":      ir.String,
	"gMonthDay":  ir.String,
	"gDay":       ir.String,
	"gMonth":     ir.String,
}

// resolveTypeRef maps a type reference to a scalar or a named reference.
//
// References carrying a primitive prefix are looked up in the primitive table;
// unknown keywords fall back to string with a warning. Other non-empty
// references name generated types. An empty reference is a string.
func (b *schemaBuilder) resolveTypeRef(ref, path string) ir.TypeDescriptor {
	if ref == "" {
		return ir.String()
	}

	prefix, local, qualified := strings.Cut(ref, ":")
	if !qualified {
		prefix, local = "", ref
	}

	if b.prefixes[prefix] {
		if ctor, ok := primitives[local]; ok {
			return ctor()
		}
		if qualified {
			b.schema.AddWarning(ir.Warning{
				Code:    ir.WarnUnknownPrimitive,
				Message: "unknown primitive " + ref + ", using string",
				Path:    path,
			})
			return ir.String()
		}
	}

	return ir.Ref(naming.TypeIdentifier(naming.StripPrefix(ref)))
}
