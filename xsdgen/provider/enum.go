package provider

import (
	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/naming"
)

// enumSuffix is appended to a simple type's name to name its enum.
const enumSuffix = "Enum"

// emitSimple emits the definitions for a simple type named name.
//
// An enumeration whose literals all start with an ASCII letter and map to
// distinct member identifiers becomes an enum plus a wrapper struct carrying
// it as text content. Anything else becomes an alias of the restriction base.
func (b *schemaBuilder) emitSimple(st *xsd.SimpleType, name, path string) error {
	if err := b.claim(name, path); err != nil {
		return err
	}
	doc := ir.NewDocumentation(st.Doc)
	src := ir.Source{Path: path}

	r := st.Restriction
	if r == nil {
		b.schema.AddType(&ir.AliasDescriptor{Name: name, Underlying: ir.String(), Documentation: doc, Source: src})
		return nil
	}

	base := b.resolveTypeRef(r.Base, path+"/restriction")
	if len(r.Enumerations) == 0 {
		b.schema.AddType(&ir.AliasDescriptor{Name: name, Underlying: base, Documentation: doc, Source: src})
		return nil
	}

	for _, lit := range r.Enumerations {
		if !startsWithLetter(lit) {
			b.schema.AddWarning(ir.Warning{
				Code:     ir.WarnEnumFallback,
				Message:  "enumeration value " + quote(lit) + " is not a valid identifier, emitting an alias",
				Path:     path,
				TypeName: name,
			})
			b.schema.AddType(&ir.AliasDescriptor{Name: name, Underlying: base, Documentation: doc, Source: src})
			return nil
		}
	}

	members := make([]ir.EnumMember, 0, len(r.Enumerations))
	seen := make(map[string]string, len(r.Enumerations))
	for _, lit := range r.Enumerations {
		member := naming.TypeIdentifier(lit)
		if prev, ok := seen[member]; ok {
			b.schema.AddWarning(ir.Warning{
				Code:     ir.WarnEnumFallback,
				Message:  "enumeration values " + quote(prev) + " and " + quote(lit) + " both map to " + member + ", emitting an alias",
				Path:     path,
				TypeName: name,
			})
			b.schema.AddType(&ir.AliasDescriptor{Name: name, Underlying: base, Documentation: doc, Source: src})
			return nil
		}
		seen[member] = lit
		members = append(members, ir.EnumMember{Name: member, Value: lit})
	}

	enumName := name + enumSuffix
	if err := b.claim(enumName, path); err != nil {
		return err
	}
	enum := &ir.EnumDescriptor{
		Name:          enumName,
		Members:       members,
		Documentation: doc,
		Source:        src,
	}
	b.schema.AddType(enum)

	b.schema.AddType(&ir.StructDescriptor{
		Name: name,
		Fields: []ir.FieldDescriptor{{
			Name: textField,
			Role: ir.RoleText,
			Type: ir.Ref(enumName),
		}},
		Documentation: doc,
		Source:        src,
	})
	return nil
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func quote(s string) string { return `"` + s + `"` }
