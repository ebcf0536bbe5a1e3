package rust

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/target"
)

// Emitter handles Rust code emission for IR type descriptors.
type Emitter struct {
	config target.GeneratorConfig
	rust   Config
	indent string

	// names caches escaped type identifiers so each rewrite warns once.
	names    map[string]string
	warnings []ir.Warning

	// recursive maps types that contain themselves by value, directly or
	// through other types, to their cycle group.
	recursive map[string]int
}

// inCycle reports whether owner holding target by value closes a cycle.
func (e *Emitter) inCycle(owner, target string) bool {
	g, ok := e.recursive[owner]
	if !ok {
		return false
	}
	h, ok := e.recursive[target]
	return ok && g == h
}

func (e *Emitter) emitHeader(buf *bytes.Buffer) {
	buf.WriteString("// Code generated by xsdgen. DO NOT EDIT.\n")
	if e.rust.SerdeImport {
		buf.WriteString("\nuse serde::{Deserialize, Serialize};\n")
	}
}

// EmitType emits a top-level type declaration.
func (e *Emitter) EmitType(buf *bytes.Buffer, typ ir.TypeDescriptor) error {
	if e.config.EmitComments {
		target.WriteComment(buf, "", "///", typ.Doc())
	}

	switch t := typ.(type) {
	case *ir.StructDescriptor:
		return e.emitStruct(buf, t)
	case *ir.EnumDescriptor:
		return e.emitEnum(buf, t)
	case *ir.AliasDescriptor:
		return e.emitAlias(buf, t)
	default:
		return fmt.Errorf("unsupported top-level type kind: %s", typ.Kind())
	}
}

func (e *Emitter) emitStruct(buf *bytes.Buffer, s *ir.StructDescriptor) error {
	e.emitDerive(buf)
	fmt.Fprintf(buf, "%sstruct %s {", e.visibility(), e.typeName(s.Name))
	if len(s.Fields) == 0 {
		buf.WriteString("}\n")
		return nil
	}
	buf.WriteByte('\n')

	for _, f := range s.Fields {
		if e.config.EmitComments {
			target.WriteComment(buf, e.indent, "///", f.Documentation)
		}
		if f.Default {
			buf.WriteString(e.indent)
			buf.WriteString("#[serde(default)]\n")
		}
		fmt.Fprintf(buf, "%s#[serde(rename = %s)]\n", e.indent, rustString(wireName(f)))

		typeExpr, err := e.typeExpr(s.Name, f.Type)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		fmt.Fprintf(buf, "%s%s%s: %s,\n", e.indent, e.visibility(), e.fieldName(s.Name, f.Name), typeExpr)
	}
	buf.WriteString("}\n")
	return nil
}

func (e *Emitter) emitEnum(buf *bytes.Buffer, enum *ir.EnumDescriptor) error {
	e.emitDerive(buf)
	fmt.Fprintf(buf, "%senum %s {", e.visibility(), e.typeName(enum.Name))
	if len(enum.Members) == 0 {
		buf.WriteString("}\n")
		return nil
	}
	buf.WriteByte('\n')

	for _, m := range enum.Members {
		fmt.Fprintf(buf, "%s#[serde(rename = %s)]\n", e.indent, rustString(m.Value))
		fmt.Fprintf(buf, "%s%s,\n", e.indent, e.memberName(enum.Name, m.Name))
	}
	buf.WriteString("}\n")
	return nil
}

func (e *Emitter) emitAlias(buf *bytes.Buffer, a *ir.AliasDescriptor) error {
	underlying, err := e.typeExpr("", a.Underlying)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "%stype %s = %s;\n", e.visibility(), e.typeName(a.Name), underlying)
	return nil
}

func (e *Emitter) emitDerive(buf *bytes.Buffer) {
	if len(e.rust.Derives) == 0 {
		return
	}
	buf.WriteString("#[derive(")
	buf.WriteString(strings.Join(e.rust.Derives, ", "))
	buf.WriteString(")]\n")
}

// typeExpr renders a type expression used inside owner. A by-value
// reference that closes a cycle back to owner is boxed; Vec already
// provides indirection.
func (e *Emitter) typeExpr(owner string, td ir.TypeDescriptor) (string, error) {
	switch t := td.(type) {
	case *ir.PrimitiveDescriptor:
		return primitive(t)
	case *ir.ReferenceDescriptor:
		name := e.typeName(t.Target)
		if owner != "" && e.inCycle(owner, t.Target) {
			return "Box<" + name + ">", nil
		}
		return name, nil
	case *ir.OptionalDescriptor:
		inner, err := e.typeExpr(owner, t.Element)
		if err != nil {
			return "", err
		}
		return "Option<" + inner + ">", nil
	case *ir.ArrayDescriptor:
		inner, err := e.typeExpr("", t.Element)
		if err != nil {
			return "", err
		}
		return "Vec<" + inner + ">", nil
	case nil:
		return "", fmt.Errorf("missing type")
	default:
		return "", fmt.Errorf("unsupported type expression kind: %s", td.Kind())
	}
}

func primitive(p *ir.PrimitiveDescriptor) (string, error) {
	switch p.PrimitiveKind {
	case ir.PrimitiveBool:
		return "bool", nil
	case ir.PrimitiveString:
		return "String", nil
	case ir.PrimitiveInt:
		return fmt.Sprintf("i%d", p.Width()), nil
	case ir.PrimitiveUint:
		return fmt.Sprintf("u%d", p.Width()), nil
	case ir.PrimitiveFloat:
		return fmt.Sprintf("f%d", p.Width()), nil
	default:
		return "", fmt.Errorf("unsupported primitive kind: %s", p.PrimitiveKind)
	}
}

func (e *Emitter) visibility() string {
	switch e.rust.Visibility {
	case "crate":
		return "pub(crate) "
	case "private":
		return ""
	default:
		return "pub "
	}
}

func (e *Emitter) typeName(name string) string {
	if escaped, ok := e.names[name]; ok {
		return escaped
	}
	escaped := escapeIdentifier(name)
	e.names[name] = escaped
	if strings.TrimPrefix(escaped, "r#") != name {
		e.warn(name, "type "+name+" renamed to "+escaped)
	}
	return escaped
}

func (e *Emitter) fieldName(owner, name string) string {
	escaped := escapeIdentifier(name)
	if strings.TrimPrefix(escaped, "r#") != name {
		e.warn(owner, "field "+owner+"."+name+" renamed to "+escaped)
	}
	return escaped
}

func (e *Emitter) memberName(owner, name string) string {
	escaped := escapeIdentifier(name)
	if strings.TrimPrefix(escaped, "r#") != name {
		e.warn(owner, "variant "+owner+"::"+name+" renamed to "+escaped)
	}
	return escaped
}

func (e *Emitter) warn(typeName, msg string) {
	e.warnings = append(e.warnings, ir.Warning{
		Code:     ir.WarnIdentifierRewritten,
		Message:  msg,
		TypeName: typeName,
	})
}

// wireName returns the serde rename for a field.
func wireName(f ir.FieldDescriptor) string {
	switch f.Role {
	case ir.RoleAttribute:
		return "@" + f.WireName
	case ir.RoleText:
		return "$text"
	default:
		return f.WireName
	}
}

// rustString quotes s as a Rust string literal.
func rustString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u{%x}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
