package golang

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/target"
)

// Emitter handles Go code emission for IR type descriptors.
type Emitter struct {
	config target.GeneratorConfig
	golang Config

	// textOnly holds structs whose only field is text content. They are
	// rendered as aliases of the text type so they work as attributes too.
	textOnly map[string]bool

	// recursive maps types that contain themselves by value, directly or
	// through other types, to their cycle group.
	recursive map[string]int

	needsFmt bool
	warnings []ir.Warning
}

func newEmitter(schema *ir.Schema, config target.GeneratorConfig, cfg Config) *Emitter {
	e := &Emitter{
		config:    config,
		golang:    cfg,
		textOnly:  make(map[string]bool),
		recursive: ir.RecursiveGroups(schema.Types, func(td ir.TypeDescriptor) []string {
			return ir.ValueReferences(td, true)
		}),
	}
	for _, typ := range schema.Types {
		if s, ok := typ.(*ir.StructDescriptor); ok && len(s.Fields) == 1 && s.Fields[0].Role == ir.RoleText {
			e.textOnly[s.Name] = true
		}
		if _, ok := typ.(*ir.EnumDescriptor); ok && cfg.EnumMethods {
			e.needsFmt = true
		}
	}
	return e
}

// EmitType emits a top-level type declaration.
func (e *Emitter) EmitType(buf *bytes.Buffer, typ ir.TypeDescriptor) error {
	if e.config.EmitComments {
		target.WriteComment(buf, "", "//", typ.Doc())
	}

	switch t := typ.(type) {
	case *ir.StructDescriptor:
		if e.textOnly[t.Name] {
			return e.emitTextOnly(buf, t)
		}
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
	fmt.Fprintf(buf, "type %s struct {\n", exportedType(s.Name))

	used := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if e.config.EmitComments {
			target.WriteComment(buf, "\t", "//", f.Documentation)
		}

		typeExpr, err := e.typeExpr(s.Name, f.Type, true)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		fmt.Fprintf(buf, "\t%s %s `xml:%s`\n", e.fieldName(s.Name, f.Name, used), typeExpr, strconv.Quote(xmlTag(f)))
	}
	buf.WriteString("}\n")
	return nil
}

func (e *Emitter) emitTextOnly(buf *bytes.Buffer, s *ir.StructDescriptor) error {
	typeExpr, err := e.typeExpr("", s.Fields[0].Type, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "type %s = %s\n", exportedType(s.Name), typeExpr)
	return nil
}

func (e *Emitter) emitEnum(buf *bytes.Buffer, enum *ir.EnumDescriptor) error {
	name := exportedType(enum.Name)
	fmt.Fprintf(buf, "type %s string\n", name)
	if len(enum.Members) == 0 {
		return nil
	}

	consts := make([]string, len(enum.Members))
	buf.WriteString("\nconst (\n")
	for i, m := range enum.Members {
		consts[i] = name + exportedType(m.Name)
		fmt.Fprintf(buf, "\t%s %s = %s\n", consts[i], name, strconv.Quote(m.Value))
	}
	buf.WriteString(")\n")

	if !e.golang.EnumMethods {
		return nil
	}
	fmt.Fprintf(buf, "\n// UnmarshalText rejects values outside %s.\n", name)
	fmt.Fprintf(buf, "func (v *%s) UnmarshalText(text []byte) error {\n", name)
	fmt.Fprintf(buf, "\tswitch s := %s(text); s {\n", name)
	fmt.Fprintf(buf, "\tcase %s:\n", strings.Join(consts, ", "))
	buf.WriteString("\t\t*v = s\n\t\treturn nil\n\t}\n")
	fmt.Fprintf(buf, "\treturn fmt.Errorf(\"invalid %s %%q\", text)\n}\n", name)
	return nil
}

func (e *Emitter) emitAlias(buf *bytes.Buffer, a *ir.AliasDescriptor) error {
	underlying, err := e.typeExpr("", a.Underlying, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "type %s %s\n", exportedType(a.Name), underlying)
	return nil
}

// typeExpr renders a type expression used inside owner. A bare reference
// that closes a cycle back to owner becomes a pointer.
func (e *Emitter) typeExpr(owner string, td ir.TypeDescriptor, field bool) (string, error) {
	switch t := td.(type) {
	case *ir.PrimitiveDescriptor:
		return primitive(t)
	case *ir.ReferenceDescriptor:
		name := exportedType(t.Target)
		if field && e.inCycle(owner, t.Target) {
			return "*" + name, nil
		}
		return name, nil
	case *ir.OptionalDescriptor:
		inner, err := e.typeExpr("", t.Element, false)
		if err != nil {
			return "", err
		}
		return "*" + inner, nil
	case *ir.ArrayDescriptor:
		inner, err := e.typeExpr("", t.Element, false)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	case nil:
		return "", fmt.Errorf("missing type")
	default:
		return "", fmt.Errorf("unsupported type expression kind: %s", td.Kind())
	}
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

func primitive(p *ir.PrimitiveDescriptor) (string, error) {
	switch p.PrimitiveKind {
	case ir.PrimitiveBool:
		return "bool", nil
	case ir.PrimitiveString:
		return "string", nil
	case ir.PrimitiveInt:
		return fmt.Sprintf("int%d", p.Width()), nil
	case ir.PrimitiveUint:
		return fmt.Sprintf("uint%d", p.Width()), nil
	case ir.PrimitiveFloat:
		return fmt.Sprintf("float%d", p.Width()), nil
	default:
		return "", fmt.Errorf("unsupported primitive kind: %s", p.PrimitiveKind)
	}
}

// fieldName returns a unique exported name for a field of owner. Names that
// collide after re-casing get a numeric suffix and a warning.
func (e *Emitter) fieldName(owner, name string, used map[string]bool) string {
	goName := exportedField(name)
	base := goName
	for n := 2; used[goName]; n++ {
		goName = base + strconv.Itoa(n)
	}
	used[goName] = true

	if goName != base {
		e.warnings = append(e.warnings, ir.Warning{
			Code:     ir.WarnIdentifierRewritten,
			Message:  "field " + owner + "." + name + " renamed to " + goName,
			TypeName: owner,
		})
	}
	return goName
}

// xmlTag returns the encoding/xml struct tag value for f.
func xmlTag(f ir.FieldDescriptor) string {
	switch f.Role {
	case ir.RoleText:
		return ",chardata"
	case ir.RoleAttribute:
		tag := f.WireName + ",attr"
		if f.Type.Kind() == ir.KindOptional {
			tag += ",omitempty"
		}
		return tag
	default:
		tag := f.WireName
		if k := f.Type.Kind(); k == ir.KindOptional || k == ir.KindArray {
			tag += ",omitempty"
		}
		return tag
	}
}
