package provider

import (
	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/naming"
)

// textField names the field that carries an element's text content.
const textField = "value"

// emitComplex emits a struct for a complex type named name, followed by the
// anonymous types its attributes and elements own.
func (b *schemaBuilder) emitComplex(ct *xsd.ComplexType, name, path string) error {
	if err := b.claim(name, path); err != nil {
		return err
	}

	attrs := ct.Attributes
	var elements []xsd.Element
	groupPath := path

	switch {
	case ct.Group != nil:
		groupPath = path + "/" + ct.Group.Kind.String()
		if ct.Group.Kind == xsd.GroupChoice {
			return unsupported(groupPath, "choice groups are not supported")
		}
		elements = effectiveElements(ct.Group)
	case ct.SimpleContent != nil:
		attrs = append(attrs[:len(attrs):len(attrs)], ct.SimpleContent.Attributes...)
	}

	sd := &ir.StructDescriptor{
		Name:          name,
		Documentation: ir.NewDocumentation(ct.Doc),
		Source:        ir.Source{Path: path},
	}
	fields := fieldSet{owner: name, byName: make(map[string]string)}

	for i := range attrs {
		a := &attrs[i]
		apath := path + "/attribute[" + a.Name + "]"
		if a.Name == "" {
			return missingName(apath, "attribute")
		}
		typ, ok := attributeType(a.Use, b.typeOf(a.Type, naming.Nested(name, a.Name), apath))
		if !ok {
			continue
		}
		f := ir.FieldDescriptor{
			Name:          naming.FieldIdentifier(a.Name),
			WireName:      a.Name,
			Role:          ir.RoleAttribute,
			Type:          typ,
			Documentation: ir.NewDocumentation(a.Doc),
		}
		if err := fields.add(&sd.Fields, f, apath); err != nil {
			return err
		}
	}

	for i := range elements {
		el := &elements[i]
		epath := groupPath + "/element[" + el.Name + "]"
		if el.Name == "" {
			return missingName(epath, "element")
		}
		typ, def := elementType(el, b.typeOf(el.Type, naming.Nested(name, el.Name), epath))
		f := ir.FieldDescriptor{
			Name:          naming.FieldIdentifier(el.Name),
			WireName:      el.Name,
			Role:          ir.RoleElement,
			Type:          typ,
			Default:       def,
			Documentation: ir.NewDocumentation(el.Doc),
		}
		if err := fields.add(&sd.Fields, f, epath); err != nil {
			return err
		}
	}

	if ct.SimpleContent != nil {
		cpath := path + "/simpleContent"
		f := ir.FieldDescriptor{
			Name: fields.free(textField),
			Role: ir.RoleText,
			Type: b.resolveTypeRef(ct.SimpleContent.Base, cpath),
		}
		if err := fields.add(&sd.Fields, f, cpath); err != nil {
			return err
		}
	}

	b.schema.AddType(sd)

	for i := range attrs {
		a := &attrs[i]
		if a.Use == xsd.UseProhibited {
			continue
		}
		if err := b.emitInline(a.Type, naming.Nested(name, a.Name), path+"/attribute["+a.Name+"]"); err != nil {
			return err
		}
	}
	for i := range elements {
		el := &elements[i]
		if err := b.emitInline(el.Type, naming.Nested(name, el.Name), groupPath+"/element["+el.Name+"]"); err != nil {
			return err
		}
	}
	return nil
}

// fieldSet detects field identifiers that collide within one struct.
type fieldSet struct {
	owner  string
	byName map[string]string
}

func (s fieldSet) add(fields *[]ir.FieldDescriptor, f ir.FieldDescriptor, path string) error {
	if prev, ok := s.byName[f.Name]; ok {
		return collision(path, "%s and %s both map to field %s.%s", quote(prev), quote(wireLabel(f)), s.owner, f.Name)
	}
	s.byName[f.Name] = wireLabel(f)
	*fields = append(*fields, f)
	return nil
}

// free returns name, or name with trailing underscores appended until it no
// longer matches a field already in the set.
func (s fieldSet) free(name string) string {
	for {
		if _, ok := s.byName[name]; !ok {
			return name
		}
		name += "_"
	}
}

func wireLabel(f ir.FieldDescriptor) string {
	if f.Role == ir.RoleText {
		return "text content"
	}
	return f.WireName
}
