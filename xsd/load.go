package xsd

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrUnsupported is returned (wrapped) when a schema document uses a
// construct the tree cannot represent.
var ErrUnsupported = errors.New("unsupported schema construct")

// LoadError describes a problem decoding a schema document.
type LoadError struct {
	// Path locates the offending node, e.g. "complexType[Order]/sequence".
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads and decodes the schema document at path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a schema document.
func Parse(data []byte) (*Schema, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a schema document from r.
//
// Element names are matched by local name, so any namespace prefix bound to
// the XML Schema namespace works. Element references (ref="x") are resolved
// against the document's top-level elements.
func Load(r io.Reader) (*Schema, error) {
	var doc rawSchema
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	if doc.XMLName.Local != "schema" {
		return nil, fmt.Errorf("root element is %q, want schema", doc.XMLName.Local)
	}

	c := &converter{topElements: make(map[string]*rawElement, len(doc.Elements))}
	for i := range doc.Elements {
		c.topElements[doc.Elements[i].Name] = &doc.Elements[i]
	}

	s := &Schema{TargetNamespace: doc.TargetNamespace}
	for _, rt := range doc.ComplexTypes {
		ct, err := c.complexType(&rt, "complexType["+rt.Name+"]")
		if err != nil {
			return nil, err
		}
		s.ComplexTypes = append(s.ComplexTypes, *ct)
	}
	for _, rt := range doc.SimpleTypes {
		s.SimpleTypes = append(s.SimpleTypes, *c.simpleType(&rt))
	}
	for _, re := range doc.Elements {
		el, err := c.element(&re, "element["+re.Name+"]")
		if err != nil {
			return nil, err
		}
		s.Elements = append(s.Elements, *el)
	}
	return s, nil
}

type rawSchema struct {
	XMLName         xml.Name
	TargetNamespace string           `xml:"targetNamespace,attr"`
	Elements        []rawElement     `xml:"element"`
	ComplexTypes    []rawComplexType `xml:"complexType"`
	SimpleTypes     []rawSimpleType  `xml:"simpleType"`
}

type rawAnnotation struct {
	Documentation []string `xml:"documentation"`
}

type rawElement struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *rawComplexType `xml:"complexType"`
	SimpleType  *rawSimpleType  `xml:"simpleType"`
	Annotation  *rawAnnotation  `xml:"annotation"`
}

type rawComplexType struct {
	Name           string         `xml:"name,attr"`
	Sequence       *rawGroup      `xml:"sequence"`
	All            *rawGroup      `xml:"all"`
	Choice         *rawGroup      `xml:"choice"`
	SimpleContent  *rawContent    `xml:"simpleContent"`
	ComplexContent *rawContent    `xml:"complexContent"`
	Attributes     []rawAttribute `xml:"attribute"`
	Annotation     *rawAnnotation `xml:"annotation"`
}

type rawGroup struct {
	MinOccurs string       `xml:"minOccurs,attr"`
	Elements  []rawElement `xml:"element"`
	Sequences []rawGroup   `xml:"sequence"`
	Choices   []rawGroup   `xml:"choice"`
}

type rawContent struct {
	Extension   *rawExtension `xml:"extension"`
	Restriction *rawExtension `xml:"restriction"`
}

type rawExtension struct {
	Base       string         `xml:"base,attr"`
	Attributes []rawAttribute `xml:"attribute"`
}

type rawAttribute struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	Use         string          `xml:"use,attr"`
	ComplexType *rawComplexType `xml:"complexType"`
	SimpleType  *rawSimpleType  `xml:"simpleType"`
	Annotation  *rawAnnotation  `xml:"annotation"`
}

type rawSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *rawRestriction `xml:"restriction"`
	Annotation  *rawAnnotation  `xml:"annotation"`
}

type rawRestriction struct {
	Base         string    `xml:"base,attr"`
	Enumerations []rawEnum `xml:"enumeration"`
}

type rawEnum struct {
	Value string `xml:"value,attr"`
}

type converter struct {
	topElements map[string]*rawElement
}

func (c *converter) element(re *rawElement, path string) (*Element, error) {
	el := &Element{Name: re.Name, Doc: re.Annotation.text()}

	if re.Ref != "" {
		// A reference borrows the target's name and type.
		local := localName(re.Ref)
		el.Name = local
		target, ok := c.topElements[local]
		switch {
		case ok && target.Type != "":
			el.Type = Ref(target.Type)
		case ok && target.ComplexType == nil && target.SimpleType == nil:
			// Untyped target: leave None so the element holds a string.
		default:
			el.Type = Ref(local)
		}
	} else {
		switch {
		case re.ComplexType != nil:
			ct, err := c.complexType(re.ComplexType, path+"/complexType")
			if err != nil {
				return nil, err
			}
			el.Type = Complex(ct)
		case re.SimpleType != nil:
			el.Type = Simple(c.simpleType(re.SimpleType))
		default:
			el.Type = Ref(re.Type)
		}
	}

	var err error
	if el.MinOccurs, err = parseOccurs(re.MinOccurs, path+"@minOccurs"); err != nil {
		return nil, err
	}
	if re.MaxOccurs != "" {
		el.MaxOccurs = Str(re.MaxOccurs)
	}
	return el, nil
}

func (c *converter) complexType(rt *rawComplexType, path string) (*ComplexType, error) {
	ct := &ComplexType{Name: rt.Name, Doc: rt.Annotation.text()}

	attrs, err := c.attributes(rt.Attributes, path)
	if err != nil {
		return nil, err
	}
	ct.Attributes = attrs

	switch {
	case rt.Sequence != nil:
		ct.Group, err = c.group(GroupSequence, rt.Sequence, path+"/sequence")
	case rt.All != nil:
		ct.Group, err = c.group(GroupAll, rt.All, path+"/all")
	case rt.Choice != nil:
		ct.Group, err = c.group(GroupChoice, rt.Choice, path+"/choice")
	case rt.SimpleContent != nil:
		ct.SimpleContent, err = c.simpleContent(rt.SimpleContent, path+"/simpleContent")
	case rt.ComplexContent != nil:
		return nil, &LoadError{Path: path + "/complexContent", Err: ErrUnsupported}
	}
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func (c *converter) group(kind GroupKind, rg *rawGroup, path string) (*Group, error) {
	if len(rg.Sequences) > 0 || len(rg.Choices) > 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: nested model groups", ErrUnsupported)}
	}
	g := &Group{Kind: kind}
	var err error
	if g.MinOccurs, err = parseOccurs(rg.MinOccurs, path+"@minOccurs"); err != nil {
		return nil, err
	}
	for i := range rg.Elements {
		re := &rg.Elements[i]
		el, err := c.element(re, path+"/element["+re.Name+re.Ref+"]")
		if err != nil {
			return nil, err
		}
		g.Elements = append(g.Elements, *el)
	}
	return g, nil
}

func (c *converter) simpleContent(rc *rawContent, path string) (*SimpleContentExtension, error) {
	if rc.Extension == nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: simpleContent without extension", ErrUnsupported)}
	}
	attrs, err := c.attributes(rc.Extension.Attributes, path+"/extension")
	if err != nil {
		return nil, err
	}
	return &SimpleContentExtension{Base: rc.Extension.Base, Attributes: attrs}, nil
}

func (c *converter) attributes(raw []rawAttribute, path string) ([]Attribute, error) {
	var out []Attribute
	for i := range raw {
		ra := &raw[i]
		name := ra.Name
		if name == "" {
			name = localName(ra.Ref)
		}
		apath := path + "/attribute[" + name + "]"

		use, ok := ParseUse(ra.Use)
		if !ok {
			return nil, &LoadError{Path: apath, Err: fmt.Errorf("invalid use %q", ra.Use)}
		}

		a := Attribute{Name: name, Use: use, Doc: ra.Annotation.text()}
		switch {
		case ra.ComplexType != nil:
			ct, err := c.complexType(ra.ComplexType, apath+"/complexType")
			if err != nil {
				return nil, err
			}
			a.Type = Complex(ct)
		case ra.SimpleType != nil:
			a.Type = Simple(c.simpleType(ra.SimpleType))
		default:
			a.Type = Ref(ra.Type)
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *converter) simpleType(rt *rawSimpleType) *SimpleType {
	st := &SimpleType{Name: rt.Name, Doc: rt.Annotation.text()}
	if rt.Restriction != nil {
		r := &Restriction{Base: rt.Restriction.Base}
		for _, e := range rt.Restriction.Enumerations {
			r.Enumerations = append(r.Enumerations, e.Value)
		}
		st.Restriction = r
	}
	return st
}

func (a *rawAnnotation) text() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.Documentation))
	for _, d := range a.Documentation {
		if d = strings.TrimSpace(d); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, "\n\n")
}

func parseOccurs(s, path string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid occurrence %q", s)}
	}
	return &n, nil
}

func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
