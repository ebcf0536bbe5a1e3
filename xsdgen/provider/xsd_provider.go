// Package provider converts XML Schema trees into the intermediate
// representation consumed by the target generators.
package provider

import (
	"context"
	"fmt"

	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/naming"
)

// XSDProvider builds type descriptors from a parsed XML Schema tree.
type XSDProvider struct{}

// XSDInputOptions configures schema-based type extraction.
type XSDInputOptions struct {
	// Schema is the parsed schema tree. Required.
	Schema *xsd.Schema

	// PrimitivePrefixes are the namespace prefixes that mark built-in types,
	// e.g. "xs" in "xs:string". Defaults to DefaultPrimitivePrefixes. An empty
	// prefix also treats unqualified built-in names as primitives.
	PrimitivePrefixes []string
}

// BuildSchema walks the schema tree and returns its type descriptors.
//
// Top-level complex types are emitted first, then top-level simple types,
// then the anonymous types of top-level elements. Anonymous types nested
// anywhere are emitted right after the definition that owns them.
//
// Any *EmitError aborts the run and BuildSchema returns a nil schema.
// Non-fatal issues are recorded in Schema.Warnings.
func (p *XSDProvider) BuildSchema(ctx context.Context, opts XSDInputOptions) (*ir.Schema, error) {
	if opts.Schema == nil {
		return nil, fmt.Errorf("no schema specified")
	}

	prefixes := opts.PrimitivePrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultPrimitivePrefixes
	}

	builder := &schemaBuilder{
		schema:   &ir.Schema{Namespace: opts.Schema.TargetNamespace},
		prefixes: make(map[string]bool, len(prefixes)),
		claimed:  make(map[string]string),
	}
	for _, prefix := range prefixes {
		builder.prefixes[prefix] = true
	}

	src := opts.Schema
	for i := range src.ComplexTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ct := &src.ComplexTypes[i]
		path := "complexType[" + ct.Name + "]"
		if ct.Name == "" {
			return nil, missingName(path, "top-level complexType")
		}
		if err := builder.emitComplex(ct, naming.TypeIdentifier(ct.Name), path); err != nil {
			return nil, err
		}
	}

	for i := range src.SimpleTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st := &src.SimpleTypes[i]
		path := "simpleType[" + st.Name + "]"
		if st.Name == "" {
			return nil, missingName(path, "top-level simpleType")
		}
		if err := builder.emitSimple(st, naming.TypeIdentifier(st.Name), path); err != nil {
			return nil, err
		}
	}

	for i := range src.Elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		el := &src.Elements[i]
		path := "element[" + el.Name + "]"
		if el.Name == "" {
			return nil, missingName(path, "top-level element")
		}
		if err := builder.emitInline(el.Type, naming.TypeIdentifier(el.Name), path); err != nil {
			return nil, err
		}
	}

	for _, w := range builder.schema.UnresolvedReferences() {
		builder.schema.AddWarning(w)
	}

	return builder.schema, nil
}

// schemaBuilder holds the state of one BuildSchema run.
type schemaBuilder struct {
	schema   *ir.Schema
	prefixes map[string]bool

	// claimed maps every emitted type identifier to the path that produced it.
	claimed map[string]string
}

// claim reserves a type identifier for the node at path.
func (b *schemaBuilder) claim(name, path string) error {
	if name == "" {
		return missingName(path, "type")
	}
	if prev, ok := b.claimed[name]; ok {
		return collision(path, "type %s already generated from %s", name, prev)
	}
	b.claimed[name] = path
	return nil
}

// emitInline emits the anonymous type carried by src, if any, under name.
// References and absent types produce nothing.
func (b *schemaBuilder) emitInline(src xsd.TypeSource, name, path string) error {
	switch src.Kind() {
	case xsd.SourceComplex:
		return b.emitComplex(src.ComplexType(), name, path+"/complexType")
	case xsd.SourceSimple:
		return b.emitSimple(src.SimpleType(), name, path+"/simpleType")
	}
	return nil
}

// typeOf returns the base type expression for a type source. Inline types are
// referenced by nestedName, the identifier emitInline gives them.
func (b *schemaBuilder) typeOf(src xsd.TypeSource, nestedName, path string) ir.TypeDescriptor {
	switch {
	case src.IsInline():
		return ir.Ref(nestedName)
	case src.Kind() == xsd.SourceReference:
		return b.resolveTypeRef(src.Reference(), path)
	default:
		return ir.String()
	}
}
