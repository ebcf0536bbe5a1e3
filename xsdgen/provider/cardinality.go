package provider

import (
	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/ir"
)

// attributeType applies attribute use to base. Prohibited attributes are
// reported as not included.
func attributeType(use xsd.Use, base ir.TypeDescriptor) (ir.TypeDescriptor, bool) {
	switch use {
	case xsd.UseProhibited:
		return nil, false
	case xsd.UseRequired:
		return base, true
	default:
		return ir.Optional(base), true
	}
}

// elementType applies occurrence constraints to base.
//
// A declared maxOccurs other than "1" makes the field repeated. Otherwise
// minOccurs=0 makes it optional. The returned flag reports whether the
// deserializer should default the field when it is absent, which holds
// whenever minOccurs is 0.
func elementType(el *xsd.Element, base ir.TypeDescriptor) (ir.TypeDescriptor, bool) {
	absentOK := el.MinOccurs != nil && *el.MinOccurs == 0

	switch {
	case el.MaxOccurs != nil && *el.MaxOccurs != "1":
		return ir.Slice(base), absentOK
	case absentOK:
		return ir.Optional(base), true
	default:
		return base, false
	}
}

// effectiveElements returns copies of the group's elements with the group's
// minOccurs folded into each child's. A child without its own minOccurs takes
// the group's; otherwise the two multiply. The tree is not modified.
func effectiveElements(g *xsd.Group) []xsd.Element {
	out := make([]xsd.Element, len(g.Elements))
	copy(out, g.Elements)
	if g.MinOccurs == nil {
		return out
	}

	for i := range out {
		n := *g.MinOccurs
		if out[i].MinOccurs != nil {
			n *= *out[i].MinOccurs
		}
		out[i].MinOccurs = xsd.Int(n)
	}
	return out
}
