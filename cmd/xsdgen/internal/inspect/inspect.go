package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"

	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen"
	"github.com/broady/xsdgen/xsdgen/ir"
)

type Cmd struct {
	Input  string   `arg:"" help:"XML Schema document to inspect." type:"existingfile"`
	Format string   `help:"Output format: tree, json, or raw (the loaded schema tree)." short:"f" enum:"tree,json,raw" default:"tree"`
	Order  string   `help:"Definition order (emission, dependency)." enum:"emission,dependency" default:"emission"`
	Prefix []string `help:"Namespace prefixes of XML Schema built-in types." name:"prefix"`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	schema, err := xsd.LoadFile(c.Input)
	if err != nil {
		return err
	}

	if c.Format == "raw" {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(stdout, schema)
		return nil
	}

	out, err := xsdgen.BuildSchema(ctx, schema, &xsdgen.Config{
		Order:             c.Order,
		PrimitivePrefixes: c.Prefix,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	if c.Format == "json" {
		data, err := out.MarshalIndent()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", data)
		return err
	}

	_, err = io.WriteString(stdout, Tree(c.Input, out).String())
	return err
}

// Tree renders the IR as a tree: one branch per definition, one node per
// field or enum member, then the warnings.
func Tree(root string, s *ir.Schema) treeprint.Tree {
	if s.Namespace != "" {
		root += " (" + s.Namespace + ")"
	}
	tree := treeprint.NewWithRoot(root)

	for _, td := range s.Types {
		switch t := td.(type) {
		case *ir.StructDescriptor:
			branch := tree.AddMetaBranch("struct", t.Name)
			for _, f := range t.Fields {
				label := f.Name + ": " + typeString(f.Type)
				if f.Default {
					label += " = default"
				}
				branch.AddMetaNode(f.Role.String(), label)
			}
		case *ir.EnumDescriptor:
			branch := tree.AddMetaBranch("enum", t.Name)
			for _, m := range t.Members {
				branch.AddNode(fmt.Sprintf("%s = %q", m.Name, m.Value))
			}
		case *ir.AliasDescriptor:
			tree.AddMetaNode("alias", t.Name+" = "+typeString(t.Underlying))
		}
	}

	if len(s.Warnings) > 0 {
		warnings := tree.AddBranch("warnings")
		for _, w := range s.Warnings {
			warnings.AddMetaNode(w.Code, w.Message)
		}
	}
	return tree
}

func typeString(td ir.TypeDescriptor) string {
	switch t := td.(type) {
	case *ir.PrimitiveDescriptor:
		name := strings.ToLower(t.PrimitiveKind.String())
		if w := t.Width(); w > 0 {
			name += fmt.Sprint(w)
		}
		return name
	case *ir.ReferenceDescriptor:
		return t.Target
	case *ir.OptionalDescriptor:
		return typeString(t.Element) + "?"
	case *ir.ArrayDescriptor:
		return "[]" + typeString(t.Element)
	case nil:
		return "<nil>"
	default:
		return td.Kind().String()
	}
}
