// Package golang renders IR schemas as Go types tagged for encoding/xml.
package golang

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/imports"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/target"
)

// DefaultFileName is written when GeneratorConfig.FileName is empty.
const DefaultFileName = "types.go"

// Config holds Go-specific options, decoded from GeneratorConfig.Options.
type Config struct {
	// Package is the package clause of the generated file.
	Package string `schema:"package" validate:"required"`

	// EnumMethods emits an UnmarshalText method on every enum type that
	// rejects values outside the enumeration.
	EnumMethods bool `schema:"enum_methods"`
}

// DefaultConfig returns the options used when none are given.
func DefaultConfig() Config {
	return Config{Package: "types", EnumMethods: true}
}

// GoGenerator implements target.Generator for Go.
type GoGenerator struct{}

// Name returns "go".
func (g *GoGenerator) Name() string { return "go" }

// Generate renders every type of schema into one gofmt-formatted Go file.
func (g *GoGenerator) Generate(ctx context.Context, schema *ir.Schema, opts target.GenerateOptions) (*target.GenerateResult, error) {
	if schema == nil {
		return nil, errors.New("schema is nil")
	}
	if opts.Sink == nil {
		return nil, errors.New("output sink is nil")
	}

	cfg := DefaultConfig()
	if err := target.DecodeOptions(opts.Config.Options, &cfg); err != nil {
		return nil, err
	}
	if !token.IsIdentifier(cfg.Package) || cfg.Package == "_" {
		return nil, fmt.Errorf("invalid package name %q", cfg.Package)
	}

	e := newEmitter(schema, opts.Config, cfg)

	var body bytes.Buffer
	for _, typ := range schema.Types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body.WriteByte('\n')
		if err := e.EmitType(&body, typ); err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", typ.TypeName(), err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by xsdgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", cfg.Package)
	if e.needsFmt {
		buf.WriteString("\nimport \"fmt\"\n")
	}
	buf.Write(body.Bytes())

	path := opts.Config.FileName
	if path == "" {
		path = DefaultFileName
	}

	formatted, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	content := opts.Config.Finalize(formatted)
	if err := opts.Sink.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &target.GenerateResult{
		Files:          []target.OutputFile{{Path: path, Size: int64(len(content))}},
		TypesGenerated: len(schema.Types),
		Warnings:       e.warnings,
	}, nil
}
