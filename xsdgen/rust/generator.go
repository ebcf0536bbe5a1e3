// Package rust renders IR schemas as Rust type definitions that deserialize
// XML with serde (quick-xml conventions: "@name" for attributes, "$text" for
// text content).
package rust

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/target"
)

// DefaultFileName is written when GeneratorConfig.FileName is empty.
const DefaultFileName = "types.rs"

// Config holds Rust-specific options. It is decoded from
// GeneratorConfig.Options, e.g. -O derive=Clone,Debug -O visibility=crate.
type Config struct {
	// Derives are the traits derived on every generated type.
	Derives []string `schema:"derive" validate:"dive,required,excludesall= ()<>"`

	// Visibility of generated items and fields: "pub", "crate" for
	// pub(crate), or "private".
	Visibility string `schema:"visibility" validate:"oneof=pub crate private"`

	// SerdeImport emits `use serde::{Deserialize, Serialize};`.
	SerdeImport bool `schema:"serde_import"`
}

// DefaultConfig returns the options used when none are given.
func DefaultConfig() Config {
	return Config{
		Derives:     []string{"Clone", "Debug", "Deserialize", "Serialize"},
		Visibility:  "pub",
		SerdeImport: true,
	}
}

// RustGenerator implements target.Generator for Rust.
type RustGenerator struct{}

// Name returns "rust".
func (g *RustGenerator) Name() string { return "rust" }

// Generate renders every type of schema into one Rust source file.
func (g *RustGenerator) Generate(ctx context.Context, schema *ir.Schema, opts target.GenerateOptions) (*target.GenerateResult, error) {
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

	e := &Emitter{
		config:    opts.Config,
		rust:      cfg,
		indent:    opts.Config.Indent(),
		names:     make(map[string]string),
		recursive: ir.RecursiveGroups(schema.Types, func(td ir.TypeDescriptor) []string {
			return ir.ValueReferences(td, false)
		}),
	}

	var buf bytes.Buffer
	e.emitHeader(&buf)
	for _, typ := range schema.Types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		if err := e.EmitType(&buf, typ); err != nil {
			return nil, fmt.Errorf("failed to emit %s: %w", typ.TypeName(), err)
		}
	}

	content := opts.Config.Finalize(buf.Bytes())
	path := opts.Config.FileName
	if path == "" {
		path = DefaultFileName
	}
	if err := opts.Sink.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &target.GenerateResult{
		Files:          []target.OutputFile{{Path: path, Size: int64(len(content))}},
		TypesGenerated: len(schema.Types),
		Warnings:       e.warnings,
	}, nil
}
