// Package xsdgen generates Rust or Go type definitions from XML Schema
// documents.
//
// The pipeline loads a schema tree (package xsd), converts it to a
// language-neutral IR (packages provider and ir), and renders the IR with a
// target generator (packages rust and golang) into a sink.
//
// Example:
//
//	xsdgen.FromFile("person.xsd").
//	    Target("go").
//	    Option("package", "person").
//	    ToDir("./person")
package xsdgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/golang"
	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/provider"
	"github.com/broady/xsdgen/xsdgen/rust"
	"github.com/broady/xsdgen/xsdgen/sink"
	"github.com/broady/xsdgen/xsdgen/target"
)

var targets = map[string]func() target.Generator{
	"rust": func() target.Generator { return &rust.RustGenerator{} },
	"go":   func() target.Generator { return &golang.GoGenerator{} },
}

// Targets returns the names of the available generators.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTarget returns the generator registered under name.
func NewTarget(name string) (target.Generator, error) {
	newGen, ok := targets[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %q (expected one of %v)", name, Targets())
	}
	return newGen(), nil
}

// DefaultFileName returns the file a target writes when Config.FileName is
// empty, or "" for an unknown target.
func DefaultFileName(targetName string) string {
	switch targetName {
	case "rust":
		return rust.DefaultFileName
	case "go":
		return golang.DefaultFileName
	}
	return ""
}

// GenerateResult describes one generation run.
type GenerateResult struct {
	// Schema is the intermediate representation that was rendered.
	Schema *ir.Schema

	// Files lists every file written to the sink.
	Files []target.OutputFile

	// TypesGenerated is the number of top-level definitions rendered.
	TypesGenerated int

	// Warnings holds schema warnings followed by generator warnings.
	Warnings []ir.Warning
}

// BuildSchema converts a schema tree to IR without rendering it.
// The IR is validated and, with OrderDependency, reordered.
func BuildSchema(ctx context.Context, schema *xsd.Schema, cfg *Config) (*ir.Schema, error) {
	cfg = applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return buildSchema(ctx, schema, cfg)
}

func buildSchema(ctx context.Context, schema *xsd.Schema, cfg *Config) (*ir.Schema, error) {
	p := &provider.XSDProvider{}
	out, err := p.BuildSchema(ctx, provider.XSDInputOptions{
		Schema:            schema,
		PrimitivePrefixes: cfg.PrimitivePrefixes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	if errs := out.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid schema: %w", errors.Join(errs...))
	}

	if cfg.Order == OrderDependency {
		sorted, err := ir.SortByDependency(out.Types)
		if err != nil {
			out.AddWarning(ir.Warning{
				Code:    ir.WarnDependencyCycle,
				Message: "types reference each other in a cycle, keeping emission order",
			})
		}
		out.Types = sorted
	}
	return out, nil
}

// Generate builds the IR for schema and renders it with the configured
// target. Output goes to cfg.Sink, or to a directory sink at cfg.OutDir.
func Generate(ctx context.Context, schema *xsd.Schema, cfg *Config) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	start := time.Now()

	out := cfg.Sink
	if out == nil {
		if cfg.OutDir == "" {
			return nil, fmt.Errorf("OutDir is required")
		}
		out = sink.NewFilesystemSink(cfg.OutDir)
	}

	gen, err := NewTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	irSchema, err := buildSchema(ctx, schema, cfg)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "schema built",
		slog.Int("types", len(irSchema.Types)),
		slog.String("order", cfg.Order),
	)

	genResult, err := gen.Generate(ctx, irSchema, target.GenerateOptions{
		Sink:   out,
		Config: cfg.generatorConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", gen.Name(), err)
	}

	result := &GenerateResult{
		Schema:         irSchema,
		Files:          genResult.Files,
		TypesGenerated: genResult.TypesGenerated,
		Warnings:       append(append([]ir.Warning(nil), irSchema.Warnings...), genResult.Warnings...),
	}

	if cfg.EmitIR {
		data, err := irSchema.MarshalIndent()
		if err != nil {
			return nil, fmt.Errorf("failed to encode IR: %w", err)
		}
		if err := out.WriteFile(ctx, cfg.IRFileName, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", cfg.IRFileName, err)
		}
		result.Files = append(result.Files, target.OutputFile{Path: cfg.IRFileName, Size: int64(len(data))})
	}

	for _, w := range result.Warnings {
		logger.WarnContext(ctx, w.Message,
			slog.String("code", w.Code),
			slog.String("path", w.Path),
		)
	}
	logger.InfoContext(ctx, "types generated",
		slog.String("target", gen.Name()),
		slog.Int("types", result.TypesGenerated),
		slog.Int("warnings", len(result.Warnings)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// GenerateFile loads the schema document at path and generates from it.
func GenerateFile(ctx context.Context, path string, cfg *Config) (*GenerateResult, error) {
	schema, err := xsd.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg = applyConfigDefaults(cfg)
	cfg.Logger = cfg.Logger.With(slog.String("input", path))
	return Generate(ctx, schema, cfg)
}
