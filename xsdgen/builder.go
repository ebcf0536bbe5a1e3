package xsdgen

import (
	"context"
	"log/slog"

	"github.com/broady/xsdgen/xsd"
	"github.com/broady/xsdgen/xsdgen/sink"
)

// Generator provides a fluent API for code generation.
// Create with FromSchema() or FromFile() and configure with method chaining.
//
// Example:
//
//	xsdgen.FromSchema(schema).
//	    Target("go").
//	    ToDir("./model")
type Generator struct {
	schema *xsd.Schema
	path   string
	ctx    context.Context
	cfg    Config
}

// FromSchema creates a Generator for an already loaded schema tree.
func FromSchema(s *xsd.Schema) *Generator {
	return &Generator{schema: s}
}

// FromFile creates a Generator that loads the schema document at path when
// a terminal operation runs.
func FromFile(path string) *Generator {
	return &Generator{path: path}
}

// WithConfig replaces the whole configuration. Later calls still apply.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// Context sets the context used by terminal operations.
func (g *Generator) Context(ctx context.Context) *Generator {
	g.ctx = ctx
	return g
}

// Target selects the generator: "rust" (default) or "go".
func (g *Generator) Target(name string) *Generator {
	g.cfg.Target = name
	return g
}

// Order sets the definition order: "emission" (default) or "dependency".
func (g *Generator) Order(order string) *Generator {
	g.cfg.Order = order
	return g
}

// FileName overrides the generated file's name.
func (g *Generator) FileName(name string) *Generator {
	g.cfg.FileName = name
	return g
}

// Option sets a target-specific option, e.g. Option("derive", "Clone", "Debug").
func (g *Generator) Option(key string, values ...string) *Generator {
	g.cfg.SetOption(key, values...)
	return g
}

// PrimitivePrefixes sets the namespace prefixes of built-in types.
func (g *Generator) PrimitivePrefixes(prefixes ...string) *Generator {
	g.cfg.PrimitivePrefixes = prefixes
	return g
}

// WithoutComments drops schema documentation from the output.
func (g *Generator) WithoutComments() *Generator {
	comments := false
	g.cfg.Comments = &comments
	return g
}

// WithIR also writes the IR as JSON next to the generated code.
func (g *Generator) WithIR() *Generator {
	g.cfg.EmitIR = true
	return g
}

// WithLogger sets the logger for progress and warnings.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// ToDir generates files to the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.OutDir = dir
	cfg.Sink = nil
	return g.run(&cfg)
}

// ToSink generates files into s.
func (g *Generator) ToSink(s sink.OutputSink) (*GenerateResult, error) {
	cfg := g.cfg
	cfg.Sink = s
	return g.run(&cfg)
}

// Generate returns generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate() (*GenerateResult, *sink.MemorySink, error) {
	mem := sink.NewMemorySink()
	result, err := g.ToSink(mem)
	if err != nil {
		return nil, nil, err
	}
	return result, mem, nil
}

func (g *Generator) run(cfg *Config) (*GenerateResult, error) {
	ctx := g.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if g.schema == nil && g.path != "" {
		return GenerateFile(ctx, g.path, cfg)
	}
	return Generate(ctx, g.schema, cfg)
}
