// Package target defines the interface shared by the per-language
// generators and the configuration they accept.
package target

import (
	"bytes"
	"context"
	"strings"

	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/sink"
)

// Generator transforms IR type descriptors into target language source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "rust", "go").
	Name() string

	// Generate produces source code for the given schema.
	Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains the formatting and target-specific configuration.
	Config GeneratorConfig
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// TypesGenerated is the count of top-level definitions emitted.
	TypesGenerated int

	// Warnings contains issues found while rendering. Schema warnings are
	// not repeated here.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// GeneratorConfig provides options common to all generators.
type GeneratorConfig struct {
	// FileName is the output path relative to the sink root. Each generator
	// has its own default.
	FileName string

	// Formatting
	IndentStyle     string // "space" or "tab"
	IndentSize      int    // Spaces per indent level (when IndentStyle is "space")
	LineEnding      string // "lf" or "crlf"
	TrailingNewline bool   // Ensure files end with a newline

	// EmitComments includes schema documentation as comments.
	EmitComments bool

	// Options holds target-specific settings as key/value lists, decoded by
	// each generator with DecodeOptions.
	Options map[string][]string
}

// Indent returns one level of indentation.
func (c GeneratorConfig) Indent() string {
	if c.IndentStyle == "tab" {
		return "\t"
	}
	n := c.IndentSize
	if n <= 0 {
		n = 4
	}
	return strings.Repeat(" ", n)
}

// Finalize applies line ending and trailing newline settings to src.
func (c GeneratorConfig) Finalize(src []byte) []byte {
	if c.TrailingNewline && (len(src) == 0 || src[len(src)-1] != '\n') {
		src = append(src, '\n')
	}
	if c.LineEnding == "crlf" {
		src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
		src = bytes.ReplaceAll(src, []byte("\n"), []byte("\r\n"))
	}
	return src
}

// WriteComment writes doc as line comments starting with marker, one per
// documentation line, each prefixed with indent.
func WriteComment(buf *bytes.Buffer, indent, marker string, doc ir.Documentation) {
	if doc.IsZero() {
		return
	}
	for _, line := range strings.Split(doc.Body, "\n") {
		buf.WriteString(indent)
		buf.WriteString(marker)
		if line = strings.TrimSpace(line); line != "" {
			buf.WriteByte(' ')
			buf.WriteString(line)
		}
		buf.WriteByte('\n')
	}
}
