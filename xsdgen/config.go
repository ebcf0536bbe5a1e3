package xsdgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/broady/xsdgen/xsdgen/sink"
	"github.com/broady/xsdgen/xsdgen/target"
)

// Order values for Config.Order.
const (
	// OrderEmission keeps definitions in the order the engine emitted them.
	OrderEmission = "emission"

	// OrderDependency puts every definition after the ones it references.
	OrderDependency = "dependency"
)

// DefaultIRFileName is where the IR dump goes when Config.EmitIR is set.
const DefaultIRFileName = "schema.ir.json"

// Config holds the configuration for code generation. It can be loaded from
// YAML with LoadConfigFile.
type Config struct {
	// OutDir is the directory where generated files will be written.
	// Ignored when Sink is set.
	OutDir string `yaml:"out_dir"`

	// Target selects the generator: "rust" (default) or "go".
	Target string `yaml:"target" validate:"omitempty,oneof=rust go"`

	// FileName overrides the generator's output file name.
	FileName string `yaml:"file_name"`

	// Order is "emission" (default) or "dependency".
	Order string `yaml:"order" validate:"omitempty,oneof=emission dependency"`

	// EmitIR also writes the intermediate representation as JSON.
	EmitIR bool `yaml:"emit_ir"`

	// IRFileName overrides DefaultIRFileName.
	IRFileName string `yaml:"ir_file_name"`

	// PrimitivePrefixes are the namespace prefixes bound to XML Schema
	// built-in types. Default: xs, xsd.
	PrimitivePrefixes []string `yaml:"primitive_prefixes"`

	// Comments controls whether schema documentation is carried into the
	// output. Default: true.
	Comments *bool `yaml:"comments"`

	// Formatting of the generated file.
	IndentStyle string `yaml:"indent_style" validate:"omitempty,oneof=space tab"`
	IndentSize  int    `yaml:"indent_size" validate:"gte=0,lte=16"`
	LineEnding  string `yaml:"line_ending" validate:"omitempty,oneof=lf crlf"`

	// Options are target-specific settings, e.g. {"derive": ["Clone"]} for
	// rust or {"package": ["model"]} for go.
	Options map[string]OptionValues `yaml:"options"`

	// Sink receives the output instead of a directory below OutDir.
	Sink sink.OutputSink `yaml:"-" validate:"-"`

	// Logger receives progress and warnings. Default: discard.
	Logger *slog.Logger `yaml:"-" validate:"-"`
}

// OptionValues is one or more values of a target option. In YAML it may be
// written as a scalar or a sequence.
type OptionValues []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (v *OptionValues) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = OptionValues{s}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*v = values
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}

// ConfigError reports a configuration file that could not be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return "config " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfigFile reads a YAML configuration file. Unknown keys are errors.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML configuration document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values. Empty fields are valid; they take defaults.
func (c *Config) Validate() error {
	return target.Validate(c)
}

// SetOption replaces the values of a target option.
func (c *Config) SetOption(key string, values ...string) {
	if c.Options == nil {
		c.Options = make(map[string]OptionValues)
	}
	c.Options[key] = values
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	// Copy so the caller's Config is not modified.
	result := *cfg

	if result.Target == "" {
		result.Target = "rust"
	}
	if result.Order == "" {
		result.Order = OrderEmission
	}
	if result.IRFileName == "" {
		result.IRFileName = DefaultIRFileName
	}
	if result.Comments == nil {
		comments := true
		result.Comments = &comments
	}
	if result.IndentStyle == "" {
		result.IndentStyle = "space"
	}
	if result.IndentSize == 0 {
		result.IndentSize = 4
	}
	if result.LineEnding == "" {
		result.LineEnding = "lf"
	}
	if result.Logger == nil {
		result.Logger = slog.New(slog.DiscardHandler)
	}
	return &result
}

// generatorConfig converts the generation settings for a target generator.
func (c *Config) generatorConfig() target.GeneratorConfig {
	var options map[string][]string
	if len(c.Options) > 0 {
		options = make(map[string][]string, len(c.Options))
		for k, v := range c.Options {
			options[k] = []string(v)
		}
	}
	return target.GeneratorConfig{
		FileName:        c.FileName,
		IndentStyle:     c.IndentStyle,
		IndentSize:      c.IndentSize,
		LineEnding:      c.LineEnding,
		TrailingNewline: true,
		EmitComments:    c.Comments == nil || *c.Comments,
		Options:         options,
	}
}
