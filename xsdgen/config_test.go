package xsdgen

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/broady/xsdgen/xsdgen/target"
)

func TestApplyConfigDefaults(t *testing.T) {
	tests := []struct {
		name   string
		input  *Config
		check  func(*Config) bool
		errMsg string
	}{
		{
			name:  "empty config gets defaults",
			input: &Config{OutDir: "/tmp"},
			check: func(c *Config) bool {
				return c.Target == "rust" &&
					c.Order == OrderEmission &&
					c.IRFileName == DefaultIRFileName &&
					c.Comments != nil && *c.Comments &&
					c.IndentStyle == "space" && c.IndentSize == 4 &&
					c.LineEnding == "lf" &&
					c.Logger != nil
			},
			errMsg: "defaults not applied correctly",
		},
		{
			name:  "nil config",
			input: nil,
			check: func(c *Config) bool {
				return c.Target == "rust"
			},
			errMsg: "nil config not handled",
		},
		{
			name: "explicit values preserved",
			input: &Config{
				Target:      "go",
				Order:       OrderDependency,
				IndentStyle: "tab",
				LineEnding:  "crlf",
				Options:     map[string]OptionValues{"package": {"model"}},
			},
			check: func(c *Config) bool {
				return c.Target == "go" &&
					c.Order == OrderDependency &&
					c.IndentStyle == "tab" &&
					c.LineEnding == "crlf" &&
					c.Options["package"][0] == "model"
			},
			errMsg: "explicit values not preserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applyConfigDefaults(tt.input)
			if !tt.check(result) {
				t.Errorf("%s: got %+v", tt.errMsg, result)
			}
		})
	}

	t.Run("does not mutate input", func(t *testing.T) {
		input := &Config{OutDir: "/tmp"}
		_ = applyConfigDefaults(input)
		if input.Target != "" || input.Comments != nil || input.Logger != nil {
			t.Errorf("input was mutated: %+v", input)
		}
	})
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
out_dir: gen
target: go
order: dependency
emit_ir: true
primitive_prefixes: [xs, xsd, ""]
comments: false
indent_style: tab
options:
  package: model
  enum_methods: "false"
`))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.OutDir != "gen" || cfg.Target != "go" || cfg.Order != OrderDependency || !cfg.EmitIR {
		t.Errorf("ParseConfig() = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.PrimitivePrefixes, []string{"xs", "xsd", ""}) {
		t.Errorf("PrimitivePrefixes = %q", cfg.PrimitivePrefixes)
	}
	if cfg.Comments == nil || *cfg.Comments {
		t.Errorf("Comments = %v, want false", cfg.Comments)
	}
	want := map[string]OptionValues{"package": {"model"}, "enum_methods": {"false"}}
	if !reflect.DeepEqual(cfg.Options, want) {
		t.Errorf("Options = %v, want %v", cfg.Options, want)
	}

	gc := cfg.generatorConfig()
	if gc.EmitComments || gc.IndentStyle != "tab" || gc.Options["package"][0] != "model" {
		t.Errorf("generatorConfig() = %+v", gc)
	}
}

func TestParseConfig_OptionList(t *testing.T) {
	cfg, err := ParseConfig([]byte("options:\n  derive:\n    - Clone\n    - Debug\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if got := cfg.Options["derive"]; !reflect.DeepEqual(got, OptionValues{"Clone", "Debug"}) {
		t.Errorf("derive = %q", got)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) error = %v", err)
	}
	if cfg.Target != "" {
		t.Errorf("Target = %q, want empty", cfg.Target)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"unknown key", "outdir: gen\n", "outdir"},
		{"bad target", "target: java\n", "Target: must be one of: rust go"},
		{"bad order", "order: alphabetical\n", "Order"},
		{"bad indent", "indent_size: 40\n", "IndentSize: must be at most 16"},
		{"bad option value", "options:\n  derive: {a: b}\n", "expected string or list"},
		{"malformed", "target: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}

	_, err := ParseConfig([]byte("target: java\n"))
	var ve *target.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error = %T, want *target.ValidationError", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xsdgen.yaml")
	if err := os.WriteFile(path, []byte("target: go\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.Target != "go" {
		t.Errorf("Target = %q, want go", cfg.Target)
	}

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	var ce *ConfigError
	if !errors.As(err, &ce) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfigFile(missing) error = %v, want *ConfigError wrapping ErrNotExist", err)
	}
}
