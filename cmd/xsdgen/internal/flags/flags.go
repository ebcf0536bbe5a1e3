// Package flags holds the generation flags shared by the gen and check
// commands and merges them over a configuration file.
package flags

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/broady/xsdgen/xsdgen"
	"github.com/broady/xsdgen/xsdgen/target"
)

// Generation is embedded by commands that run the generator.
type Generation struct {
	Config     string   `help:"YAML configuration file." short:"c" type:"existingfile"`
	Target     string   `help:"Target language (rust, go)." short:"t"`
	Option     []string `help:"Target option as key=value. Repeatable." short:"O" sep:"none"`
	Order      string   `help:"Definition order (emission, dependency)."`
	Prefix     []string `help:"Namespace prefixes of XML Schema built-in types." name:"prefix"`
	NoComments bool     `help:"Drop schema documentation from the output."`
}

// Resolve loads the configuration file, if any, and applies the flags on top
// of it. Flags that were not given leave the file's values alone.
func (g *Generation) Resolve() (*xsdgen.Config, error) {
	cfg := &xsdgen.Config{}
	if g.Config != "" {
		loaded, err := xsdgen.LoadConfigFile(g.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if g.Target != "" {
		cfg.Target = g.Target
	}
	if g.Order != "" {
		cfg.Order = g.Order
	}
	if len(g.Prefix) > 0 {
		cfg.PrimitivePrefixes = g.Prefix
	}
	if g.NoComments {
		comments := false
		cfg.Comments = &comments
	}

	options, err := target.ParseOptions(g.Option)
	if err != nil {
		return nil, fmt.Errorf("--option: %w", err)
	}
	for key, values := range options {
		cfg.SetOption(key, values...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PerInput returns a copy of cfg for one of several inputs. Each input gets
// its own output file named after it, so "a/person.xsd" writes "person.rs".
func PerInput(cfg *xsdgen.Config, input string) *xsdgen.Config {
	out := *cfg
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	targetName := out.Target
	if targetName == "" {
		targetName = "rust"
	}
	out.FileName = stem + filepath.Ext(xsdgen.DefaultFileName(targetName))

	irName := out.IRFileName
	if irName == "" {
		irName = xsdgen.DefaultIRFileName
	}
	out.IRFileName = stem + "." + irName
	return &out
}
