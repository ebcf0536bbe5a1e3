package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/broady/xsdgen/cmd/xsdgen/internal/flags"
	"github.com/broady/xsdgen/xsdgen"
)

type Cmd struct {
	Inputs []string `arg:"" help:"XML Schema documents to generate from." type:"existingfile"`
	Out    string   `help:"Output directory for generated files." short:"o"`
	IR     bool     `help:"Also write the intermediate representation as JSON." name:"ir"`
	Jobs   int      `help:"Schemas to generate concurrently (default: number of CPUs)." short:"j"`

	flags.Generation `embed:""`
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	if cfg.OutDir == "" {
		return fmt.Errorf("output directory required: pass --out or set out_dir in the config file")
	}
	if c.IR {
		cfg.EmitIR = true
	}
	cfg.Logger = logger

	results := make([]*xsdgen.GenerateResult, len(c.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs())
	for i, input := range c.Inputs {
		inputCfg := cfg
		if len(c.Inputs) > 1 {
			inputCfg = flags.PerInput(cfg, input)
		}
		g.Go(func() error {
			result, err := xsdgen.GenerateFile(ctx, input, inputCfg)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		for _, f := range result.Files {
			fmt.Fprintf(stdout, "✓ %s → %s (%d types)\n", c.Inputs[i], filepath.Join(cfg.OutDir, f.Path), result.TypesGenerated)
		}
	}
	return nil
}

func (c *Cmd) jobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.GOMAXPROCS(0)
}
