package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/broady/xsdgen/cmd/xsdgen/internal/flags"
	"github.com/broady/xsdgen/xsdgen"
	"github.com/broady/xsdgen/xsdgen/ir"
	"github.com/broady/xsdgen/xsdgen/sink"
)

type Cmd struct {
	Inputs []string `arg:"" help:"XML Schema documents to check." type:"existingfile"`
	Strict bool     `help:"Fail when any warning is reported."`

	flags.Generation `embed:""`
}

type report struct {
	types    int
	bytes    int64
	warnings []ir.Warning
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	reports := make([]report, len(c.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, input := range c.Inputs {
		g.Go(func() error {
			discard := &sink.DiscardSink{}
			inputCfg := *cfg
			inputCfg.Sink = discard

			result, err := xsdgen.GenerateFile(ctx, input, &inputCfg)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			_, n := discard.Stats()
			reports[i] = report{types: result.TypesGenerated, bytes: n, warnings: result.Warnings}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var warned int
	for i, r := range reports {
		fmt.Fprintf(stdout, "✓ %s: %d types, %d bytes\n", c.Inputs[i], r.types, r.bytes)
		for _, w := range r.warnings {
			fmt.Fprintf(stdout, "  ! %s\n", formatWarning(w))
		}
		if len(r.warnings) > 0 {
			warned++
		}
	}

	if c.Strict && warned > 0 {
		return fmt.Errorf("%d of %d schemas reported warnings", warned, len(c.Inputs))
	}
	return nil
}

func formatWarning(w ir.Warning) string {
	if w.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Path, w.Message, w.Code)
	}
	return fmt.Sprintf("%s (%s)", w.Message, w.Code)
}
