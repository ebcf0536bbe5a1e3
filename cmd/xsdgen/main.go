package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/xsdgen/cmd/xsdgen/internal/check"
	"github.com/broady/xsdgen/cmd/xsdgen/internal/gen"
	"github.com/broady/xsdgen/cmd/xsdgen/internal/inspect"
)

type CLI struct {
	Verbose int `help:"Log progress to stderr; repeat for debug output." short:"v" type:"counter"`

	Version VersionCmd  `cmd:"" help:"Print version information."`
	Gen     gen.Cmd     `cmd:"" help:"Generate Rust or Go types from XML Schema documents."`
	Check   check.Cmd   `cmd:"" help:"Run the generator without writing files and report warnings."`
	Inspect inspect.Cmd `cmd:"" help:"Print the intermediate representation of a schema."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(stdout io.Writer) error {
	_, err := fmt.Fprintln(stdout, Version())
	return err
}

// newLogger logs warnings by default, progress with -v, and debug with -vv.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("xsdgen"),
		kong.Description("Generate Rust and Go type definitions from XML Schema."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := kctx.Run(newLogger(os.Stderr, cli.Verbose))
	kctx.FatalIfErrorf(err)
}
