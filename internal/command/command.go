// Package command is the hypnagogic command line.
package command

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"

	"gitgub.com/cam-per/hypnagogic/internal/logger"
)

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Logger overrides the logger built from the verbose flag.
	Logger logger.Logger
}

type runner struct {
	opts Options
	lggr logger.Logger
}

func New(opts Options) *cli.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	r := &runner{opts: opts, lggr: opts.Logger}

	return &cli.Command{
		Name:      "hypnagogic",
		Usage:     "generate icon states for DMI sprite sheets",
		Writer:    opts.Stdout,
		ErrWriter: opts.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Before: r.before,
		Commands: []*cli.Command{
			r.maskCommand(),
			r.inspectCommand(),
		},
	}
}

func (r *runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.lggr != nil {
		return ctx, nil
	}
	level := zapcore.InfoLevel
	if cmd.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	lggr, err := logger.NewCLI(level)
	if err != nil {
		return ctx, err
	}
	r.lggr = lggr
	return ctx, nil
}
