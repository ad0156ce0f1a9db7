package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"gitgub.com/cam-per/hypnagogic/config"
	"gitgub.com/cam-per/hypnagogic/dmi"
	"gitgub.com/cam-per/hypnagogic/operations"
	"gitgub.com/cam-per/hypnagogic/operations/catalog"
)

var ErrNoInputs = errors.New("no input files given")

func (r *runner) maskCommand() *cli.Command {
	return &cli.Command{
		Name:      "mask",
		Usage:     "split icon states using their _mask states",
		ArgsUsage: "INPUT.dmi...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "operation config `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write results to `DIR` instead of over the inputs",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "run the operation without writing anything",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "run the operation in debug mode",
			},
		},
		Action: r.mask,
	}
}

func (r *runner) mask(_ context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	configPath := cmd.String("config")
	op, err := catalog.Load(configPath)
	if err != nil {
		return configError(configPath, err)
	}
	if err := op.VerifyConfig(); err != nil {
		return configError(configPath, err)
	}

	mode := operations.ModeStandard
	if cmd.Bool("debug") {
		mode = operations.ModeDebug
	}
	outDir := cmd.String("output")
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return ioError(outDir, err)
		}
	}

	for _, input := range inputs {
		if err := r.maskFile(op, configPath, input, outDir, mode, cmd.Bool("dry-run")); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) maskFile(op operations.Operation, configPath, input, outDir string, mode operations.Mode, dryRun bool) error {
	icon, err := readIcon(configPath, input)
	if err != nil {
		return err
	}

	payload, err := operations.Run(r.lggr, op, operations.DMIInput{Icon: icon}, mode)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			return configError(configPath, err)
		}
		return &Error{Kind: ProcessorFailed, Config: configPath, Path: input, Err: err}
	}

	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	output := filepath.Join(dir, filepath.Base(input))

	var buf bytes.Buffer
	if err := dmi.Encode(&buf, payload.Icon); err != nil {
		return &Error{Kind: OutputWriteFailed, Config: configPath, Path: output, Err: err}
	}
	if dryRun {
		r.lggr.Infow("Dry run, not writing", "output", output, "states", len(payload.Icon.States))
		fmt.Fprintf(r.opts.Stdout, "would write %s (%s, %d states)\n", output, humanize.Bytes(uint64(buf.Len())), len(payload.Icon.States))
		return nil
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return ioError(output, err)
	}
	r.lggr.Debugw("Wrote icon", "output", output, "bytes", buf.Len())
	fmt.Fprintf(r.opts.Stdout, "wrote %s (%s, %d states)\n", output, humanize.Bytes(uint64(buf.Len())), len(payload.Icon.States))
	return nil
}

func readIcon(configPath, input string) (*dmi.Icon, error) {
	f, err := os.Open(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &Error{Kind: InputNotFound, Config: configPath, Path: input, Err: err}
		}
		return nil, ioError(input, err)
	}
	defer f.Close()

	icon, err := dmi.Decode(f)
	if err != nil {
		return nil, &Error{Kind: InputParsingFailed, Config: configPath, Path: input, Err: err}
	}
	return icon, nil
}

func configError(configPath string, err error) *Error {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		if cfgErr.Source == "" {
			cfgErr.Source = configPath
		}
		return &Error{Kind: InvalidConfig, Config: configPath, Err: err}
	}
	return ioError(configPath, err)
}
