package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"gitgub.com/cam-per/hypnagogic/dmi"
)

func (r *runner) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "list the icon states of DMI files",
		ArgsUsage: "INPUT.dmi...",
		Action:    r.inspect,
	}
}

func (r *runner) inspect(_ context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	for _, input := range inputs {
		if err := r.inspectFile(input); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) inspectFile(input string) error {
	f, err := os.Open(input)
	if err != nil {
		return ioError(input, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ioError(input, err)
	}
	icon, err := dmi.DecodeDescription(f)
	if err != nil {
		return &Error{Kind: InputParsingFailed, Path: input, Err: err}
	}

	icons := 0
	for _, state := range icon.States {
		icons += state.Dirs * state.Frames
	}
	w := r.opts.Stdout
	fmt.Fprintf(w, "%s: %s, %dx%d, %d states, %s icons\n",
		input, humanize.Bytes(uint64(info.Size())), icon.Width, icon.Height, len(icon.States), humanize.Comma(int64(icons)))
	for _, state := range icon.States {
		fmt.Fprintf(w, "  %q dirs=%d frames=%d", state.Name, state.Dirs, state.Frames)
		if state.Delays != nil {
			fmt.Fprintf(w, " delays=%s", state.Delays)
		}
		fmt.Fprintln(w)
	}
	return nil
}
