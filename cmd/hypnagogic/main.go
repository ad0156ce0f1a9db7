package main

import (
	"context"
	"os"

	"gitgub.com/cam-per/hypnagogic/diag"
	"gitgub.com/cam-per/hypnagogic/internal/command"
)

func main() {
	cmd := command.New(command.Options{})
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		diag.Render(os.Stderr, err)
		os.Exit(1)
	}
}
