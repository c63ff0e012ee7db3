package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/extloader/internal/cli"
)

// main is the entrypoint for the extloader application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(args []string, outW, errW io.Writer) error {
	return cli.Execute(args, outW, errW)
}
