package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/buildstamp/internal/app"
	"github.com/vk/buildstamp/internal/cli"
	"github.com/vk/buildstamp/internal/hclconf"
)

// main is the entrypoint for the buildstamp application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(app.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL settings loader to pass to the app.
	loader := hclconf.NewLoader()
	buildstampApp := app.NewApp(outW, appConfig, loader)

	return buildstampApp.Run(context.Background())
}
