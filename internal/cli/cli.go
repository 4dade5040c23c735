package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/buildstamp/internal/app"
	"github.com/vk/buildstamp/internal/version"
)

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (version banner),
// or an *app.ExitError. Help and an empty argument list both print usage and
// fail with the usage exit code, as build pipelines expect an explicit
// invocation.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("buildstamp", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
buildstamp - Maintains a per-directory build counter and emits it as a
C, C++, or C# source artifact. Invoke once per build.

Usage:
  buildstamp -p <dir> -t <C|C++|C#> [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	pathFlag := flagSet.String("p", "", "Output directory holding the counter file and the generated artifact.")
	typeFlag := flagSet.String("t", "", "Output dialect: C, C++ or C#.")
	startFlag := flagSet.String("s", "", "Explicit start value; bypasses the persisted counter for this run.")
	settingsFlag := flagSet.String("f", "", "Optional HCL settings file with defaults and extra constants.")
	versionFlag := flagSet.Bool("v", false, "Print version information and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if len(args) == 0 {
		flagSet.Usage()
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "no arguments given"}
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "help requested"}
		}
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, version.String())
		return nil, true, nil
	}

	if flagSet.NArg() > 0 {
		flagSet.Usage()
		return nil, false, &app.ExitError{
			Code:    app.ExitUsage,
			Message: fmt.Sprintf("unexpected positional arguments: %q", strings.Join(flagSet.Args(), " ")),
		}
	}

	// An unparsable start value degrades to "not provided"; the persisted
	// counter is used instead. This is a designed soft default, not an error.
	var explicitStart *uint64
	if *startFlag != "" {
		parsed, err := strconv.ParseUint(*startFlag, 10, 64)
		if err != nil {
			slog.Warn("Ignoring unparsable -s value, falling back to the persisted counter.", "value", *startFlag)
		} else {
			explicitStart = &parsed
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		OutputDir:     *pathFlag,
		RequestedType: *typeFlag,
		ExplicitStart: explicitStart,
		SettingsPath:  *settingsFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		flagSet.Usage()
		return nil, false, &app.ExitError{Code: app.ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
