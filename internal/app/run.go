package app

import (
	"context"
	"fmt"

	"github.com/vk/buildstamp/internal/counter"
	"github.com/vk/buildstamp/internal/ctxlog"
	"github.com/vk/buildstamp/internal/dialect"
	"github.com/vk/buildstamp/internal/emit"
	"github.com/vk/buildstamp/internal/fsutil"
)

// Run executes the resolve-and-emit pipeline: merge settings, validate the
// output directory, select the dialect, resolve the build counter, emit the
// artifact. All validation happens before any file is touched, so a
// configuration failure never mutates the counter or the artifact.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	outputDir := a.config.OutputDir
	requestedType := a.config.RequestedType
	var extras []emit.Constant

	if a.config.SettingsPath != "" {
		settings, err := a.settings.Load(ctx, a.config.SettingsPath)
		if err != nil {
			return Errorf(ExitConfig, "settings: %v", err)
		}
		// Explicit flags win over settings-file defaults.
		if outputDir == "" {
			outputDir = settings.OutputPath
		}
		if requestedType == "" {
			requestedType = settings.OutputType
		}
		extras = settings.Constants
		a.logger.Debug("Settings merged.", "output_dir", outputDir, "type", requestedType)
	}

	if outputDir == "" {
		return Errorf(ExitConfig, "no output path configured")
	}

	ok, err := fsutil.DirExists(outputDir)
	if err != nil {
		return Errorf(ExitConfig, "cannot access output path %s: %v", outputDir, err)
	}
	if !ok {
		return Errorf(ExitConfig, "output path %s is not an existing directory", outputDir)
	}

	spec, err := dialect.Select(requestedType)
	if err != nil {
		return Errorf(ExitConfig, "%v", err)
	}
	a.logger.Debug("Output dialect selected.", "dialect", spec.Dialect.String(), "file", spec.FileName)

	build, err := counter.New(outputDir).Resolve(ctx, a.config.ExplicitStart)
	if err != nil {
		return Errorf(ExitPersistence, "%v", err)
	}
	a.logger.Debug("Build number resolved.", "build", build)

	path, err := emit.New(outputDir).Emit(ctx, spec, build, extras)
	if err != nil {
		return Errorf(ExitEmission, "%v", err)
	}

	fmt.Fprintf(a.outW, "wrote %s (build %d)\n", path, build)
	a.logger.Info("Build number emitted.", "file", path, "build", build, "dialect", spec.Dialect.String())

	a.logger.Debug("App.Run method finished.")
	return nil
}
