package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"matrix-normalizer/internal/common"
	"matrix-normalizer/internal/matrix"
	"matrix-normalizer/internal/pipeline"
)

// dumper prints the normalized matrix in Go syntax. Object values render
// through their String method as compact JSON.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// App runs one normalization.
type App struct {
	stdout io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp creates an App printing the result to stdout and logging to logW.
func NewApp(stdout, logW io.Writer, cfg *Config) *App {
	return &App{
		stdout: stdout,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config: cfg,
	}
}

// Run loads the input, normalizes it, prints it and writes the output file.
// Nothing is written to the output path unless every earlier step succeeded.
func (a *App) Run() error {
	a.logger.Debug("Loading build matrix.", "path", a.config.InputPath)

	entries, err := matrix.LoadFile(a.config.InputPath)
	if err != nil {
		return err
	}

	a.logger.Debug("Build matrix loaded.", "entries", len(entries))

	res, err := pipeline.Run(entries)
	if err != nil {
		return fmt.Errorf("failed to normalize %s: %w", a.config.InputPath, err)
	}

	if !common.IsEmpty(res.Diagnostics.Warnings) {
		a.logger.Warn("Build matrix normalized with warnings.", "count", len(res.Diagnostics.Warnings))
	}

	for _, w := range res.Diagnostics.Warnings {
		if s, ok := common.First(w.Suggestions); ok {
			a.logger.Warn(w.String(), "did_you_mean", s)
			continue
		}

		a.logger.Warn(w.String())
	}

	a.logger.Info("Build matrix normalized.", "triples", len(res.Triples))

	dumper.Fdump(a.stdout, res.Triples)

	if err := matrix.WriteFile(a.config.OutputPath, res.Triples); err != nil {
		return err
	}

	a.logger.Debug("Output written.", "path", a.config.OutputPath)

	return nil
}
