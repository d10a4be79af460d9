// Package config provides functionality for parsing and validating
// pipeline configuration files (JSON/YAML).
// This file applies environment-variable overrides to a converted pipeline,
// so batch jobs can redirect input and output without editing the
// configuration file.
package config

import (
	"log/slog"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// Environment variables recognized by ApplyEnvOverrides.
const (
	// EnvInputFile overrides the csv input module's path
	EnvInputFile = "INPUT_FILE"
	// EnvOutputDir overrides the csv output module's directory
	EnvOutputDir = "OUTPUT_DIR"
	// EnvOutputFile overrides the csv output module's filename
	EnvOutputFile = "OUTPUT_FILE"
)

// ApplyEnvOverrides overlays INPUT_FILE, OUTPUT_DIR, and OUTPUT_FILE onto
// the pipeline's csv input/output configs. Unset variables leave the
// configuration untouched.
func ApplyEnvOverrides(p *pipeline.Pipeline) error {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return err
	}

	if v := k.String(EnvInputFile); v != "" && p.Input != nil && p.Input.Type == "csv" {
		setModuleOption(p.Input, "path", v)
		logger.Debug("input path overridden from environment",
			slog.String("variable", EnvInputFile), slog.String("path", v))
	}
	if p.Output == nil || p.Output.Type != "csv" {
		return nil
	}
	if v := k.String(EnvOutputDir); v != "" {
		setModuleOption(p.Output, "directory", v)
		logger.Debug("output directory overridden from environment",
			slog.String("variable", EnvOutputDir), slog.String("directory", v))
	}
	if v := k.String(EnvOutputFile); v != "" {
		setModuleOption(p.Output, "filename", v)
		logger.Debug("output filename overridden from environment",
			slog.String("variable", EnvOutputFile), slog.String("filename", v))
	}
	return nil
}

// setModuleOption sets a key in the module's config map, allocating it if
// needed.
func setModuleOption(cfg *pipeline.ModuleConfig, key, value string) {
	if cfg.Config == nil {
		cfg.Config = map[string]interface{}{}
	}
	cfg.Config[key] = value
}
