// Package registry provides module registries for the tableprep runtime.
// This file registers all built-in modules during initialization.
package registry

import (
	"fmt"

	"github.com/tableprep/runtime/internal/modules/filter"
	"github.com/tableprep/runtime/internal/modules/input"
	"github.com/tableprep/runtime/internal/modules/output"
	"github.com/tableprep/runtime/pkg/pipeline"
)

func init() {
	registerBuiltinInputModules()
	registerBuiltinFilterModules()
	registerBuiltinOutputModules()
}

// registerBuiltinInputModules registers all built-in input module types.
func registerBuiltinInputModules() {
	// csv - delimited table file loader
	RegisterInput("csv", func(cfg *pipeline.ModuleConfig) (input.Module, error) {
		parsed, err := input.ParseCSVConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid csv input config: %w", err)
		}
		return input.NewCSVFromConfig(parsed)
	})
}

// registerBuiltinFilterModules registers all built-in filter module types.
func registerBuiltinFilterModules() {
	// clean - missing-value and duplicate row removal
	RegisterFilter("clean", func(_ pipeline.ModuleConfig, _ int) (filter.Module, error) {
		return filter.NewClean(), nil
	})

	// capOutliers - IQR-based outlier capping
	RegisterFilter("capOutliers", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParseOutliersConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid capOutliers config at index %d: %w", index, err)
		}
		return filter.NewOutliersFromConfig(parsed), nil
	})

	// bin - derived categorical columns
	RegisterFilter("bin", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParseBinConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid bin config at index %d: %w", index, err)
		}
		return filter.NewBinFromConfig(parsed), nil
	})

	// encode - sorted-order label encoding
	RegisterFilter("encode", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParseEncodeConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid encode config at index %d: %w", index, err)
		}
		return filter.NewEncodeFromConfig(parsed), nil
	})

	// scale - standardization
	RegisterFilter("scale", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParseScaleConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid scale config at index %d: %w", index, err)
		}
		return filter.NewScaleFromConfig(parsed), nil
	})

	// prune - identifier and raw column removal
	RegisterFilter("prune", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParsePruneConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid prune config at index %d: %w", index, err)
		}
		return filter.NewPruneFromConfig(parsed), nil
	})

	// condition - expression-based row filter
	RegisterFilter("condition", func(cfg pipeline.ModuleConfig, index int) (filter.Module, error) {
		parsed, err := filter.ParseConditionConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid condition config at index %d: %w", index, err)
		}
		return filter.NewConditionFromConfig(parsed)
	})
}

// registerBuiltinOutputModules registers all built-in output module types.
func registerBuiltinOutputModules() {
	// csv - delimited table file writer
	RegisterOutput("csv", func(cfg *pipeline.ModuleConfig) (output.Module, error) {
		parsed, err := output.ParseCSVConfig(cfg.Config)
		if err != nil {
			return nil, fmt.Errorf("invalid csv output config: %w", err)
		}
		return output.NewCSVFromConfig(parsed)
	})

	// stdout - CSV on standard output
	RegisterOutput("stdout", func(_ *pipeline.ModuleConfig) (output.Module, error) {
		return output.NewStdout(), nil
	})
}
