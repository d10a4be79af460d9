// Package factory provides module creation functions for the pipeline
// runtime. It centralizes the logic for instantiating input, filter, and
// output modules from their configuration using the module registry.
//
// To add a new module type, register its constructor in internal/registry;
// the factory does not need to change.
package factory

import (
	"github.com/tableprep/runtime/internal/errhandling"
	"github.com/tableprep/runtime/internal/modules/filter"
	"github.com/tableprep/runtime/internal/modules/input"
	"github.com/tableprep/runtime/internal/modules/output"
	"github.com/tableprep/runtime/internal/registry"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// CreateInputModule creates an input module instance from configuration.
// Unknown types are a configuration error.
func CreateInputModule(cfg *pipeline.ModuleConfig) (input.Module, error) {
	if cfg == nil {
		return nil, errhandling.NewConfigError("input module configuration is nil")
	}
	constructor := registry.GetInputConstructor(cfg.Type)
	if constructor == nil {
		return nil, errhandling.NewConfigError("unknown input module type %q", cfg.Type)
	}
	module, err := constructor(cfg)
	if err != nil {
		return nil, errhandling.NewConfigError("input module %q: %v", cfg.Type, err)
	}
	return module, nil
}

// CreateFilterModules creates filter module instances from configuration,
// preserving order.
func CreateFilterModules(cfgs []pipeline.ModuleConfig) ([]filter.Module, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}

	modules := make([]filter.Module, 0, len(cfgs))
	for i, cfg := range cfgs {
		constructor := registry.GetFilterConstructor(cfg.Type)
		if constructor == nil {
			return nil, errhandling.NewConfigError("unknown filter module type %q at index %d", cfg.Type, i)
		}
		module, err := constructor(cfg, i)
		if err != nil {
			return nil, errhandling.NewConfigError("filter module %q at index %d: %v", cfg.Type, i, err)
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// CreateOutputModule creates an output module instance from configuration.
// Unknown types are a configuration error.
func CreateOutputModule(cfg *pipeline.ModuleConfig) (output.Module, error) {
	if cfg == nil {
		return nil, errhandling.NewConfigError("output module configuration is nil")
	}
	constructor := registry.GetOutputConstructor(cfg.Type)
	if constructor == nil {
		return nil, errhandling.NewConfigError("unknown output module type %q", cfg.Type)
	}
	module, err := constructor(cfg)
	if err != nil {
		return nil, errhandling.NewConfigError("output module %q: %v", cfg.Type, err)
	}
	return module, nil
}
