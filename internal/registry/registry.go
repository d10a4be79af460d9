// Package registry provides module registries for input, filter, and output
// modules.
//
// The registry enables extensible module registration for the tableprep
// runtime. Instead of hard-coded switch statements, modules register their
// constructors by type string, so new stage types can be added without
// modifying core factory code.
//
// Built-in modules (the csv input, the six preprocessing stages, the
// condition row filter, and the csv/stdout outputs) are registered
// automatically at startup via init().
package registry

import (
	"sync"

	"github.com/tableprep/runtime/internal/modules/filter"
	"github.com/tableprep/runtime/internal/modules/input"
	"github.com/tableprep/runtime/internal/modules/output"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// InputConstructor is a function that creates an input module from
// configuration.
type InputConstructor func(cfg *pipeline.ModuleConfig) (input.Module, error)

// FilterConstructor is a function that creates a filter module from
// configuration. The constructor receives the ModuleConfig and the filter's
// index in the pipeline.
type FilterConstructor func(cfg pipeline.ModuleConfig, index int) (filter.Module, error)

// OutputConstructor is a function that creates an output module from
// configuration.
type OutputConstructor func(cfg *pipeline.ModuleConfig) (output.Module, error)

var (
	inputMu       sync.RWMutex
	inputRegistry = make(map[string]InputConstructor)

	filterMu       sync.RWMutex
	filterRegistry = make(map[string]FilterConstructor)

	outputMu       sync.RWMutex
	outputRegistry = make(map[string]OutputConstructor)
)

// RegisterInput registers an input module constructor for the given type.
// Registering the same type twice overwrites the previous constructor.
func RegisterInput(moduleType string, constructor InputConstructor) {
	inputMu.Lock()
	defer inputMu.Unlock()
	inputRegistry[moduleType] = constructor
}

// GetInputConstructor returns the constructor for the given input type, or
// nil if none is registered.
func GetInputConstructor(moduleType string) InputConstructor {
	inputMu.RLock()
	defer inputMu.RUnlock()
	return inputRegistry[moduleType]
}

// RegisterFilter registers a filter module constructor for the given type.
func RegisterFilter(moduleType string, constructor FilterConstructor) {
	filterMu.Lock()
	defer filterMu.Unlock()
	filterRegistry[moduleType] = constructor
}

// GetFilterConstructor returns the constructor for the given filter type, or
// nil if none is registered.
func GetFilterConstructor(moduleType string) FilterConstructor {
	filterMu.RLock()
	defer filterMu.RUnlock()
	return filterRegistry[moduleType]
}

// RegisterOutput registers an output module constructor for the given type.
func RegisterOutput(moduleType string, constructor OutputConstructor) {
	outputMu.Lock()
	defer outputMu.Unlock()
	outputRegistry[moduleType] = constructor
}

// GetOutputConstructor returns the constructor for the given output type, or
// nil if none is registered.
func GetOutputConstructor(moduleType string) OutputConstructor {
	outputMu.RLock()
	defer outputMu.RUnlock()
	return outputRegistry[moduleType]
}

// FilterTypes returns the registered filter type names (unordered).
func FilterTypes() []string {
	filterMu.RLock()
	defer filterMu.RUnlock()
	types := make([]string, 0, len(filterRegistry))
	for t := range filterRegistry {
		types = append(types, t)
	}
	return types
}
