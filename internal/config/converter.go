// Package config provides functionality for parsing and validating
// pipeline configuration files (JSON/YAML).
package config

import (
	"fmt"

	"github.com/tableprep/runtime/pkg/pipeline"
)

// ConvertToPipeline converts parsed configuration data to a Pipeline struct.
// The input data should have been validated against the schema before
// calling this function.
//
// The configuration is expected to have this structure:
//
//	{
//	  "id": "...",
//	  "name": "...",
//	  "version": "...",
//	  "input": {"type": "csv", "config": {...}},
//	  "filters": [{"type": "clean"}, ...],
//	  "output": {"type": "csv", "config": {...}}
//	}
func ConvertToPipeline(data map[string]interface{}) (*pipeline.Pipeline, error) {
	if data == nil {
		return nil, fmt.Errorf("configuration data is nil")
	}

	p := &pipeline.Pipeline{}

	id, ok := data["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("missing required field 'id'")
	}
	p.ID = id

	name, ok := data["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("missing required field 'name'")
	}
	p.Name = name

	version, ok := data["version"].(string)
	if !ok || version == "" {
		return nil, fmt.Errorf("missing required field 'version'")
	}
	p.Version = version

	if description, okDesc := data["description"].(string); okDesc {
		p.Description = description
	}

	inputData, ok := data["input"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'input' section")
	}
	inputConfig, err := convertModuleConfig(inputData)
	if err != nil {
		return nil, fmt.Errorf("invalid input config: %w", err)
	}
	p.Input = inputConfig

	if filtersData, okFilters := data["filters"].([]interface{}); okFilters {
		for i, filterData := range filtersData {
			filterMap, isMap := filterData.(map[string]interface{})
			if !isMap {
				return nil, fmt.Errorf("invalid filter at index %d", i)
			}
			filterConfig, convertErr := convertModuleConfig(filterMap)
			if convertErr != nil {
				return nil, fmt.Errorf("invalid filter at index %d: %w", i, convertErr)
			}
			p.Filters = append(p.Filters, *filterConfig)
		}
	}

	outputData, ok := data["output"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'output' section")
	}
	outputConfig, err := convertModuleConfig(outputData)
	if err != nil {
		return nil, fmt.Errorf("invalid output config: %w", err)
	}
	p.Output = outputConfig

	return p, nil
}

// convertModuleConfig converts a raw module configuration map to ModuleConfig.
func convertModuleConfig(data map[string]interface{}) (*pipeline.ModuleConfig, error) {
	moduleType, ok := data["type"].(string)
	if !ok || moduleType == "" {
		return nil, fmt.Errorf("missing required field 'type'")
	}

	moduleConfig := &pipeline.ModuleConfig{
		Type:   moduleType,
		Config: map[string]interface{}{},
	}
	if cfg, okCfg := data["config"].(map[string]interface{}); okCfg {
		moduleConfig.Config = cfg
	}
	return moduleConfig, nil
}
