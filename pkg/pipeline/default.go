package pipeline

// DefaultOutputFilename is the filename used when the output module config
// does not name one.
const DefaultOutputFilename = "creditcard_clean.csv"

// Default returns the canonical credit-card preprocessing pipeline:
// clean -> capOutliers -> bin -> encode -> scale -> prune, reading the raw
// CSV at inputPath and writing the processed CSV into outputDir. Stage
// configs are empty; every stage carries defaults for the fraud dataset
// schema.
func Default(inputPath, outputDir, filename string) *Pipeline {
	if filename == "" {
		filename = DefaultOutputFilename
	}
	return &Pipeline{
		ID:      "creditcard-preprocessing",
		Name:    "Credit Card Fraud Preprocessing",
		Version: "1.0",
		Input: &ModuleConfig{
			Type:   "csv",
			Config: map[string]interface{}{"path": inputPath},
		},
		Filters: []ModuleConfig{
			{Type: "clean"},
			{Type: "capOutliers"},
			{Type: "bin"},
			{Type: "encode"},
			{Type: "scale"},
			{Type: "prune"},
		},
		Output: &ModuleConfig{
			Type: "csv",
			Config: map[string]interface{}{
				"directory": outputDir,
				"filename":  filename,
			},
		},
	}
}
