// Package main provides the CLI entry point for the tableprep runtime.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tableprep/runtime/internal/cli"
	"github.com/tableprep/runtime/internal/config"
	"github.com/tableprep/runtime/internal/factory"
	"github.com/tableprep/runtime/internal/logger"
	"github.com/tableprep/runtime/internal/runtime"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitValidationError = 1
	ExitParseError      = 2
	ExitRuntimeError    = 3
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Run command flags
	dryRun    bool
	inputPath string
	outputDir string

	// Build information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitRuntimeError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tableprep",
	Short: "tableprep - Declarative tabular preprocessing runtime",
	Long: `tableprep is a CLI tool for running declarative data-cleaning pipelines
over CSV files.

It parses and validates pipeline configurations (JSON/YAML format), then
executes them according to the defined Input → Filter → Output pattern:
cleaning, outlier capping, binning, encoding, scaling, and pruning stages
run in sequence over a single in-memory table.

Examples:
  # Run the built-in fraud preprocessing pipeline
  tableprep run --input creditcard.csv --output-dir preprocessing

  # Run a pipeline from a configuration file
  tableprep run pipeline.yaml

  # Validate a configuration file
  tableprep validate pipeline.json`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(slog.LevelDebug)
		} else if quiet {
			logger.SetLevel(slog.LevelError)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a pipeline configuration file",
	Long: `Validate a pipeline configuration file against the schema.

Supports both JSON and YAML formats. The format is auto-detected
based on file extension (.json, .yaml, .yml) or content.

Exit codes:
  0 - Configuration is valid
  1 - Validation errors (schema violations)
  2 - Parse errors (invalid JSON/YAML syntax)

Examples:
  tableprep validate pipeline.json
  tableprep validate --verbose pipeline.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

var runCmd = &cobra.Command{
	Use:   "run [config-file]",
	Short: "Run a preprocessing pipeline",
	Long: `Run a pipeline defined in a configuration file, or the built-in
credit-card fraud preprocessing pipeline when no file is given.

The configuration file is first validated against the schema.
If validation fails, the pipeline will not be executed.

The INPUT_FILE, OUTPUT_DIR, and OUTPUT_FILE environment variables
override the configured input path, output directory, and output
filename.

Exit codes:
  0 - Pipeline executed successfully
  1 - Validation errors
  2 - Parse errors
  3 - Runtime errors

Examples:
  tableprep run pipeline.json
  tableprep run --input creditcard.csv --output-dir preprocessing
  tableprep run --dry-run pipeline.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPipeline,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version, commit hash, and build date information.",
	Run:   runVersion,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and transform without writing output")
	runCmd.Flags().StringVar(&inputPath, "input", "creditcard.csv", "Input CSV path for the built-in pipeline")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "preprocessing", "Output directory for the built-in pipeline")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func runValidate(_ *cobra.Command, args []string) {
	configPath := args[0]

	if !quiet {
		fmt.Printf("Validating configuration: %s\n", configPath)
	}

	result := config.ParseConfig(configPath)

	if len(result.ParseErrors) > 0 {
		cli.PrintParseErrors(result.ParseErrors, verbose)
		os.Exit(ExitParseError)
	}
	if len(result.ValidationErrors) > 0 {
		cli.PrintValidationErrors(result.ValidationErrors, verbose, quiet)
		os.Exit(ExitValidationError)
	}

	if !quiet {
		fmt.Printf("✓ Configuration is valid (format: %s)\n", result.Format)
		if verbose {
			cli.PrintConfigSummary(result.Data)
		}
	}

	os.Exit(ExitSuccess)
}

func runPipeline(_ *cobra.Command, args []string) {
	p := loadPipeline(args)

	if err := config.ApplyEnvOverrides(p); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to apply environment overrides: %v\n", err)
		os.Exit(ExitRuntimeError)
	}

	if verbose {
		fmt.Printf("  Pipeline: %s (v%s)\n", p.Name, p.Version)
		if p.Description != "" {
			fmt.Printf("  Description: %s\n", p.Description)
		}
	}

	inputModule, err := factory.CreateInputModule(p.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to create input module: %v\n", err)
		os.Exit(ExitRuntimeError)
	}
	filterModules, err := factory.CreateFilterModules(p.Filters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to create filter modules: %v\n", err)
		os.Exit(ExitRuntimeError)
	}
	outputModule, err := factory.CreateOutputModule(p.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to create output module: %v\n", err)
		os.Exit(ExitRuntimeError)
	}

	executor := runtime.NewExecutor(inputModule, filterModules, outputModule, dryRun)

	if !quiet {
		if dryRun {
			fmt.Println("Executing pipeline (dry-run mode - output will not be written)...")
		} else {
			fmt.Println("Executing pipeline...")
		}
	}

	execResult, err := executor.Execute(p)

	cli.PrintExecutionResult(execResult, err, cli.OutputOptions{
		Verbose: verbose,
		Quiet:   quiet,
		DryRun:  dryRun,
	})

	if err != nil {
		os.Exit(ExitRuntimeError)
	}
	os.Exit(ExitSuccess)
}

// loadPipeline builds the pipeline to run: from a configuration file when
// one is given, otherwise the built-in preprocessing pipeline driven by the
// --input and --output-dir flags. Exits the process on parse or validation
// failures.
func loadPipeline(args []string) *pipeline.Pipeline {
	if len(args) == 0 {
		if !quiet {
			fmt.Println("No configuration file given; using built-in preprocessing pipeline")
		}
		return pipeline.Default(inputPath, outputDir, pipeline.DefaultOutputFilename)
	}

	configPath := args[0]
	if !quiet {
		fmt.Printf("Loading pipeline configuration: %s\n", configPath)
	}

	result := config.ParseConfig(configPath)
	if len(result.ParseErrors) > 0 {
		cli.PrintParseErrors(result.ParseErrors, verbose)
		os.Exit(ExitParseError)
	}
	if len(result.ValidationErrors) > 0 {
		cli.PrintValidationErrors(result.ValidationErrors, verbose, quiet)
		os.Exit(ExitValidationError)
	}

	if !quiet {
		fmt.Printf("✓ Configuration loaded successfully (format: %s)\n", result.Format)
	}

	p, err := config.ConvertToPipeline(result.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to convert configuration: %v\n", err)
		os.Exit(ExitRuntimeError)
	}
	return p
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit: %s\n", commit)
	fmt.Printf("Build Date: %s\n", buildDate)
}
