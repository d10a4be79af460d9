// Package cli provides CLI output formatting and display functions.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/tableprep/runtime/pkg/pipeline"
)

// OutputOptions configures CLI output behavior.
type OutputOptions struct {
	Verbose bool
	Quiet   bool
	DryRun  bool
}

// PrintExecutionResult displays the pipeline execution result.
func PrintExecutionResult(result *pipeline.ExecutionResult, err error, opts OutputOptions) {
	if result == nil {
		fmt.Fprintln(os.Stderr, "✗ No execution result available")
		return
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Pipeline execution failed")
		if result.Error != nil {
			fmt.Fprintf(os.Stderr, "  Stage: %s\n", result.Error.Stage)
			fmt.Fprintf(os.Stderr, "  Error: %s\n", result.Error.Message)
		}
		return
	}

	if opts.Quiet {
		return
	}

	fmt.Println("✓ Pipeline executed successfully")
	fmt.Printf("  Status: %s\n", result.Status)
	fmt.Printf("  Rows in: %d\n", result.RowsIn)
	fmt.Printf("  Rows out: %d\n", result.RowsOut)
	if result.OutputPath != "" {
		fmt.Printf("  Output: %s\n", result.OutputPath)
	}
	if opts.DryRun {
		fmt.Println("  (dry-run: no output written)")
	}
	if opts.Verbose {
		fmt.Printf("  Duration: %v\n", result.CompletedAt.Sub(result.StartedAt))
	}

	if result.Report != nil {
		PrintReport(result.Report, opts.Verbose)
	}
}

// PrintReport displays the dataset summary produced after a pipeline run.
func PrintReport(report *pipeline.Report, verbose bool) {
	fmt.Println()
	fmt.Println("📊 Dataset summary:")
	fmt.Printf("  Shape: %d rows × %d columns (was %d × %d)\n",
		report.ProcessedRows, report.ProcessedCols,
		report.OriginalRows, report.OriginalCols)

	if len(report.Columns) > 0 {
		fmt.Println("  Columns:")
		width := 0
		for _, col := range report.Columns {
			if len(col.Name) > width {
				width = len(col.Name)
			}
		}
		for _, col := range report.Columns {
			fmt.Printf("    %-*s %s\n", width+2, col.Name, col.DType)
		}
	}

	if len(report.Preview) > 0 {
		fmt.Println("  Preview:")
		printPreviewRows(report)
	}

	if report.LabelColumn != "" && len(report.LabelCounts) > 0 {
		fmt.Printf("  %s counts:\n", report.LabelColumn)
		for _, lc := range report.LabelCounts {
			fmt.Printf("    %s: %d\n", lc.Label, lc.Count)
		}
		fmt.Printf("  Positive rate: %.2f%%\n", report.PositiveRate)
	}
}

// printPreviewRows prints the head of the processed table with a header line.
func printPreviewRows(report *pipeline.Report) {
	names := make([]string, len(report.Columns))
	for i, col := range report.Columns {
		names[i] = col.Name
	}
	fmt.Printf("    %s\n", strings.Join(names, "  "))
	for _, row := range report.Preview {
		fmt.Printf("    %s\n", strings.Join(row, "  "))
	}
}

// PrintConfigSummary prints the pipeline name and version if available.
func PrintConfigSummary(data map[string]interface{}) {
	if data == nil {
		return
	}
	if name, ok := data["name"].(string); ok {
		fmt.Printf("  Pipeline: %s\n", name)
	}
	if version, ok := data["version"].(string); ok {
		fmt.Printf("  Version: %s\n", version)
	}
}
