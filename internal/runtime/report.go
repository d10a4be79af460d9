// Package runtime provides the pipeline execution engine.
// This file implements the reporter: a read-only summary of the original
// table versus the processed one.
package runtime

import (
	"sort"

	"github.com/tableprep/runtime/pkg/dataset"
	"github.com/tableprep/runtime/pkg/pipeline"
)

// previewRows is the number of leading rows included in the report.
const previewRows = 5

// Summarize builds a report comparing the original and processed tables:
// shape deltas, the final schema, a preview of the first rows, and the
// class distribution of labelColumn when it is present in the processed
// table. Summarize never fails; it only reads both tables.
func Summarize(original, processed *dataset.Table, labelColumn string) *pipeline.Report {
	report := &pipeline.Report{
		OriginalRows:  original.NumRows(),
		OriginalCols:  original.NumCols(),
		ProcessedRows: processed.NumRows(),
		ProcessedCols: processed.NumCols(),
	}

	for i := 0; i < processed.NumCols(); i++ {
		col := processed.ColumnAt(i)
		report.Columns = append(report.Columns, pipeline.ColumnInfo{
			Name:  col.Name(),
			DType: col.Type().String(),
		})
	}

	n := processed.NumRows()
	if n > previewRows {
		n = previewRows
	}
	for i := 0; i < n; i++ {
		report.Preview = append(report.Preview, processed.RowStrings(i))
	}

	summarizeLabel(processed, labelColumn, report)
	return report
}

// summarizeLabel fills in the class counts and positive rate for a binary
// label column, if present.
func summarizeLabel(processed *dataset.Table, labelColumn string, report *pipeline.Report) {
	col, ok := processed.Column(labelColumn)
	if !ok || !col.Type().Numeric() || processed.NumRows() == 0 {
		return
	}

	counts := make(map[string]int)
	positives := 0
	for i := 0; i < col.Len(); i++ {
		counts[col.Text(i)]++
		if col.Float(i) != 0 {
			positives++
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	report.LabelColumn = labelColumn
	for _, label := range labels {
		report.LabelCounts = append(report.LabelCounts, pipeline.LabelCount{
			Label: label,
			Count: counts[label],
		})
	}
	report.PositiveRate = float64(positives) / float64(col.Len()) * 100
}
