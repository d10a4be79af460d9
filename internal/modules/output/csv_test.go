package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tableprep/runtime/pkg/dataset"
	"github.com/tableprep/runtime/pkg/pipeline"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.New(
		dataset.NewIntColumn("id", []int64{1, 2}),
		dataset.NewFloatColumn("amount", []float64{10.5, 20}),
		dataset.NewStringColumn("category", []string{"grocery", "online"}),
	)
	if err != nil {
		t.Fatalf("dataset.New() error = %v", err)
	}
	return table
}

func TestParseCSVConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]interface{}
		wantErr bool
	}{
		{"missing directory", map[string]interface{}{}, true},
		{"empty directory", map[string]interface{}{"directory": ""}, true},
		{"valid without filename", map[string]interface{}{"directory": "out"}, false},
		{"valid with filename", map[string]interface{}{"directory": "out", "filename": "x.csv"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSVConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCSVConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCSVWrite_CreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	module, err := NewCSVFromConfig(CSVConfig{Directory: dir, Filename: "clean.csv"})
	if err != nil {
		t.Fatalf("NewCSVFromConfig() error = %v", err)
	}

	written, err := module.Write(context.Background(), sampleTable(t))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if written != 2 {
		t.Errorf("rows written = %d, want 2", written)
	}

	content, err := os.ReadFile(module.Destination())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	want := []string{
		"id,amount,category",
		"1,10.5,grocery",
		"2,20,online",
	}
	if len(lines) != len(want) {
		t.Fatalf("output lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCSVWrite_DefaultFilename(t *testing.T) {
	dir := t.TempDir()
	module, err := NewCSVFromConfig(CSVConfig{Directory: dir})
	if err != nil {
		t.Fatalf("NewCSVFromConfig() error = %v", err)
	}
	want := filepath.Join(dir, pipeline.DefaultOutputFilename)
	if got := module.Destination(); got != want {
		t.Errorf("Destination() = %q, want %q", got, want)
	}
}

func TestCSVWrite_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	module, err := NewCSVFromConfig(CSVConfig{Directory: t.TempDir()})
	if err != nil {
		t.Fatalf("NewCSVFromConfig() error = %v", err)
	}
	if _, err := module.Write(ctx, sampleTable(t)); err == nil {
		t.Error("Write() with cancelled context should fail")
	}
}

func TestStdoutWrite(t *testing.T) {
	var buf bytes.Buffer
	module := NewStdoutTo(&buf)

	written, err := module.Write(context.Background(), sampleTable(t))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if written != 2 {
		t.Errorf("rows written = %d, want 2", written)
	}
	if !strings.HasPrefix(buf.String(), "id,amount,category\n") {
		t.Errorf("output missing header: %q", buf.String())
	}
	if module.Destination() != "stdout" {
		t.Errorf("Destination() = %q, want stdout", module.Destination())
	}
}

func TestCaptureWrite(t *testing.T) {
	module := NewCapture()
	table := sampleTable(t)

	written, err := module.Write(context.Background(), table)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if written != 2 {
		t.Errorf("rows written = %d, want 2", written)
	}
	if module.Table != table {
		t.Error("capture module should hold the written table")
	}
}
