package errhandling

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestClassifiedError_Error(t *testing.T) {
	withStage := NewValidationError("bin", "value %d out of range", 101)
	if got := withStage.Error(); !strings.Contains(got, `stage "bin"`) || !strings.Contains(got, "101") {
		t.Errorf("Error() = %q, want stage and message", got)
	}

	withoutStage := NewConfigError("unknown module %q", "http")
	if got := withoutStage.Error(); strings.Contains(got, "stage") {
		t.Errorf("Error() = %q, should not mention a stage", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"validation", NewValidationError("bin", "bad value"), CategoryValidation},
		{"computation", NewComputationError("scale", "zero variance"), CategoryComputation},
		{"io", NewIOError("input", os.ErrNotExist), CategoryIO},
		{"config", NewConfigError("bad config"), CategoryConfig},
		{"wrapped", fmt.Errorf("run failed: %w", NewValidationError("bin", "bad value")), CategoryValidation},
		{"plain", errors.New("boom"), CategoryUnknown},
		{"nil", nil, CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStageOf(t *testing.T) {
	if got := StageOf(NewComputationError("scale", "zero variance")); got != "scale" {
		t.Errorf("StageOf() = %q, want scale", got)
	}
	if got := StageOf(errors.New("boom")); got != "" {
		t.Errorf("StageOf(plain) = %q, want empty", got)
	}
}

func TestIOError_UnwrapsOriginal(t *testing.T) {
	err := NewIOError("input", os.ErrNotExist)
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is should see through the classified wrapper")
	}
}
