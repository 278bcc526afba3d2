package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("project.name", "is required")
	want := "config error in project.name: is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInputError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("missing required columns: [copyright]")
	err := NewInputError("components.csv", cause)

	if !errors.Is(err, cause) {
		t.Error("InputError should unwrap to its cause")
	}
	want := "input file components.csv: missing required columns: [copyright]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewCommandError("generate", cause)

	if !errors.Is(err, cause) {
		t.Error("CommandError should unwrap to its cause")
	}
	want := "command generate failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
