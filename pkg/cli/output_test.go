package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText)

	if err := f.FormatTo(&buf, "12 components in 4 groups"); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if buf.String() != "12 components in 4 groups\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	data := map[string]int{"components": 12}
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"components": 12`) {
		t.Errorf("output = %q, want indented JSON", buf.String())
	}
}

func TestNewFormatter_Default(t *testing.T) {
	if _, ok := NewFormatter("junit").(*TextFormatter); !ok {
		t.Error("unknown formats should fall back to text")
	}
}
