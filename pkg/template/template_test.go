package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults_EverySlotHasText(t *testing.T) {
	set := Defaults()
	for _, slot := range Slots() {
		if set.Get(slot) == "" {
			t.Errorf("slot %q has no default text", slot)
		}
	}
}

func TestRender_Substitution(t *testing.T) {
	set := Defaults()

	got := set.Render(SlotHeader, map[string]string{
		"project_name":          "demo",
		"copyright_holder_full": "Demo Corp.",
	})

	if !strings.Contains(got, "Project: demo") {
		t.Errorf("Render() = %q, want project name substituted", got)
	}
	if !strings.Contains(got, "Copyright (c) Demo Corp.") {
		t.Errorf("Render() = %q, want copyright holder substituted", got)
	}
}

func TestRender_MissingParamsBecomeEmpty(t *testing.T) {
	set := Defaults()

	got := set.Render(SlotComponentListing, map[string]string{
		"serial_number": "1",
		"name":          "leftpad",
		"version":       "1.0",
		"copyright":     "Copyright Someone",
	})

	if strings.Contains(got, "{modification_notice}") {
		t.Errorf("unsubstituted placeholder left in output: %q", got)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	content := `
header: "Attributions for {project_name}"
inter_license_separator: "----"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := set.Get(SlotHeader); got != "Attributions for {project_name}" {
		t.Errorf("Get(header) = %q, want override", got)
	}
	if got := set.Get(SlotInterLicenseSeparator); got != "----" {
		t.Errorf("Get(inter_license_separator) = %q, want override", got)
	}
	// Untouched slot keeps its default.
	if got := set.Get(SlotFooter); got != defaults[SlotFooter] {
		t.Errorf("Get(footer) = %q, want built-in default", got)
	}
}

func TestLoad_UnknownSlot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	if err := os.WriteFile(path, []byte("not_a_slot: text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unknown slot names")
	}
}

func TestLoad_UnknownPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	if err := os.WriteFile(path, []byte(`header: "Oops {license_text}"`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject placeholders the slot does not accept")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail on a missing file")
	}
}
