package attribution

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oss-works/noticegen/pkg/component"
	"oss-works/noticegen/pkg/config"
	"oss-works/noticegen/pkg/license"
	"oss-works/noticegen/pkg/template"
)

var testProject = config.ProjectConfig{
	Name:                 "Widget Server",
	CopyrightHolderFull:  "Widget Industries GmbH",
	CopyrightHolderShort: "Widget",
}

func newTestGenerator(serialStarts map[string]int) *Generator {
	store := license.NewStore(map[string]string{
		"MIT":        "MIT license body.",
		"Apache-2.0": "Apache license body.",
	}, "test-licenses.yaml")
	resolver := license.NewResolver(store, license.DefaultResolverConfig())
	return NewGenerator(resolver, template.Defaults(), testProject, serialStarts)
}

func TestGroupByLicense(t *testing.T) {
	components := []component.Component{
		{Name: "a", License: "MIT"},
		{Name: "b", License: "Apache-2.0"},
		{Name: "c", License: "MIT"},
		{Name: "d", License: "   "},
	}

	grouped := GroupByLicense(components)

	if len(grouped) != 3 {
		t.Fatalf("len(grouped) = %d, want 3", len(grouped))
	}
	if len(grouped["MIT"]) != 2 {
		t.Errorf("len(grouped[MIT]) = %d, want 2", len(grouped["MIT"]))
	}
	if len(grouped[UnspecifiedLicenseKey]) != 1 {
		t.Errorf("blank license should group under %s", UnspecifiedLicenseKey)
	}
}

func TestGenerate_Empty(t *testing.T) {
	document, summary := newTestGenerator(nil).Generate(nil)
	if document != "No components to attribute." {
		t.Errorf("document = %q", document)
	}
	if summary.Components != 0 || summary.Groups != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestGenerate_Document(t *testing.T) {
	components := []component.Component{
		{Name: "leftpad", Copyright: "Copyright (c) Left Pad Authors", License: "MIT", Version: "1.3.0"},
		{Name: "rightpad", Copyright: "Copyright (c) Right Pad Authors", License: "MIT"},
		{Name: "bigapp", Copyright: "Copyright (c) Big Corp", License: "Apache-2.0 AND MIT"},
	}

	document, summary := newTestGenerator(nil).Generate(components)

	if !strings.Contains(document, "Project: Widget Server") {
		t.Error("header should carry the project name")
	}
	if !strings.Contains(document, "Copyright (c) Widget Industries GmbH") {
		t.Error("header should carry the full copyright holder")
	}
	if !strings.Contains(document, "End of Attribution File") {
		t.Error("footer missing")
	}

	// Groups sort case-insensitively: "Apache-2.0 AND MIT" before "MIT".
	apacheIdx := strings.Index(document, "Components under license: Apache-2.0 AND MIT")
	mitIdx := strings.Index(document, "Components under license: MIT")
	if apacheIdx < 0 || mitIdx < 0 || apacheIdx > mitIdx {
		t.Errorf("group order wrong: apache at %d, mit at %d", apacheIdx, mitIdx)
	}

	// The compound group renders both texts joined by the And separator.
	if !strings.Contains(document, "licensed under multiple terms (Apache-2.0 AND MIT)") {
		t.Error("AND group should carry the multiple-terms intro")
	}
	if !strings.Contains(document, "Apache license body.") || !strings.Contains(document, "MIT license body.") {
		t.Error("both license texts should be rendered")
	}
	andAt := strings.Index(document, "And also:")
	apacheBodyAt := strings.Index(document, "Apache license body.")
	mitBodyAt := strings.Index(document, "MIT license body.")
	if !(apacheBodyAt < andAt && andAt < mitBodyAt) {
		t.Error("And separator should sit between the texts in source order")
	}

	// Serial numbering restarts per group.
	if !strings.Contains(document, "1. leftpad (v1.3.0)") {
		t.Error("first MIT component should be serial 1 with its version")
	}
	if !strings.Contains(document, "2. rightpad (vN/A)") {
		t.Error("versionless component should list as N/A with serial 2")
	}
	if !strings.Contains(document, "1. bigapp") {
		t.Error("serials should restart for each group")
	}

	if summary.Components != 3 || summary.Groups != 2 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Missing) != 0 {
		t.Errorf("Missing = %v, want none", summary.Missing)
	}
}

func TestGenerate_SerialStarts(t *testing.T) {
	components := []component.Component{
		{Name: "a", Copyright: "C", License: "MIT"},
		{Name: "b", Copyright: "C", License: "MIT"},
	}

	document, _ := newTestGenerator(map[string]int{"MIT": 14}).Generate(components)

	if !strings.Contains(document, "14. a") || !strings.Contains(document, "15. b") {
		t.Errorf("serials should start at the configured offset:\n%s", document)
	}
}

func TestGenerate_ModificationNotices(t *testing.T) {
	components := []component.Component{
		{Name: "forked", Copyright: "C", License: "MIT", Modified: true,
			ModifiedURL: "https://example.com/fork"},
		{Name: "patched", Copyright: "C", License: "MIT", Modified: true},
	}

	document, _ := newTestGenerator(nil).Generate(components)

	if !strings.Contains(document,
		"This software was modified by Widget, you may find the modified code at https://example.com/fork") {
		t.Error("modification notice with URL missing")
	}
	if !strings.Contains(document, "This software was modified by Widget.") {
		t.Error("modification notice without URL missing")
	}
}

func TestGenerate_OthersURLSection(t *testing.T) {
	components := []component.Component{
		{Name: "customlib", Copyright: "C", License: "MIT AND others",
			OthersURL: "https://example.com/notices"},
		{Name: "plainlib", Copyright: "C", License: "MIT",
			OthersURL: "https://example.com/ignored"},
	}

	document, _ := newTestGenerator(nil).Generate(components)

	if !strings.Contains(document, "Additional notices for the above components:") {
		t.Error("others-URL section header missing for an others group")
	}
	if !strings.Contains(document, "- Component 1 (customlib): https://example.com/notices") {
		t.Error("others-URL item missing")
	}
	// A group whose expression never mentions others gets no section even if
	// its components carry URLs.
	if strings.Contains(document, "https://example.com/ignored") {
		t.Error("others-URL section must not apply to non-others groups")
	}
	if !strings.Contains(document, "Regarding 'others' conditions:") {
		t.Error("others leaf should render the catch-all header")
	}
}

func TestGenerate_UnspecifiedLicenseGroup(t *testing.T) {
	components := []component.Component{
		{Name: "mysterylib", Copyright: "C", License: ""},
	}

	document, summary := newTestGenerator(nil).Generate(components)

	if !strings.Contains(document, "Components under license: "+UnspecifiedLicenseKey) {
		t.Error("unspecified group header missing")
	}
	if !strings.Contains(document, license.NotProvidedText) {
		t.Error("unspecified group should render the not-provided notice")
	}
	if len(summary.Missing) != 0 {
		t.Errorf("unspecified license must not count as missing: %v", summary.Missing)
	}
}

func TestGenerate_MissingLicenses(t *testing.T) {
	components := []component.Component{
		{Name: "a", Copyright: "C", License: "BSD-3-Clause"},
		{Name: "b", Copyright: "C", License: "bsd-3-clause"},
	}

	document, summary := newTestGenerator(nil).Generate(components)

	if !strings.Contains(document, "ERROR: License text for 'BSD-3-Clause' not found") {
		t.Error("missing license placeholder absent")
	}
	// Two groups (different casing), but the missing set collapses
	// case-insensitively.
	if summary.Groups != 2 {
		t.Errorf("Groups = %d, want 2", summary.Groups)
	}
	if len(summary.Missing) != 1 {
		t.Errorf("Missing = %v, want one entry", summary.Missing)
	}
}

func TestGenerate_InterGroupSeparator(t *testing.T) {
	components := []component.Component{
		{Name: "a", Copyright: "C", License: "MIT"},
		{Name: "b", Copyright: "C", License: "Apache-2.0"},
	}

	document, _ := newTestGenerator(nil).Generate(components)

	if strings.Count(document, strings.Repeat("=", 80)) != 1 {
		t.Error("exactly one inter-group separator expected between two groups")
	}
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ATTRIBUTIONS.txt")
	components := []component.Component{
		{Name: "leftpad", Copyright: "C", License: "MIT"},
	}

	summary, err := newTestGenerator(nil).GenerateToFile(components, path)
	if err != nil {
		t.Fatalf("GenerateToFile() failed: %v", err)
	}
	if summary.Components != 1 {
		t.Errorf("summary.Components = %d, want 1", summary.Components)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "MIT license body.") {
		t.Error("written document should contain the license text")
	}
}
