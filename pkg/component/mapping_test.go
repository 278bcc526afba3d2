package component

import "testing"

func TestMapColumns(t *testing.T) {
	headers := []string{
		"Component_Name", "Copyright Notice", "License Expression",
		"Version", "Others_URL", "Modified", "Modified_URL",
	}

	mapping, err := mapColumns(headers)
	if err != nil {
		t.Fatalf("mapColumns() failed: %v", err)
	}

	want := map[string]int{
		fieldName:        0,
		fieldCopyright:   1,
		fieldLicense:     2,
		fieldVersion:     3,
		fieldOthersURL:   4,
		fieldModified:    5,
		fieldModifiedURL: 6,
	}
	for field, idx := range want {
		if mapping[field] != idx {
			t.Errorf("mapping[%q] = %d, want %d", field, mapping[field], idx)
		}
	}
}

func TestMapColumns_BareNameHeader(t *testing.T) {
	// "name" only matches exactly, so "Nickname" must not claim the name
	// field while a bare "Name" does.
	mapping, err := mapColumns([]string{"Name", "Copyright", "License"})
	if err != nil {
		t.Fatalf("mapColumns() failed: %v", err)
	}
	if mapping[fieldName] != 0 {
		t.Errorf("mapping[name] = %d, want 0", mapping[fieldName])
	}

	if _, err := mapColumns([]string{"Nickname", "Copyright", "License"}); err == nil {
		t.Error("mapColumns() should not treat Nickname as the name column")
	}
}

func TestMapColumns_FirstColumnWins(t *testing.T) {
	mapping, err := mapColumns([]string{"License", "License (SPDX)", "Name", "Copyright"})
	if err != nil {
		t.Fatalf("mapColumns() failed: %v", err)
	}
	if mapping[fieldLicense] != 0 {
		t.Errorf("mapping[license] = %d, want first matching column", mapping[fieldLicense])
	}
}

func TestMapColumns_NoticeURLAlias(t *testing.T) {
	mapping, err := mapColumns([]string{"Name", "Copyright", "License", "Notice_URL"})
	if err != nil {
		t.Fatalf("mapColumns() failed: %v", err)
	}
	if mapping[fieldOthersURL] != 3 {
		t.Errorf("mapping[others_url] = %d, want 3 (notice_url alias)", mapping[fieldOthersURL])
	}
}

func TestMapColumns_MissingRequired(t *testing.T) {
	if _, err := mapColumns([]string{"Name", "Version"}); err == nil {
		t.Error("mapColumns() should report missing required columns")
	}
}

func TestMapColumns_ModifiedIsExact(t *testing.T) {
	// "Last Modified Date" must not be mistaken for the modified flag.
	mapping, err := mapColumns([]string{"Name", "Copyright", "License", "Last Modified Date"})
	if err != nil {
		t.Fatalf("mapColumns() failed: %v", err)
	}
	if _, ok := mapping[fieldModified]; ok {
		t.Error("mapColumns() should only match the modified flag exactly")
	}
}
