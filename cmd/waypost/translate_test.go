package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	purlErrors "purlhub/waypost/pkg/purl/errors"
)

func TestRunTranslateProjectMode(t *testing.T) {
	out := filepath.Join(t.TempDir(), ".htaccess")

	err := runTranslate(nil, []string{"project", "testdata/obi.yml", out})
	if err != nil {
		t.Fatalf("runTranslate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "# DO NOT EDIT THIS FILE!") {
		t.Errorf("output missing generated header:\n%s", content)
	}
	if !strings.Contains(content, `RedirectMatch permanent "(?i)^/obo/obi/consortium/$" "http://obi-ontology.org/page/Consortium"`) {
		t.Errorf("output missing consortium directive:\n%s", content)
	}
	if !strings.Contains(content, `RedirectMatch temp "(?i)^/obo/obi/branches/(.*)$"`) {
		t.Errorf("output missing branches directive:\n%s", content)
	}

	// The term_browser rule is top-level and must be suppressed here
	if strings.Contains(content, "ontobee") {
		t.Errorf("project output contains a top-level rule:\n%s", content)
	}
}

func TestRunTranslateTopMode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "obi.htaccess")

	err := runTranslate(nil, []string{"top", "testdata/obi.yml", out})
	if err != nil {
		t.Fatalf("runTranslate() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "# Top-level rules for obi") {
		t.Errorf("output missing top header:\n%s", content)
	}
	if !strings.Contains(content, "www.ontobee.org/browser") {
		t.Errorf("output missing term browser directive:\n%s", content)
	}
	if strings.Contains(content, "consortium") {
		t.Errorf("top output contains a project-level rule:\n%s", content)
	}
}

func TestRunTranslateInvalidMode(t *testing.T) {
	err := runTranslate(nil, []string{"sideways", "testdata/obi.yml"})
	if err == nil {
		t.Fatal("runTranslate() with bad mode should return error")
	}
	if !purlErrors.IsKind(err, purlErrors.KindInvalidMode) {
		t.Errorf("error = %v, want invalid_mode kind", err)
	}
}

func TestRunTranslateBrokenDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), ".htaccess")

	err := runTranslate(nil, []string{"project", "testdata/broken.yml", out})
	if err == nil {
		t.Fatal("runTranslate() with broken document should return error")
	}

	// Nothing may be written on failure
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("output file written despite compile failure")
	}
}

func TestRunTranslateMissingFile(t *testing.T) {
	err := runTranslate(nil, []string{"project", "testdata/nonexistent.yml"})
	if err == nil {
		t.Error("runTranslate() with missing file should return error")
	}
}
