package parser

import (
	"strings"
	"testing"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

func TestParser_Parse_Simple(t *testing.T) {
	parser := NewParser()
	doc, err := parser.Parse("../../../internal/purl/testdata/valid/obi.yml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	// Validate document metadata
	if doc.Idspace != "OBI" {
		t.Errorf("Idspace = %q, want %q", doc.Idspace, "OBI")
	}
	if doc.BaseURL != "/obo/obi" {
		t.Errorf("BaseURL = %q, want %q", doc.BaseURL, "/obo/obi")
	}

	// Validate rules
	if doc.RuleCount() != 4 {
		t.Fatalf("RuleCount() = %d, want 4", doc.RuleCount())
	}
	if doc.TestCount() != 1 {
		t.Errorf("TestCount() = %d, want 1", doc.TestCount())
	}

	// Rule 1: path with explicit status
	rule := doc.Rules[0]
	if types := rule.Types(); len(types) != 1 || types[0] != ast.RuleTypePath {
		t.Errorf("Rules[0].Types() = %v, want [path]", types)
	}
	if rule.Path == nil || *rule.Path != "/obo/obi/consortium/" {
		t.Errorf("Rules[0].Path = %v, want %q", rule.Path, "/obo/obi/consortium/")
	}
	if rule.Status == nil || *rule.Status != "permanent" {
		t.Errorf("Rules[0].Status = %v, want %q", rule.Status, "permanent")
	}
	if rule.Level != nil {
		t.Errorf("Rules[0].Level = %q, want nil", *rule.Level)
	}

	// Rule 2: prefix with a redirect test
	rule = doc.Rules[1]
	if types := rule.Types(); len(types) != 1 || types[0] != ast.RuleTypePrefix {
		t.Errorf("Rules[1].Types() = %v, want [prefix]", types)
	}
	if !rule.HasTests() {
		t.Fatal("Rules[1] should have tests")
	}
	test := rule.Tests[0]
	if test.From != "/obo/obi/branches/obi.owl" {
		t.Errorf("Test.From = %q, want %q", test.From, "/obo/obi/branches/obi.owl")
	}
	if !strings.HasSuffix(test.To, "/branches/obi.owl") {
		t.Errorf("Test.To = %q, want .../branches/obi.owl", test.To)
	}

	// Rule 3: regex with explicit level
	rule = doc.Rules[2]
	if types := rule.Types(); len(types) != 1 || types[0] != ast.RuleTypeRegex {
		t.Errorf("Rules[2].Types() = %v, want [regex]", types)
	}
	if rule.Level == nil || *rule.Level != "top" {
		t.Errorf("Rules[2].Level = %v, want %q", rule.Level, "top")
	}

	// Rule 4: term_browser without replacement
	rule = doc.Rules[3]
	if types := rule.Types(); len(types) != 1 || types[0] != ast.RuleTypeTermBrowser {
		t.Errorf("Rules[3].Types() = %v, want [term_browser]", types)
	}
	if rule.TermBrowser == nil || *rule.TermBrowser != "ontobee" {
		t.Errorf("Rules[3].TermBrowser = %v, want %q", rule.TermBrowser, "ontobee")
	}
	if rule.HasReplacement() {
		t.Error("Rules[3] should not have a replacement")
	}
}

func TestParser_Parse_Locations(t *testing.T) {
	parser := NewParser()
	doc, err := parser.Parse("../../../internal/purl/testdata/valid/obi.yml")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	wantLines := []int{7, 11, 17, 21}
	for i, want := range wantLines {
		if got := doc.Rules[i].Location.Line; got != want {
			t.Errorf("Rules[%d].Location.Line = %d, want %d", i, got, want)
		}
	}

	if got := doc.Rules[1].Tests[0].Location.Line; got != 14 {
		t.Errorf("Tests[0].Location.Line = %d, want 14", got)
	}
	if !strings.HasSuffix(doc.Rules[0].Location.File, "obi.yml") {
		t.Errorf("Location.File = %q, want obi.yml path", doc.Rules[0].Location.File)
	}
}

func TestParser_ParseBytes(t *testing.T) {
	yaml := []byte(`
purl_rules:
- prefix: /obo/obi/branches/
  replacement: http://example.com/branches/
`)

	parser := NewParser()
	doc, err := parser.ParseBytes(yaml, "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	if doc.RuleCount() != 1 {
		t.Fatalf("RuleCount() = %d, want 1", doc.RuleCount())
	}
	if doc.SourceFile != "memory://test" {
		t.Errorf("SourceFile = %q, want %q", doc.SourceFile, "memory://test")
	}
}

func TestParser_ParseBytes_NullReplacementIsPresent(t *testing.T) {
	yaml := []byte(`
purl_rules:
- path: /obo/obi/tracker
  replacement:
`)

	parser := NewParser()
	doc, err := parser.ParseBytes(yaml, "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	rule := doc.Rules[0]
	if !rule.HasReplacement() {
		t.Fatal("null replacement should still count as present")
	}
	if *rule.Replacement != "" {
		t.Errorf("Replacement = %q, want empty string", *rule.Replacement)
	}
}

func TestParser_Parse_NoRulesKey(t *testing.T) {
	parser := NewParser()
	_, err := parser.Parse("../../../internal/purl/testdata/invalid/norules.yml")
	if err == nil {
		t.Fatal("Parse() should fail when purl_rules is absent")
	}
	if !errors.IsKind(err, errors.KindNoRulesFound) {
		t.Errorf("error kind = %v, want no_rules_found", err)
	}
}

func TestParser_Parse_RulesNotASequence(t *testing.T) {
	for _, yaml := range []string{
		"purl_rules: nope\n",
		"purl_rules:\n",
		"purl_rules:\n  path: /obo/obi\n",
	} {
		parser := NewParser()
		_, err := parser.ParseBytes([]byte(yaml), "memory://test")
		if err == nil {
			t.Fatalf("ParseBytes(%q) should fail", yaml)
		}
		if !errors.IsKind(err, errors.KindNoRulesFound) {
			t.Errorf("ParseBytes(%q) error = %v, want no_rules_found", yaml, err)
		}
	}
}

func TestParser_Parse_EmptyRulesList(t *testing.T) {
	yaml := []byte("purl_rules: []\n")

	parser := NewParser()
	doc, err := parser.ParseBytes(yaml, "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if doc.RuleCount() != 0 {
		t.Errorf("RuleCount() = %d, want 0", doc.RuleCount())
	}
}

func TestParser_Parse_MissingType(t *testing.T) {
	yaml := []byte(`
purl_rules:
- replacement: http://example.com/
`)

	parser := NewParser()
	_, err := parser.ParseBytes(yaml, "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() should fail on a rule with no type")
	}
	if !errors.IsKind(err, errors.KindMissingType) {
		t.Errorf("error kind = %v, want missing_type", err)
	}
}

func TestParser_Parse_MultipleTypes(t *testing.T) {
	parser := NewParser()
	_, err := parser.Parse("../../../internal/purl/testdata/invalid/ambiguous.yml")
	if err == nil {
		t.Fatal("Parse() should fail on ambiguous rules")
	}

	errList, ok := err.(*errors.ErrorList)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ErrorList", err)
	}
	if !errList.HasKind(errors.KindMultipleTypes) {
		t.Error("expected a multiple_types error")
	}
	if !errList.HasKind(errors.KindMissingType) {
		t.Error("expected a missing_type error")
	}

	// The offending rule is rendered in the message
	multi := errList.ByKind(errors.KindMultipleTypes)[0]
	if multi.Rule == nil {
		t.Fatal("multiple_types error should carry the rule")
	}
	if !strings.Contains(multi.Message, "path, prefix") {
		t.Errorf("Message = %q, want the conflicting types listed", multi.Message)
	}
}

func TestParser_Parse_RuleNotAMapping(t *testing.T) {
	yaml := []byte(`
purl_rules:
- just a string
- 42
`)

	parser := NewParser()
	_, err := parser.ParseBytes(yaml, "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() should fail on non-mapping rules")
	}

	errList, ok := err.(*errors.ErrorList)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ErrorList", err)
	}
	if got := errList.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !errList.HasKind(errors.KindStructural) {
		t.Error("expected structural errors")
	}
}

func TestParser_StrictMode_UnknownKey(t *testing.T) {
	yaml := []byte(`
purl_rules:
- path: /obo/obi/tracker
  replacment: http://example.com/
`)

	parser := NewParser().WithStrictMode(true)
	_, err := parser.ParseBytes(yaml, "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() should fail on unknown keys in strict mode")
	}

	errList, ok := err.(*errors.ErrorList)
	if !ok {
		t.Fatalf("error type = %T, want *errors.ErrorList", err)
	}
	structural := errList.ByKind(errors.KindStructural)
	if len(structural) != 1 {
		t.Fatalf("structural errors = %d, want 1", len(structural))
	}
	if !strings.Contains(structural[0].Suggestion, "replacement") {
		t.Errorf("Suggestion = %q, want a did-you-mean for 'replacement'", structural[0].Suggestion)
	}
}

func TestParser_NonStrict_IgnoresUnknownKeys(t *testing.T) {
	yaml := []byte(`
purl_rules:
- path: /obo/obi/tracker
  replacement: http://example.com/
  comment: legacy PURL entry 42
`)

	parser := NewParser()
	doc, err := parser.ParseBytes(yaml, "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	if doc.RuleCount() != 1 {
		t.Errorf("RuleCount() = %d, want 1", doc.RuleCount())
	}
}

func TestParser_Parse_TestMissingTo(t *testing.T) {
	yaml := []byte(`
purl_rules:
- prefix: /obo/obi/
  replacement: http://example.com/
  tests:
  - from: /obo/obi/obi.owl
`)

	parser := NewParser()
	_, err := parser.ParseBytes(yaml, "memory://test")
	if err == nil {
		t.Fatal("ParseBytes() should fail on a test without 'to'")
	}
	if !errors.IsKind(err, errors.KindStructural) {
		t.Errorf("error kind = %v, want structural", err)
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	yaml := []byte(`
invalid: yaml: syntax:
  - this is not valid
`)

	parser := NewParser()
	_, err := parser.ParseBytes(yaml, "memory://invalid")
	if err == nil {
		t.Fatal("ParseBytes() should fail on invalid YAML")
	}
	if !errors.IsKind(err, errors.KindSyntax) {
		t.Errorf("error kind = %v, want syntax", err)
	}
}

func TestParser_Parse_MissingFile(t *testing.T) {
	parser := NewParser()
	_, err := parser.Parse("nonexistent.yml")
	if err == nil {
		t.Error("Parse() should fail on missing file")
	}
}

func TestParser_WithMaxFileSize(t *testing.T) {
	parser := NewParser().WithMaxFileSize(100) // Very small limit

	largeYAML := make([]byte, 200)
	for i := range largeYAML {
		largeYAML[i] = 'a'
	}

	_, err := parser.ParseBytes(largeYAML, "memory://large")
	if err == nil {
		t.Error("ParseBytes() should fail when input exceeds size limit")
	}
}

func TestParser_Parse_AnchorsResolved(t *testing.T) {
	yaml := []byte(`
defaults: &target http://example.com/shared/
purl_rules:
- path: /obo/obi/a
  replacement: *target
- path: /obo/obi/b
  replacement: *target
`)

	parser := NewParser()
	doc, err := parser.ParseBytes(yaml, "memory://test")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}
	for i, rule := range doc.Rules {
		if rule.Replacement == nil || *rule.Replacement != "http://example.com/shared/" {
			t.Errorf("Rules[%d].Replacement = %v, want shared target", i, rule.Replacement)
		}
	}
}
