package ast

import (
	"fmt"
	"strings"
)

// RuleType identifies which of the four rule variants a rule is.
type RuleType string

const (
	RuleTypePath        RuleType = "path"
	RuleTypePrefix      RuleType = "prefix"
	RuleTypeRegex       RuleType = "regex"
	RuleTypeTermBrowser RuleType = "term_browser"
)

// Rule represents a single redirect rule from a purl_rules list.
//
// Exactly one of Path, Prefix, Regex, and TermBrowser must be set for the
// rule to be valid. All variant and optional fields are pointers so that key
// presence survives parsing: a key with a null or empty value is present,
// an absent key is nil. The compiler enforces the one-variant invariant and
// everything that follows from it.
type Rule struct {
	Path        *string // Exact URL string to match
	Prefix      *string // URL prefix to match, trailing segment carried over
	Regex       *string // Raw RedirectMatch pattern, passed through untouched
	TermBrowser *string // Term browser name (only "ontobee" is recognized)

	Replacement *string // Target URL; required except for term_browser rules
	Level       *string // Explicit level ("project" or "top"), nil if absent
	Status      *string // Explicit status, nil if absent (default "temporary")

	Tests    []*RedirectTest // Expected redirects, checked by `waypost verify`
	Location Location        // Source location
}

// Types returns the type-indicating fields present on the rule, in canonical
// order. A valid rule yields exactly one entry; zero or more than one is a
// validation failure reported by the compiler.
func (r *Rule) Types() []RuleType {
	var types []RuleType
	if r.Path != nil {
		types = append(types, RuleTypePath)
	}
	if r.Prefix != nil {
		types = append(types, RuleTypePrefix)
	}
	if r.Regex != nil {
		types = append(types, RuleTypeRegex)
	}
	if r.TermBrowser != nil {
		types = append(types, RuleTypeTermBrowser)
	}
	return types
}

// HasReplacement returns true if the replacement key is present, even with
// an empty value.
func (r *Rule) HasReplacement() bool {
	return r.Replacement != nil
}

// HasTests returns true if the rule carries redirect test cases.
func (r *Rule) HasTests() bool {
	return len(r.Tests) > 0
}

// String renders the rule as a single-line YAML-flavored mapping for error
// messages, with keys in canonical order.
func (r *Rule) String() string {
	var parts []string
	appendField := func(key string, value *string) {
		if value == nil {
			return
		}
		parts = append(parts, fmt.Sprintf("%s: %q", key, *value))
	}
	appendField("path", r.Path)
	appendField("prefix", r.Prefix)
	appendField("regex", r.Regex)
	appendField("term_browser", r.TermBrowser)
	appendField("replacement", r.Replacement)
	appendField("level", r.Level)
	appendField("status", r.Status)
	return "{" + strings.Join(parts, ", ") + "}"
}

// RedirectTest is one expected redirect for a rule, requested and checked
// against a deployed server by the verify command. The compiler ignores it.
type RedirectTest struct {
	From     string   // Request path, e.g. "/obo/obi/branches/devel"
	To       string   // Expected first-hop Location header
	Location Location // Source location
}
