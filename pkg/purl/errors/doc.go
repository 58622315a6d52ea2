// Package errors provides rich error types for PURL rule parsing,
// compilation, and migration.
//
// Every detected problem is a validation failure, not a recoverable
// condition: the compiler never retries or degrades, and the CLI turns the
// first failure into a non-zero exit. What this package adds is
// diagnosability — each error carries a kind from a fixed taxonomy, the
// source location, the offending rule record, and an optional suggestion.
//
// # Error Kinds
//
// Rule-level kinds, raised by the compiler:
//
// KindMissingType, KindMultipleTypes: zero or more than one of the four
// type-indicating fields (path, prefix, regex, term_browser)
//
// KindReplacement: replacement missing or blank, or present on a
// term_browser rule (which forbids it)
//
// KindUnknownBrowser: a term_browser value other than "ontobee"
//
// KindNamespaceMismatch: a path or prefix outside the namespace's base URL
//
// KindInvalidLevel, KindInvalidStatus: explicit values outside the
// recognized sets
//
// KindTopLevelPollution: a top-level rule whose shape is not on the
// top-level allow-list
//
// Document-level kinds: KindNoRulesFound (no purl_rules list) and
// KindInvalidMode (processing mode is neither project nor top). Parser and
// IO failures use KindSyntax, KindStructural, and KindIO; migration uses
// KindNoEntries and KindBadEntry.
//
// # Basic Usage
//
// Create an error for a rule:
//
//	err := errors.NewRuleError(errors.KindMissingType, rule,
//	    "Rule does not have a type field")
//
// Accumulate multiple errors (the parser and lint do this instead of
// stopping at the first):
//
//	errList := errors.NewErrorList()
//	errList.AddError(errors.KindStructural, "Rule is not a YAML mapping", loc)
//	return errList.ToError()
//
// # Error Format
//
//	[namespace_mismatch] Bad path "/obo/chebi/" for namespace "OBI"
//	  --> obi.yml:14:3
//	  rule: {path: "/obo/chebi/", replacement: "http://example.com"}
//	  = suggestion: Paths for OBI must start with "/obo/obi"
package errors
