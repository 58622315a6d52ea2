package errors

import (
	"fmt"
	"strings"

	"purlhub/waypost/pkg/purl/ast"
)

// Kind categorizes a validation failure. The rule-level kinds map onto the
// checks the compiler runs, in the order it runs them; the remaining kinds
// cover document loading, parsing, and migration.
type Kind string

const (
	KindMissingType       Kind = "missing_type"        // No type-indicating field on the rule
	KindMultipleTypes     Kind = "multiple_types"      // More than one type-indicating field
	KindReplacement       Kind = "replacement"         // Replacement missing, blank, or forbidden
	KindUnknownBrowser    Kind = "unknown_browser"     // term_browser value not recognized
	KindNamespaceMismatch Kind = "namespace_mismatch"  // path/prefix outside the namespace base URL
	KindInvalidLevel      Kind = "invalid_level"       // Explicit level neither project nor top
	KindTopLevelPollution Kind = "top_level_pollution" // Top-level rule shape not on the allow-list
	KindInvalidStatus     Kind = "invalid_status"      // Explicit status outside the recognized set
	KindNoRulesFound      Kind = "no_rules_found"      // Document has no purl_rules list
	KindInvalidMode       Kind = "invalid_mode"        // Processing mode neither project nor top

	KindSyntax     Kind = "syntax"     // YAML syntax error
	KindStructural Kind = "structural" // Malformed rule record (unknown keys, wrong node kinds)
	KindIO         Kind = "io"         // File I/O error

	KindNoEntries Kind = "no_entries" // PURL.org export held no migratable entries
	KindBadEntry  Kind = "bad_entry"  // PURL.org entry missing or invalid fields
)

// Error represents a rich validation error with location, the offending
// rule, context, and an optional suggestion.
type Error struct {
	Kind       Kind         // Category of failure
	Message    string       // Error message
	Location   ast.Location // Source location (file, line, column)
	Rule       *ast.Rule    // Offending rule, nil for document-level failures
	Context    string       // Surrounding lines of the source document
	Suggestion string       // Suggested fix (optional)
}

// Error implements the error interface. It returns a formatted message with
// location, the offending rule, and context.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Kind, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Rule != nil {
		sb.WriteString(fmt.Sprintf("  rule: %s\n", e.Rule))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// NewRuleError creates an error of the given kind carrying the offending
// rule. The error's location is taken from the rule.
func NewRuleError(kind Kind, rule *ast.Rule, format string, args ...any) *Error {
	e := &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Rule:    rule,
	}
	if rule != nil {
		e.Location = rule.Location
	}
	return e
}

// WithSuggestion attaches a suggestion and returns the error for chaining.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// ErrorList represents a collection of errors encountered during parsing or
// linting. It allows accumulating multiple errors instead of failing on the
// first one.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(kind Kind, message string, location ast.Location) {
	el.Add(&Error{
		Kind:     kind,
		Message:  message,
		Location: location,
	})
}

// AddErrorWithSuggestion creates and adds a new error with a suggestion.
func (el *ErrorList) AddErrorWithSuggestion(kind Kind, message string, location ast.Location, suggestion string) {
	el.Add(&Error{
		Kind:       kind,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByKind returns all errors of the given kind.
func (el *ErrorList) ByKind(kind Kind) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one error of the kind.
func (el *ErrorList) HasKind(kind Kind) bool {
	for _, err := range el.Errors {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, or an
// *ErrorList containing one. Any other error value reports false.
func IsKind(err error, kind Kind) bool {
	switch e := err.(type) {
	case *Error:
		return e.Kind == kind
	case *ErrorList:
		return e.HasKind(kind)
	default:
		return false
	}
}
