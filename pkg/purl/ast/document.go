package ast

// Document represents a parsed PURL rule document for one namespace.
// Rules keep document order; the generated directive file preserves it.
type Document struct {
	// Metadata keys emitted by `waypost migrate` and tolerated by the
	// parser. Translation ignores them: the namespace always derives from
	// the document's file name.
	Idspace string // Namespace short code, e.g. "OBI"
	BaseURL string // Namespace base URL, e.g. "/obo/obi"

	Rules []*Rule // purl_rules entries in document order

	SourceFile string   // Path to the rule document
	Location   Location // Source location
}

// RuleCount returns the number of rules in the document.
func (d *Document) RuleCount() int {
	return len(d.Rules)
}

// TestCount returns the total number of redirect tests across all rules.
func (d *Document) TestCount() int {
	count := 0
	for _, rule := range d.Rules {
		count += len(rule.Tests)
	}
	return count
}
