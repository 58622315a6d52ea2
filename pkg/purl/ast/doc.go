// Package ast defines the parsed representation of a PURL rule document.
//
// A document is a YAML file whose purl_rules list holds redirect rules for
// one namespace (idspace). Every rule is exactly one of four variants,
// distinguished by which type field it carries:
//
// path: match one exact URL string and redirect to an exact URL
//
// prefix: match a URL prefix and carry the request's trailing segment over
// to the replacement
//
// regex: a raw RedirectMatch regular expression, passed through untouched
//
// term_browser: a synthesized redirect into an external ontology term
// browser (currently only "ontobee")
//
// # Basic Usage
//
// Parse a document and inspect its rules:
//
//	doc, err := parser.NewParser().Parse("obi.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rule := range doc.Rules {
//	    types := rule.Types()
//	    fmt.Println("Rule:", types[0], "at", rule.Location)
//	}
//
// # Presence Tracking
//
// Variant and optional fields are pointers so that an absent key, a key with
// a null value, and a key with an empty string remain distinguishable. The
// compiler's validation rules depend on that distinction: a term_browser rule
// with "replacement: null" is still rejected, because the key is present.
//
// # Source Locations
//
// All nodes include a Location (file, line, column) taken from the YAML
// parser, for precise error reporting:
//
//	if rule.Replacement == nil {
//	    return fmt.Errorf("%s: rule has no replacement", rule.Location)
//	}
//
// AST nodes should be treated as immutable after construction. The parser
// builds the document once and the compiler inspects it without modification.
package ast
