// Package compiler turns validated PURL rules into Apache mod_alias
// RedirectMatch directives.
//
// The compiler is a pure function over (processing mode, namespace, rule).
// It holds no state across calls: every rule is validated and translated
// independently, and the caller decides what to do with the results. A rule
// can compile to a directive, be suppressed for the requested mode (nil
// directive, nil error), or fail validation.
//
// # Basic Usage
//
// Compile rules for a namespace:
//
//	c := compiler.New(compiler.ModeProject, "OBI")
//	directive, err := c.Compile(rule)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if directive != nil {
//	    fmt.Println(directive) // RedirectMatch temp "(?i)^/obo/obi/x$" "http://..."
//	}
//
// # Two-Pass Translation
//
// A deployment translates every rule document twice: once in project mode,
// producing the namespace's own .htaccess file, and once in top mode,
// producing the shared top-level directives. Each rule belongs to exactly
// one pass. Its effective level decides which, resolved in this order:
//
//  1. An explicit level field (project or top, case-insensitive).
//  2. A path or prefix reaching into the namespace's subtree
//     (starts with base URL + "/") implies project.
//  3. term_browser rules default to top.
//  4. Everything else defaults to top.
//
// Rules at top level face extra scrutiny: only shapes that provably cannot
// shadow another namespace are allowed through (the exact namespace base
// URL, its .owl/.obo artifacts, the namespace's term prefix, term_browser
// rules, and regex rules, which cannot be introspected).
//
// Validation failures carry the offending rule and are categorized by
// errors.Kind; see the errors package for the taxonomy.
package compiler
