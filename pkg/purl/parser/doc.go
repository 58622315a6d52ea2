// Package parser provides YAML parsing and AST construction for PURL rule
// documents.
//
// The parser reads a rule document (YAML format), locates the purl_rules
// list, and constructs the typed AST consumed by the compiler. It works on
// yaml.Node trees rather than decoded maps for two reasons: every AST node
// gets a real source location for error reporting, and key presence is
// tracked exactly — "replacement:" with a null value is a present key, which
// the compiler's validation rules distinguish from an absent one.
//
// # Basic Usage
//
// Parse a rule document:
//
//	p := parser.NewParser()
//	doc, err := p.Parse("obi.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Rules:", doc.RuleCount())
//
// Parse from memory:
//
//	yamlData := []byte(`
//	purl_rules:
//	- prefix: /obo/obi/
//	  replacement: http://obi.example.org/
//	`)
//
//	doc, err := p.ParseBytes(yamlData, "memory://obi.yml")
//
// # Configuration
//
// Configure parser limits and strictness:
//
//	p := parser.NewParser().
//	    WithMaxFileSize(5 * 1024 * 1024). // 5MB limit
//	    WithStrictMode(true)              // unknown rule keys become errors
//
// In strict mode an unrecognized rule key is a structural error with a
// did-you-mean suggestion. Outside strict mode unknown keys are ignored,
// matching how deployed rule documents have historically been handled.
//
// # Error Handling
//
// The parser accumulates rule-level errors in an errors.ErrorList instead
// of stopping at the first one:
//
//	doc, err := p.Parse("obi.yml")
//	if err != nil {
//	    if errList, ok := err.(*errors.ErrorList); ok {
//	        for _, e := range errList.Errors {
//	            fmt.Println(e.Error())
//	        }
//	    }
//	}
//
// A document without a purl_rules list fails with KindNoRulesFound before
// any rule is built. An empty purl_rules list is valid: translation then
// produces a header with no directives.
package parser
