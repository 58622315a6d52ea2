package compiler

import (
	"fmt"

	"purlhub/waypost/pkg/purl/ast"
)

// Directive is one compiled Apache mod_alias RedirectMatch directive.
type Directive struct {
	Status      ast.Status // Resolved redirect status
	Source      string     // Case-insensitive match pattern
	Replacement string     // Replacement pattern, may carry backreferences
}

// String renders the directive in the format Apache expects:
//
//	RedirectMatch <keyword> "<source>" "<replacement>"
//
// Patterns are wrapped in plain double quotes, not Go-quoted, so escape
// sequences like \. pass through untouched.
func (d *Directive) String() string {
	return fmt.Sprintf("RedirectMatch %s \"%s\" \"%s\"", d.Status.Keyword(), d.Source, d.Replacement)
}
