package purl

import (
	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/compiler"
	"purlhub/waypost/pkg/purl/errors"
	"purlhub/waypost/pkg/purl/htaccess"
	"purlhub/waypost/pkg/purl/parser"
)

// Parse parses a rule document without checking the rules against the
// compiler. Use this to inspect the AST before validation.
func Parse(path string) (*ast.Document, error) {
	p := parser.NewParser()
	return p.Parse(path)
}

// ParseBytes parses rule document YAML from bytes.
func ParseBytes(data []byte, sourcePath string) (*ast.Document, error) {
	p := parser.NewParser()
	return p.ParseBytes(data, sourcePath)
}

// ParseAndCheck is a convenience function that parses a rule document and
// validates every rule. It returns the parsed AST if successful.
func ParseAndCheck(path string) (*ast.Document, error) {
	doc, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := Check(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Check validates every rule of a parsed document, accumulating failures
// instead of stopping at the first one. The namespace is derived from the
// document's source file name.
//
// A deployment translates each document in both processing modes, so a rule
// is checked the way both passes would see it: first as the project pass,
// then, if the project pass had no complaint, as the top pass. Mode-neutral
// failures surface once; pass-specific failures (the top-level allow-list,
// a bad status on a top rule) surface from the pass that would hit them.
func Check(doc *ast.Document) error {
	return CheckAs(htaccess.Namespace(doc.SourceFile), doc)
}

// CheckAs is Check with an explicit namespace.
func CheckAs(namespace string, doc *ast.Document) error {
	project := compiler.New(compiler.ModeProject, namespace)
	top := compiler.New(compiler.ModeTop, namespace)

	errList := errors.NewErrorList()
	for _, rule := range doc.Rules {
		if _, err := project.Compile(rule); err != nil {
			errList.Add(errors.AddContextToError(toError(err)))
			continue
		}
		if _, err := top.Compile(rule); err != nil {
			errList.Add(errors.AddContextToError(toError(err)))
		}
	}
	return errList.ToError()
}

// Translate parses a rule document and generates .htaccess content for the
// given processing mode.
func Translate(mode compiler.Mode, path string) (string, error) {
	doc, err := Parse(path)
	if err != nil {
		return "", err
	}
	return htaccess.Generate(mode, doc)
}

// TranslateBytes is Translate over in-memory YAML. The namespace is derived
// from sourcePath.
func TranslateBytes(mode compiler.Mode, data []byte, sourcePath string) (string, error) {
	doc, err := ParseBytes(data, sourcePath)
	if err != nil {
		return "", err
	}
	return htaccess.Generate(mode, doc)
}

func toError(err error) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return &errors.Error{Kind: errors.KindStructural, Message: err.Error()}
}
