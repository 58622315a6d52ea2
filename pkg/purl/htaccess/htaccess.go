package htaccess

import (
	"fmt"
	"path/filepath"
	"strings"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/compiler"
)

// projectHeader opens a namespace's own .htaccess file. It names the source
// document so operators chasing a bad redirect find the file to edit.
const projectHeader = `# DO NOT EDIT THIS FILE!
# Automatically generated from "%s".
# Edit that source file then regenerate this file.

`

// topHeader opens a namespace's section of the shared top-level file, which
// concatenates one section per namespace.
const topHeader = "# Top-level rules for %s\n"

// Namespace derives the namespace short code from a rule document path:
// the base name with its extension stripped, so "config/obi.yml" owns
// namespace "obi" and "OBI.yml" owns "OBI". The spelling is significant:
// it feeds the base URL and the term prefix allow-list.
func Namespace(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Generate compiles every rule of a document for the given mode and returns
// the .htaccess content. The namespace is derived from the document's
// source file name. The first invalid rule aborts generation; rules that
// belong to the other mode are skipped silently.
func Generate(mode compiler.Mode, doc *ast.Document) (string, error) {
	return GenerateAs(mode, Namespace(doc.SourceFile), doc)
}

// GenerateAs is Generate with an explicit namespace, for callers that do
// not want it derived from the document's file name.
func GenerateAs(mode compiler.Mode, namespace string, doc *ast.Document) (string, error) {
	mode, err := compiler.ParseMode(string(mode))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	switch mode {
	case compiler.ModeProject:
		fmt.Fprintf(&sb, projectHeader, doc.SourceFile)
	case compiler.ModeTop:
		fmt.Fprintf(&sb, topHeader, namespace)
	}

	c := compiler.New(mode, namespace)
	for _, rule := range doc.Rules {
		directive, err := c.Compile(rule)
		if err != nil {
			return "", err
		}
		if directive != nil {
			sb.WriteString(directive.String())
			sb.WriteByte('\n')
		}
	}

	// The shared top-level file is a concatenation of per-namespace
	// sections; the blank line keeps them apart.
	if mode == compiler.ModeTop {
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
