package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

// loadYAML reads a file and parses it into a yaml.Node tree, enforcing the
// configured size limit before reading.
func (p *Parser) loadYAML(path string) (*yaml.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &errors.Error{
			Kind:     errors.KindIO,
			Message:  fmt.Sprintf("Cannot access file: %v", err),
			Location: ast.Location{File: path},
		}
	}

	if info.Size() > p.maxFileSize {
		return nil, &errors.Error{
			Kind: errors.KindIO,
			Message: fmt.Sprintf("File too large: %d bytes (limit %d bytes)",
				info.Size(), p.maxFileSize),
			Location:   ast.Location{File: path},
			Suggestion: "Split the rule document into smaller files",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{
			Kind:     errors.KindIO,
			Message:  fmt.Sprintf("Cannot read file: %v", err),
			Location: ast.Location{File: path},
		}
	}

	return p.parseYAML(data, path)
}

// parseYAML unmarshals raw bytes into a yaml.Node tree.
func (p *Parser) parseYAML(data []byte, sourcePath string) (*yaml.Node, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &errors.Error{
			Kind: errors.KindIO,
			Message: fmt.Sprintf("Input too large: %d bytes (limit %d bytes)",
				len(data), p.maxFileSize),
			Location: ast.Location{File: sourcePath},
		}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &errors.Error{
			Kind:       errors.KindSyntax,
			Message:    fmt.Sprintf("YAML parsing failed: %v", err),
			Location:   ast.Location{File: sourcePath, Line: 1, Column: 1},
			Suggestion: "Check YAML syntax (indentation, colons, quotes)",
		}
	}

	return &root, nil
}

// deref follows alias nodes to their anchor target. All other nodes are
// returned unchanged.
func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// documentRoot unwraps a DocumentNode to its single content node. Empty
// documents return nil.
func documentRoot(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		return deref(node.Content[0])
	}
	if node.Kind == 0 {
		return nil
	}
	return deref(node)
}

// mappingValue finds the value node for a key in a mapping node. Returns nil
// if the node is not a mapping or the key is absent.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return deref(node.Content[i+1])
		}
	}
	return nil
}

// isNull reports whether a node is a YAML null (explicit "null", "~", or an
// empty value after the colon).
func isNull(node *yaml.Node) bool {
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// scalarValue extracts the string form of a scalar node. Nulls yield the
// empty string; non-scalar nodes report false.
func scalarValue(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	if isNull(node) {
		return "", true
	}
	return node.Value, true
}

// nodeLocation builds an ast.Location from a node's recorded position.
func nodeLocation(node *yaml.Node, file string) ast.Location {
	if node == nil {
		return ast.Location{File: file}
	}
	return ast.Location{File: file, Line: node.Line, Column: node.Column}
}
