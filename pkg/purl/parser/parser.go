package parser

import (
	"gopkg.in/yaml.v3"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

// DefaultMaxFileSize is the rule document size limit applied by NewParser.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Parser parses PURL rule documents into Abstract Syntax Trees.
// It handles YAML parsing, AST construction, and structural validation.
type Parser struct {
	// Configuration
	maxFileSize int64 // Maximum file size in bytes (default: 10MB)
	strictMode  bool  // Strict mode (unknown keys become errors)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: DefaultMaxFileSize,
		strictMode:  false,
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithStrictMode enables strict validation (unknown keys become errors).
func (p *Parser) WithStrictMode(strict bool) *Parser {
	p.strictMode = strict
	return p
}

// Parse parses a rule document at the given path and returns the AST.
// It returns an error if the file cannot be read, has invalid YAML syntax,
// lacks a purl_rules list, or contains malformed rules.
func (p *Parser) Parse(path string) (*ast.Document, error) {
	root, err := p.loadYAML(path)
	if err != nil {
		return nil, err
	}
	return p.build(root, path)
}

// ParseBytes parses rule document YAML from a byte slice.
// This is useful for testing or parsing documents from memory.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Document, error) {
	root, err := p.parseYAML(data, sourcePath)
	if err != nil {
		return nil, err
	}
	return p.build(root, sourcePath)
}

func (p *Parser) build(root *yaml.Node, sourcePath string) (*ast.Document, error) {
	b := newBuilder(sourcePath, p.strictMode)
	doc, err := b.buildDocument(root)
	if err != nil {
		// Add source context to errors (no-op for in-memory data)
		if errList, ok := err.(*errors.ErrorList); ok {
			for i, e := range errList.Errors {
				errList.Errors[i] = errors.AddContextToError(e)
			}
		}
		return nil, err
	}
	return doc, nil
}
