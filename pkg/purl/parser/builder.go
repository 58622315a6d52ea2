package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

// ruleKeys is the set of recognized keys in a rule mapping, used for
// strict-mode validation and did-you-mean suggestions.
var ruleKeys = []string{
	"path",
	"prefix",
	"regex",
	"term_browser",
	"replacement",
	"level",
	"status",
	"tests",
}

// testKeys is the set of recognized keys in a redirect test mapping.
var testKeys = []string{"from", "to"}

// builder constructs an ast.Document from a parsed yaml.Node tree,
// accumulating rule-level errors instead of stopping at the first one.
type builder struct {
	sourcePath string
	strict     bool
	errors     *errors.ErrorList
}

func newBuilder(sourcePath string, strict bool) *builder {
	return &builder{
		sourcePath: sourcePath,
		strict:     strict,
		errors:     errors.NewErrorList(),
	}
}

// buildDocument walks the document root and constructs the AST. The
// document must be a mapping with a purl_rules key holding a sequence;
// anything else fails with KindNoRulesFound.
func (b *builder) buildDocument(root *yaml.Node) (*ast.Document, error) {
	top := documentRoot(root)
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, b.noRulesFound(nodeLocation(top, b.sourcePath))
	}

	rulesNode := mappingValue(top, "purl_rules")
	if rulesNode == nil || rulesNode.Kind != yaml.SequenceNode {
		return nil, b.noRulesFound(nodeLocation(top, b.sourcePath))
	}

	doc := &ast.Document{
		SourceFile: b.sourcePath,
		Location:   nodeLocation(top, b.sourcePath),
	}

	if idspace, ok := scalarValue(mappingValue(top, "idspace")); ok {
		doc.Idspace = strings.TrimSpace(idspace)
	}
	if baseURL, ok := scalarValue(mappingValue(top, "base_url")); ok {
		doc.BaseURL = strings.TrimSpace(baseURL)
	}

	for i, entry := range rulesNode.Content {
		entry = deref(entry)
		rule, ok := b.buildRule(entry, i)
		if ok {
			doc.Rules = append(doc.Rules, rule)
		}
	}

	if b.errors.HasErrors() {
		return nil, b.errors
	}
	return doc, nil
}

func (b *builder) noRulesFound(loc ast.Location) error {
	return &errors.Error{
		Kind:       errors.KindNoRulesFound,
		Message:    fmt.Sprintf("No purl_rules found in %s", b.sourcePath),
		Location:   loc,
		Suggestion: "Add a top-level 'purl_rules' key holding a list of rules",
	}
}

// buildRule converts one purl_rules entry into an ast.Rule. Malformed
// entries record errors and report ok=false so they are not added to the
// document.
func (b *builder) buildRule(node *yaml.Node, index int) (*ast.Rule, bool) {
	loc := nodeLocation(node, b.sourcePath)

	if node == nil || node.Kind != yaml.MappingNode {
		b.errors.AddError(errors.KindStructural,
			fmt.Sprintf("Rule %d is not a YAML mapping", index+1), loc)
		return nil, false
	}

	rule := &ast.Rule{Location: loc}
	ok := true

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := deref(node.Content[i+1])

		key, isScalar := scalarValue(keyNode)
		if !isScalar {
			b.errors.AddError(errors.KindStructural,
				"Rule keys must be plain strings",
				nodeLocation(keyNode, b.sourcePath))
			ok = false
			continue
		}

		switch key {
		case "path":
			ok = b.setField(&rule.Path, key, valueNode) && ok
		case "prefix":
			ok = b.setField(&rule.Prefix, key, valueNode) && ok
		case "regex":
			ok = b.setField(&rule.Regex, key, valueNode) && ok
		case "term_browser":
			ok = b.setField(&rule.TermBrowser, key, valueNode) && ok
		case "replacement":
			ok = b.setField(&rule.Replacement, key, valueNode) && ok
		case "level":
			ok = b.setField(&rule.Level, key, valueNode) && ok
		case "status":
			ok = b.setField(&rule.Status, key, valueNode) && ok
		case "tests":
			tests, testsOK := b.buildTests(valueNode)
			rule.Tests = tests
			ok = ok && testsOK
		default:
			if b.strict {
				b.errors.AddErrorWithSuggestion(errors.KindStructural,
					fmt.Sprintf("Unknown key '%s' in rule", key),
					nodeLocation(keyNode, b.sourcePath),
					errors.SuggestKey(key, ruleKeys))
				ok = false
			}
		}
	}

	if !ok {
		return nil, false
	}

	types := rule.Types()
	switch {
	case len(types) == 0:
		b.errors.Add(errors.NewRuleError(errors.KindMissingType, rule,
			"Rule does not specify a type: expected one of 'path', 'prefix', 'regex', or 'term_browser'"))
		return nil, false
	case len(types) > 1:
		b.errors.Add(errors.NewRuleError(errors.KindMultipleTypes, rule,
			"Rule specifies multiple types: %s", joinTypes(types)))
		return nil, false
	}

	return rule, true
}

// setField records a scalar value for a known rule key. A null value still
// marks the key as present, which matters for replacement validation.
func (b *builder) setField(field **string, key string, valueNode *yaml.Node) bool {
	value, isScalar := scalarValue(valueNode)
	if !isScalar {
		b.errors.AddError(errors.KindStructural,
			fmt.Sprintf("Key '%s' must have a scalar value", key),
			nodeLocation(valueNode, b.sourcePath))
		return false
	}
	*field = &value
	return true
}

// buildTests converts a tests sequence into redirect test entries.
func (b *builder) buildTests(node *yaml.Node) ([]*ast.RedirectTest, bool) {
	if node == nil || node.Kind != yaml.SequenceNode {
		b.errors.AddError(errors.KindStructural,
			"Key 'tests' must have a list value",
			nodeLocation(node, b.sourcePath))
		return nil, false
	}

	var tests []*ast.RedirectTest
	ok := true

	for i, entry := range node.Content {
		entry = deref(entry)
		loc := nodeLocation(entry, b.sourcePath)

		if entry.Kind != yaml.MappingNode {
			b.errors.AddError(errors.KindStructural,
				fmt.Sprintf("Test %d is not a YAML mapping", i+1), loc)
			ok = false
			continue
		}

		if b.strict {
			for j := 0; j+1 < len(entry.Content); j += 2 {
				key, isScalar := scalarValue(entry.Content[j])
				if isScalar && key != "from" && key != "to" {
					b.errors.AddErrorWithSuggestion(errors.KindStructural,
						fmt.Sprintf("Unknown key '%s' in test", key),
						nodeLocation(entry.Content[j], b.sourcePath),
						errors.SuggestKey(key, testKeys))
					ok = false
				}
			}
		}

		from, fromOK := scalarValue(mappingValue(entry, "from"))
		to, toOK := scalarValue(mappingValue(entry, "to"))
		if !fromOK || strings.TrimSpace(from) == "" {
			b.errors.AddError(errors.KindStructural,
				fmt.Sprintf("Test %d is missing a 'from' URL", i+1), loc)
			ok = false
			continue
		}
		if !toOK || strings.TrimSpace(to) == "" {
			b.errors.AddError(errors.KindStructural,
				fmt.Sprintf("Test %d is missing a 'to' URL", i+1), loc)
			ok = false
			continue
		}

		tests = append(tests, &ast.RedirectTest{
			From:     strings.TrimSpace(from),
			To:       strings.TrimSpace(to),
			Location: loc,
		})
	}

	return tests, ok
}

func joinTypes(types []ast.RuleType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
