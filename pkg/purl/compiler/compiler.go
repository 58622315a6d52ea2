package compiler

import (
	"fmt"
	"strings"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

// ontobeeReplacement is the term browser URL template synthesized for
// term_browser rules, parameterized by namespace and the captured term
// digits.
const ontobeeReplacement = "http://www.ontobee.org/browser/rdf.php?o=%s&iri=http://purl.obolibrary.org/obo/%s_$1"

// Compiler compiles rules for one namespace in one processing mode.
// It is stateless apart from its configuration and safe for concurrent use.
type Compiler struct {
	mode      Mode
	namespace string
	baseURL   string
}

// New creates a compiler for the given mode and namespace. The namespace is
// the uppercase short code of the identifier registry, e.g. "OBI"; it is
// derived from the rule document's file name by the caller.
func New(mode Mode, namespace string) *Compiler {
	return &Compiler{
		mode:      mode,
		namespace: namespace,
		baseURL:   BaseURL(namespace),
	}
}

// BaseURL computes the base URL that a namespace's path and prefix rules
// must stay under. The special namespace "OBO" owns /obo itself; every
// other namespace gets /obo/<namespace lowercased>. The comparison is
// case-sensitive: "obo" is a regular namespace with base URL /obo/obo.
func BaseURL(namespace string) string {
	if namespace == "OBO" {
		return "/obo"
	}
	return "/obo/" + strings.ToLower(namespace)
}

// Mode returns the processing mode the compiler was created with.
func (c *Compiler) Mode() Mode {
	return c.mode
}

// Namespace returns the namespace the compiler was created with.
func (c *Compiler) Namespace() string {
	return c.namespace
}

// Compile validates one rule and translates it into a RedirectMatch
// directive. Three outcomes are possible:
//
//   - (directive, nil): the rule belongs to this mode and compiled cleanly.
//   - (nil, nil): the rule is valid but belongs to the other processing
//     mode; it is suppressed, not an error.
//   - (nil, err): the rule failed validation. The error carries the rule.
//
// Checks run in a fixed order, so a rule with several problems always
// reports the same first one regardless of mode or caller.
func (c *Compiler) Compile(rule *ast.Rule) (*Directive, error) {
	if rule == nil {
		return nil, &errors.Error{
			Kind:    errors.KindStructural,
			Message: "Cannot compile a nil rule",
		}
	}

	// Determine the variant for this rule
	types := rule.Types()
	switch {
	case len(types) == 0:
		return nil, errors.NewRuleError(errors.KindMissingType, rule,
			"Rule does not specify a type: expected one of 'path', 'prefix', 'regex', or 'term_browser'")
	case len(types) > 1:
		return nil, errors.NewRuleError(errors.KindMultipleTypes, rule,
			"Rule specifies multiple types: %s", joinTypes(types))
	}
	variant := types[0]

	// Validate replacement presence per variant. Presence is what counts:
	// a replacement key with a blank value is present but still invalid.
	if variant == ast.RuleTypeTermBrowser {
		if rule.HasReplacement() {
			return nil, errors.NewRuleError(errors.KindReplacement, rule,
				"term_browser rules do not use 'replacement'").
				WithSuggestion("Remove the 'replacement' key; the browser URL is synthesized")
		}
	} else {
		if !rule.HasReplacement() || strings.TrimSpace(*rule.Replacement) == "" {
			return nil, errors.NewRuleError(errors.KindReplacement, rule,
				"Rule is missing a 'replacement'").
				WithSuggestion("Add a 'replacement' key with the target URL")
		}
	}

	// Build the source and replacement patterns. term_browser also forces
	// level and status defaults; an explicit field still overrides them.
	var (
		source      string
		replacement string
		path        string
		prefix      string
		level       = ast.LevelTop
		status      = ast.StatusTemporary
	)

	switch variant {
	case ast.RuleTypePath:
		path = *rule.Path
		source = fmt.Sprintf("(?i)^%s$", escapeSource(path))
		replacement = *rule.Replacement

	case ast.RuleTypePrefix:
		prefix = *rule.Prefix
		source = fmt.Sprintf("(?i)^%s(.*)$", escapeSource(prefix))
		replacement = *rule.Replacement + "$1"

	case ast.RuleTypeRegex:
		if rule.Level == nil {
			return nil, errors.NewRuleError(errors.KindInvalidLevel, rule,
				"regex rules must have an explicit 'level'").
				WithSuggestion("Add 'level: project' or 'level: top'")
		}
		// Raw pass-through: the pattern is the author's responsibility
		source = *rule.Regex
		replacement = *rule.Replacement

	case ast.RuleTypeTermBrowser:
		if !strings.EqualFold(*rule.TermBrowser, "ontobee") {
			return nil, errors.NewRuleError(errors.KindUnknownBrowser, rule,
				"Unknown term_browser %q", *rule.TermBrowser).
				WithSuggestion("Only 'ontobee' is recognized")
		}
		source = fmt.Sprintf(`(?i)^/obo/%s_(\d+)$`, c.namespace)
		replacement = fmt.Sprintf(ontobeeReplacement, c.namespace, c.namespace)
		level = ast.LevelTop
		status = ast.StatusSeeOther
	}

	// Ensure path and prefix rules stay inside their own namespace
	if variant == ast.RuleTypePath && !strings.HasPrefix(strings.ToLower(path), c.baseURL) {
		return nil, errors.NewRuleError(errors.KindNamespaceMismatch, rule,
			"Bad path %q for namespace %q", path, c.namespace).
			WithSuggestion(fmt.Sprintf("Paths for this namespace must start with %q", c.baseURL))
	}
	if variant == ast.RuleTypePrefix && !strings.HasPrefix(strings.ToLower(prefix), c.baseURL) {
		return nil, errors.NewRuleError(errors.KindNamespaceMismatch, rule,
			"Bad prefix %q for namespace %q", prefix, c.namespace).
			WithSuggestion(fmt.Sprintf("Prefixes for this namespace must start with %q", c.baseURL))
	}

	// Resolve the effective level. The chain is ordered and evaluated
	// top-to-bottom:
	//   1. an explicit level field wins, even over term_browser's default;
	//   2. a path reaching into the namespace subtree implies project;
	//   3. a prefix reaching into the namespace subtree implies project;
	//   4. term_browser rules default to top;
	//   5. everything else stays at the top default.
	switch {
	case rule.Level != nil:
		parsed, ok := ast.ParseLevel(*rule.Level)
		if !ok {
			return nil, errors.NewRuleError(errors.KindInvalidLevel, rule,
				"Level must be \"project\" or \"top\", not %q", *rule.Level).
				WithSuggestion(errors.SuggestValue(*rule.Level,
					[]string{string(ast.LevelProject), string(ast.LevelTop)}))
		}
		level = parsed
	case strings.HasPrefix(strings.ToLower(path), c.baseURL+"/"):
		level = ast.LevelProject
	case strings.HasPrefix(strings.ToLower(prefix), c.baseURL+"/"):
		level = ast.LevelProject
	case variant == ast.RuleTypeTermBrowser:
		level = ast.LevelTop
	}

	// Suppress rules that belong to the other pass. This happens before
	// the top-level checks below, so a top rule with an invalid status is
	// silently skipped by the project pass and only rejected by the top
	// pass that would actually emit it.
	if c.mode == ModeProject && level == ast.LevelTop {
		return nil, nil
	}
	if c.mode == ModeTop && level == ast.LevelProject {
		return nil, nil
	}

	// Even in top mode, only certain top-level shapes are allowed:
	//   - all regex rules, because their patterns cannot be inspected;
	//   - term_browser rules;
	//   - the namespace's own base redirect;
	//   - the namespace's .owl and .obo artifacts;
	//   - the namespace's term prefix, for term IDs.
	// Anything else could shadow another namespace and is rejected.
	if c.mode == ModeTop {
		allowed := variant == ast.RuleTypeRegex ||
			variant == ast.RuleTypeTermBrowser ||
			path == c.baseURL ||
			path == c.baseURL+".owl" ||
			path == c.baseURL+".obo" ||
			prefix == "/obo/"+c.namespace+"_"
		if !allowed {
			return nil, errors.NewRuleError(errors.KindTopLevelPollution, rule,
				"Invalid top-level rule for namespace %q", c.namespace).
				WithSuggestion(fmt.Sprintf(
					"Top-level paths are limited to %q, %q, %q, and the prefix %q",
					c.baseURL, c.baseURL+".owl", c.baseURL+".obo", "/obo/"+c.namespace+"_"))
		}
	}

	// Validate the status code. Matching is case-sensitive.
	if rule.Status != nil {
		explicit := ast.Status(*rule.Status)
		if !explicit.Valid() {
			return nil, errors.NewRuleError(errors.KindInvalidStatus, rule,
				"Invalid status %q for rule", *rule.Status).
				WithSuggestion(errors.SuggestValue(*rule.Status, []string{
					string(ast.StatusPermanent),
					string(ast.StatusTemporary),
					string(ast.StatusSeeOther),
				}))
		}
		status = explicit
	}

	return &Directive{
		Status:      status,
		Source:      source,
		Replacement: replacement,
	}, nil
}

func joinTypes(types []ast.RuleType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
