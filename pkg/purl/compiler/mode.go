package compiler

import (
	"strings"

	"purlhub/waypost/pkg/purl/errors"
)

// Mode selects which translation pass is running. Each rule document is
// translated once per mode; a rule contributes output to exactly one pass.
type Mode string

const (
	// ModeProject emits the rules scoped to the namespace's own subtree.
	ModeProject Mode = "project"
	// ModeTop emits the rules published at shared top-level paths.
	ModeTop Mode = "top"
)

// ParseMode parses a processing mode argument. Matching is
// case-insensitive. Anything other than "project" or "top" fails with
// KindInvalidMode before any rule is processed.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeProject:
		return ModeProject, nil
	case ModeTop:
		return ModeTop, nil
	default:
		return "", &errors.Error{
			Kind:       errors.KindInvalidMode,
			Message:    "Processing mode must be \"project\" or \"top\", not \"" + s + "\"",
			Suggestion: errors.SuggestValue(s, []string{string(ModeProject), string(ModeTop)}),
		}
	}
}
