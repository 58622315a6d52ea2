package ast

import "strings"

// Level scopes a rule to either the namespace's own subtree or the shared
// top-level path space.
type Level string

const (
	// LevelProject scopes a redirect to one namespace's own subtree.
	LevelProject Level = "project"
	// LevelTop publishes a redirect at a shared top-level path, subject to
	// stricter scrutiny because it can affect other namespaces.
	LevelTop Level = "top"
)

// ParseLevel parses an explicit level value. Matching is case-insensitive,
// so "TOP" and "Project" are accepted.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case string(LevelProject):
		return LevelProject, true
	case string(LevelTop):
		return LevelTop, true
	default:
		return "", false
	}
}

// Status selects the HTTP status family of the emitted redirect.
type Status string

const (
	StatusPermanent Status = "permanent" // 301
	StatusTemporary Status = "temporary" // 302, the default
	StatusSeeOther  Status = "see other" // 303
)

// Valid reports whether s is one of the three recognized statuses. Unlike
// level, status is matched case-sensitively: "Permanent" is rejected.
func (s Status) Valid() bool {
	switch s {
	case StatusPermanent, StatusTemporary, StatusSeeOther:
		return true
	default:
		return false
	}
}

// Keyword returns the Apache mod_alias spelling of the status, used as the
// first argument of a RedirectMatch directive.
func (s Status) Keyword() string {
	switch s {
	case StatusTemporary:
		return "temp"
	case StatusSeeOther:
		return "seeother"
	default:
		return string(s)
	}
}

// HTTPStatus returns the HTTP status code a compliant server responds with
// for this redirect status.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusPermanent:
		return 301
	case StatusSeeOther:
		return 303
	default:
		return 302
	}
}
