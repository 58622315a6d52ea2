package compiler

import (
	"regexp"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestEscapeSource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/obo/go.owl", `/obo/go\.owl`},
		{"/obo/obi/consortium/", "/obo/obi/consortium/"},
		{"  /obo/obi/x  ", "/obo/obi/x"},
		{"/obo/obi/a+b", `/obo/obi/a\+b`},
		{"/obo/obi/(draft)", `/obo/obi/\(draft\)`},
		{"/obo/obi/v1.2.3", `/obo/obi/v1\.2\.3`},
	}

	for _, tt := range tests {
		if got := escapeSource(tt.in); got != tt.want {
			t.Errorf("escapeSource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Property-based test: an escaped pattern matches exactly its own input
func TestEscapeSource_PropertyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("escaped pattern matches its literal input", prop.ForAll(
		func(s string) bool {
			pattern, err := regexp.Compile("^" + escapeSource(s) + "$")
			if err != nil {
				return false
			}
			return pattern.MatchString(strings.TrimSpace(s))
		},
		gen.AnyString(),
	))

	properties.Property("slashes in URL paths are never escaped", prop.ForAll(
		func(s string) bool {
			return !strings.Contains(escapeSource(s), `\/`)
		},
		gen.RegexMatch(`/[a-zA-Z0-9_./()+*?-]*`),
	))

	properties.TestingRun(t)
}
