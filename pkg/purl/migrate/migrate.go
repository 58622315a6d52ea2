package migrate

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
)

// headerTemplate opens the generated rule document. TODO markers flag the
// fields the namespace owner has to fill in by hand.
const headerTemplate = `# PURL configuration for http://purl.obolibrary.org%s

idspace: %s
base_url: %s

products:
- %s.owl: TODO
- %s.obo: TODO

example_terms:
- TODO

purl_rules:

- term_browser: ontobee

`

const entryTemplate = `- %s: %s
  replacement: %s

`

// absoluteURL matches the target URLs PURL.org accepted.
var absoluteURL = regexp.MustCompile(`^(https?|ftp)://.+`)

// Entry is one migratable redirect from a PURL.org export.
type Entry struct {
	Kind ast.RuleType // RuleTypePath for "302" purls, RuleTypePrefix for "partial"
	ID   string       // Full PURL path, e.g. "/obo/obi/branches/"
	URL  string       // Absolute target URL
}

// Migrate reads a PURL.org XML export and returns a rule document for the
// given project ID. It fails with KindNoEntries if the export holds no
// migratable purls.
func Migrate(projectID string, r io.Reader) (string, error) {
	entries, err := ParseExport(projectID, r)
	if err != nil {
		return "", err
	}
	return Render(projectID, entries), nil
}

// ParseExport streams a PURL.org XML export and collects its entries,
// ordered for emission: path entries first in input order, then prefix
// entries from longest to shortest id. Validation failures carry the
// ordinal of the offending <purl> element.
func ParseExport(projectID string, r io.Reader) ([]*Entry, error) {
	baseURL := "/obo/" + strings.ToLower(projectID)

	var (
		paths    []*Entry
		prefixes []*Entry

		count   int
		content strings.Builder
		fields  map[string]string
	)

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.Error{
				Kind:    errors.KindSyntax,
				Message: fmt.Sprintf("XML parsing failed: %v", err),
			}
		}

		switch t := token.(type) {
		case xml.StartElement:
			content.Reset()
			if t.Name.Local == "purl" {
				count++
				fields = make(map[string]string)
			}

		case xml.CharData:
			content.Write(t)

		case xml.EndElement:
			switch t.Name.Local {
			case "type", "id", "url":
				value := strings.TrimSpace(content.String())
				if value == "" {
					return nil, badEntry("Empty <%s> for <purl> %d", t.Name.Local, count)
				}
				if fields != nil {
					fields[t.Name.Local] = value
				}

			case "purl":
				entry, err := buildEntry(count, baseURL, fields)
				if err != nil {
					return nil, err
				}
				if entry.Kind == ast.RuleTypePath {
					paths = append(paths, entry)
				} else {
					prefixes = append(prefixes, entry)
				}
				fields = nil
			}
		}
	}

	// Longest prefix first, so specific redirects shadow broad ones the
	// way PURL.org resolved them. Ties keep export order.
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i].ID) > len(prefixes[j].ID)
	})

	entries := append(paths, prefixes...)
	if len(entries) == 0 {
		return nil, &errors.Error{
			Kind:    errors.KindNoEntries,
			Message: "No entries to migrate",
		}
	}
	return entries, nil
}

// buildEntry validates one <purl> element's fields and classifies it.
func buildEntry(count int, baseURL string, fields map[string]string) (*Entry, error) {
	id, ok := fields["id"]
	if !ok {
		return nil, badEntry("No <id> for <purl> %d", count)
	}
	if !strings.HasPrefix(strings.ToLower(id), baseURL) {
		return nil, badEntry(
			"In <purl> %d the <id> %q does not begin with base_url %q", count, id, baseURL)
	}

	url, ok := fields["url"]
	if !ok {
		return nil, badEntry("No <url> for <purl> %d", count)
	}
	if !absoluteURL.MatchString(url) {
		return nil, badEntry(
			"In <purl> %d the <url> %q is not an absolute HTTP or FTP URL", count, url)
	}

	purlType, ok := fields["type"]
	if !ok {
		return nil, badEntry("No <type> for <purl> %d", count)
	}

	switch purlType {
	case "302":
		return &Entry{Kind: ast.RuleTypePath, ID: id, URL: url}, nil
	case "partial":
		return &Entry{Kind: ast.RuleTypePrefix, ID: id, URL: url}, nil
	default:
		return nil, badEntry("Unknown type %q for <purl> %d", purlType, count)
	}
}

// Render formats migrated entries as a rule document. A term_browser rule
// is included up front, matching what every migrated namespace configures.
func Render(projectID string, entries []*Entry) string {
	upperID := strings.ToUpper(projectID)
	lowerID := strings.ToLower(projectID)
	baseURL := "/obo/" + lowerID

	var sb strings.Builder
	fmt.Fprintf(&sb, headerTemplate, baseURL, upperID, baseURL, lowerID, lowerID)
	for _, entry := range entries {
		fmt.Fprintf(&sb, entryTemplate, entry.Kind, entry.ID, entry.URL)
	}
	return sb.String()
}

func badEntry(format string, args ...any) *errors.Error {
	return &errors.Error{
		Kind:    errors.KindBadEntry,
		Message: fmt.Sprintf(format, args...),
	}
}
