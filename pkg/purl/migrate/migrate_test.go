package migrate

import (
	"strings"
	"testing"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/errors"
	"purlhub/waypost/pkg/purl/parser"
)

const sampleExport = `<purls>
  <purl status="1">
    <id>/obo/obi/consortium/</id>
    <type>302</type>
    <maintainers><uid>ALANRUTTENBERG</uid></maintainers>
    <target><url>http://obi-ontology.org/page/Consortium</url></target>
  </purl>
  <purl status="1">
    <id>/obo/obi/branches/</id>
    <type>partial</type>
    <target><url>http://obi.svn.sourceforge.net/svnroot/obi/trunk/src/ontology/branches/</url></target>
  </purl>
  <purl status="1">
    <id>/obo/obi/2009-11-02/</id>
    <type>partial</type>
    <target><url>http://example.com/releases/2009-11-02/</url></target>
  </purl>
</purls>`

func TestParseExport(t *testing.T) {
	entries, err := ParseExport("OBI", strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ParseExport() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	// Path entries first, then prefixes from longest to shortest id
	if entries[0].Kind != ast.RuleTypePath || entries[0].ID != "/obo/obi/consortium/" {
		t.Errorf("entries[0] = %+v, want the 302 purl", entries[0])
	}
	if entries[1].ID != "/obo/obi/2009-11-02/" {
		t.Errorf("entries[1].ID = %q, want the longest prefix", entries[1].ID)
	}
	if entries[2].ID != "/obo/obi/branches/" {
		t.Errorf("entries[2].ID = %q, want the shorter prefix", entries[2].ID)
	}
	if entries[2].Kind != ast.RuleTypePrefix {
		t.Errorf("entries[2].Kind = %q, want prefix", entries[2].Kind)
	}
}

func TestParseExport_KeepsFullIDs(t *testing.T) {
	entries, err := ParseExport("OBI", strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ParseExport() failed: %v", err)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.ID, "/obo/obi/") {
			t.Errorf("ID = %q, want the full PURL path preserved", entry.ID)
		}
	}
}

func TestParseExport_IDCheckIsCaseInsensitive(t *testing.T) {
	xml := `<purls><purl>
    <id>/OBO/OBI/Tracker</id>
    <type>302</type>
    <target><url>http://example.com/tracker</url></target>
  </purl></purls>`

	entries, err := ParseExport("obi", strings.NewReader(xml))
	if err != nil {
		t.Fatalf("ParseExport() failed: %v", err)
	}
	if entries[0].ID != "/OBO/OBI/Tracker" {
		t.Errorf("ID = %q, want the original spelling kept", entries[0].ID)
	}
}

func TestParseExport_Failures(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "id outside base url",
			xml:  `<purls><purl><id>/obo/chebi/x</id><type>302</type><target><url>http://example.com/</url></target></purl></purls>`,
			want: "does not begin with base_url",
		},
		{
			name: "missing id",
			xml:  `<purls><purl><type>302</type><target><url>http://example.com/</url></target></purl></purls>`,
			want: "No <id>",
		},
		{
			name: "missing url",
			xml:  `<purls><purl><id>/obo/obi/x</id><type>302</type></purl></purls>`,
			want: "No <url>",
		},
		{
			name: "relative url",
			xml:  `<purls><purl><id>/obo/obi/x</id><type>302</type><target><url>ftp.example.com/x</url></target></purl></purls>`,
			want: "not an absolute HTTP or FTP URL",
		},
		{
			name: "missing type",
			xml:  `<purls><purl><id>/obo/obi/x</id><target><url>http://example.com/</url></target></purl></purls>`,
			want: "No <type>",
		},
		{
			name: "unknown type",
			xml:  `<purls><purl><id>/obo/obi/x</id><type>301</type><target><url>http://example.com/</url></target></purl></purls>`,
			want: "Unknown type",
		},
		{
			name: "empty id",
			xml:  `<purls><purl><id>  </id><type>302</type><target><url>http://example.com/</url></target></purl></purls>`,
			want: "Empty <id>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExport("OBI", strings.NewReader(tt.xml))
			if err == nil {
				t.Fatal("ParseExport() should fail")
			}
			if !errors.IsKind(err, errors.KindBadEntry) {
				t.Errorf("error = %v, want bad_entry", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseExport_NoEntries(t *testing.T) {
	_, err := ParseExport("OBI", strings.NewReader("<purls></purls>"))
	if err == nil {
		t.Fatal("ParseExport() should fail on an empty export")
	}
	if !errors.IsKind(err, errors.KindNoEntries) {
		t.Errorf("error = %v, want no_entries", err)
	}
}

func TestParseExport_MalformedXML(t *testing.T) {
	_, err := ParseExport("OBI", strings.NewReader("<purls><purl></purls>"))
	if err == nil {
		t.Fatal("ParseExport() should fail on malformed XML")
	}
	if !errors.IsKind(err, errors.KindSyntax) {
		t.Errorf("error = %v, want syntax", err)
	}
}

func TestMigrate_RendersDocument(t *testing.T) {
	got, err := Migrate("obi", strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	for _, want := range []string{
		"# PURL configuration for http://purl.obolibrary.org/obo/obi\n",
		"idspace: OBI\n",
		"base_url: /obo/obi\n",
		"- obi.owl: TODO\n",
		"- term_browser: ontobee\n",
		"- path: /obo/obi/consortium/\n  replacement: http://obi-ontology.org/page/Consortium\n",
		"- prefix: /obo/obi/branches/\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Migrate() output missing %q:\n%s", want, got)
		}
	}
}

func TestMigrate_OutputParsesCleanly(t *testing.T) {
	got, err := Migrate("OBI", strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	doc, err := parser.NewParser().ParseBytes([]byte(got), "obi.yml")
	if err != nil {
		t.Fatalf("generated document does not parse: %v\n%s", err, got)
	}

	// The three migrated entries plus the term_browser rule
	if doc.RuleCount() != 4 {
		t.Errorf("RuleCount() = %d, want 4", doc.RuleCount())
	}
	if doc.Idspace != "OBI" {
		t.Errorf("Idspace = %q, want OBI", doc.Idspace)
	}
}

func TestMigrate_EmptyExport(t *testing.T) {
	_, err := Migrate("OBI", strings.NewReader("<purls/>"))
	if err == nil {
		t.Fatal("Migrate() should fail on an export with no purls")
	}
	if !errors.IsKind(err, errors.KindNoEntries) {
		t.Errorf("error = %v, want no_entries", err)
	}
}
