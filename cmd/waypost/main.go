// Waypost compiles declarative PURL redirect rules into Apache
// RedirectMatch directives.
//
// OBO Foundry ontology projects describe their persistent URLs in
// per-namespace YAML documents (purl_rules). Waypost turns those
// documents into the .htaccess files served by the PURL host, lints
// them, migrates legacy PURL.org XML exports, and verifies deployed
// redirects against the tests embedded in the rules.
//
// Usage:
//
//	# Compile the project-level rules for an ontology
//	waypost translate project config/obi.yml www/obo/obi/.htaccess
//
//	# Compile the top-level rules
//	waypost translate top config/obi.yml www/obo/obi.htaccess
//
//	# Validate rule documents
//	waypost lint --dir config/
//
//	# Convert a PURL.org XML export
//	waypost migrate OBI obi-export.xml config/obi.yml
//
//	# Check deployed redirects
//	waypost verify --server https://purl.obolibrary.org --file config/obi.yml
//
//	# Keep an .htaccess file in sync while editing
//	waypost watch project config/obi.yml www/obo/obi/.htaccess
package main

func main() {
	Execute()
}
