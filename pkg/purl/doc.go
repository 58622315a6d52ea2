// Package purl provides parsing, validation, and translation for PURL
// (persistent URL) redirect rule documents.
//
// A rule document is a YAML file declaring, under a purl_rules key, how
// requests below a namespace's base URL redirect to real resource
// locations. Translation turns the document into Apache mod_alias
// RedirectMatch directives, one .htaccess output per processing mode.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: Abstract Syntax Tree definitions for parsed rule documents
// - parser: YAML parsing and AST construction
// - compiler: rule validation and directive generation, one rule at a time
// - htaccess: document-level driver assembling .htaccess file content
// - errors: rich error types with location, rule, and suggestions
// - migrate: conversion of legacy PURL.org XML exports to rule documents
// - verify: checking deployed redirects against a document's test cases
//
// # Basic Usage
//
// Parse and validate a rule document:
//
//	doc, err := purl.ParseAndCheck("config/obi.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Rules:", doc.RuleCount())
//
// Translate a document into .htaccess content:
//
//	content, err := purl.Translate(compiler.ModeProject, "config/obi.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("obi/.htaccess", []byte(content), 0o644)
//
// This top-level package is a thin convenience layer; callers that need
// parser options or per-rule compilation use the subpackages directly.
package purl
