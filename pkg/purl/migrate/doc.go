// Package migrate converts legacy PURL.org XML exports into PURL rule
// documents.
//
// PURL.org served the OBO namespaces before they moved to self-hosted rule
// documents. Its export format wraps each redirect in a <purl> element:
//
//	<purl status="1">
//	  <id>/obo/obi/branches/</id>
//	  <type>partial</type>
//	  <maintainers><uid>ALANRUTTENBERG</uid></maintainers>
//	  <target>
//	    <url>http://obi.svn.sourceforge.net/svnroot/obi/trunk/src/ontology/branches/</url>
//	  </target>
//	</purl>
//
// Type "302" becomes a path rule, type "partial" a prefix rule. To keep
// PURL.org's matching behavior, path rules are emitted first, then prefix
// rules from longest to shortest id, so more specific prefixes win.
//
// The output is a starting point, not a finished document: product and
// example-term placeholders are marked TODO and need manual attention
// before the document is deployed.
package migrate
