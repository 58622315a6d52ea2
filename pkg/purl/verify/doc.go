// Package verify checks a rule document's redirect tests against a live
// server.
//
// Rules can carry a tests list of from/to pairs. Verification requests
// every from path on the target server with automatic redirects disabled
// and compares the first hop against the rule: the response status must be
// the rule's redirect status and the Location header must equal the
// expected to URL. This catches deployments where the generated .htaccess
// files drifted from the rule documents, and rule edits whose real-world
// effect differs from the author's intent.
//
// Checks run sequentially in document order. PURL servers are small
// community machines; verification is a correctness probe, not a load
// test.
package verify
