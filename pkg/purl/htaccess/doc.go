// Package htaccess assembles compiled redirect directives into Apache
// .htaccess file content.
//
// The driver walks a parsed rule document in order, compiles every rule for
// the requested mode, and joins the surviving directives under a
// mode-specific header. Document order is the contract: Apache applies the
// first matching directive, so rule authors order their documents from most
// to least specific and the driver must not reorder them.
//
// Generation is all-or-nothing. The first rule that fails validation aborts
// the run with that rule's error; no partial output is returned.
package htaccess
