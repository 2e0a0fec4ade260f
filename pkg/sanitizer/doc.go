// Package sanitizer provides pure string cleaning functions for untrusted
// form input.
//
// Functions never fail: every input, including the empty string, maps to a
// string. CleanText combines the individual steps into the transformation
// applied to contact-form fields before they are embedded in an HTML email
// body.
package sanitizer
