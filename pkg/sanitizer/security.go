package sanitizer

import (
	"html"
	"regexp"
)

var (
	scriptTagRegex = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)
	eventAttrRegex = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtoRegex   = regexp.MustCompile(`(?i)javascript\s*:`)
)

// EscapeHTML escapes HTML special characters to prevent XSS attacks.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRegex.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes JavaScript event handlers and
// javascript: protocols from HTML attributes.
func RemoveJavaScriptEvents(s string) string {
	s = eventAttrRegex.ReplaceAllString(s, "")
	return jsProtoRegex.ReplaceAllString(s, "")
}

// NeutralizeHTML strips executable markup and escapes what remains.
// The output cannot execute when embedded in an HTML document.
func NeutralizeHTML(s string) string {
	s = StripScriptTags(s)
	s = RemoveJavaScriptEvents(s)
	return EscapeHTML(s)
}

// CleanText applies the full cleaning pipeline for a free-text form field:
// whitespace trim, control character removal, HTML neutralization and
// truncation to maxLen runes. Empty input yields an empty string.
func CleanText(s string, maxLen int) string {
	s = Trim(s)
	if s == "" {
		return ""
	}
	s = RemoveControlChars(s)
	s = NeutralizeHTML(s)
	return MaxLength(s, maxLen)
}
