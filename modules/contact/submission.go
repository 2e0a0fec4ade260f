package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/mailform/pkg/sanitizer"
)

// Submission is one contact-form post. It exists only for the duration of
// the request and is discarded after the email is sent or the request fails.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Honeypot string `json:"_hp,omitempty"` // hidden field, non-empty means a bot filled the form
}

// emailShapeRegex accepts the basic local@domain.tld shape. Anything
// stricter belongs to the mail relay.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the raw submission and returns the client error code to
// respond with, or empty when the submission is acceptable. A filled
// honeypot reports the same 400 shape as other validation failures so bots
// get no signal they were detected.
func (s Submission) Validate() string {
	if s.Honeypot != "" {
		return CodeSpam
	}
	if strings.TrimSpace(s.Name) == "" ||
		strings.TrimSpace(s.Email) == "" ||
		strings.TrimSpace(s.Message) == "" {
		return CodeMissingFields
	}
	email := strings.TrimSpace(s.Email)
	// Length is part of the shape check: an address past the bound would be
	// truncated during sanitizing and no longer be a deliverable reply-to.
	if !emailShapeRegex.MatchString(email) || utf8.RuneCountInString(email) > maxEmailLen {
		return CodeInvalidEmail
	}
	return ""
}

// Sanitized returns a copy with every field cleaned and bounded, safe for
// embedding in an HTML email body.
func (s Submission) Sanitized() Submission {
	return Submission{
		Name:    sanitizer.CleanText(s.Name, maxNameLen),
		Email:   sanitizer.CleanText(s.Email, maxEmailLen),
		Message: sanitizer.CleanText(s.Message, maxMessageLen),
	}
}
