// Package contact implements the contact-form endpoint: it validates,
// sanitizes and rate-limits submissions, then relays each one as a single
// HTML email to the configured inbox with reply-to set to the submitter.
//
// Submissions are transient; nothing is persisted and failed sends are not
// retried. Duplicate submissions produce duplicate emails.
package contact
