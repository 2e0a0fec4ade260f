// Package mailer sends transactional email over SMTP.
//
// The Sender interface has a single operation, Send, dispatching one HTML
// message. NewSMTPSender builds the production implementation from
// environment configuration; incomplete configuration is a construction
// error so the caller can run in a degraded mode instead of crashing.
// NewDevSender writes messages to disk for local development.
//
// Transport failures are folded into ErrFailedToSend: callers never see
// network, auth or relay detail.
package mailer
