package mailer

import (
	"context"
	"errors"

	"github.com/wneessen/go-mail"
)

type smtpSender struct {
	config Config
}

// NewSMTPSender creates an SMTP-backed sender.
// The configuration is validated up front so a misconfigured deployment is
// detected at startup, not on the first submission.
func NewSMTPSender(cfg Config) (Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &smtpSender{config: cfg}, nil
}

// Send dispatches one message through the configured relay. The connection
// is dialed per message; the service's volume is a handful of contact-form
// submissions, not a campaign pipeline. All transport detail is folded into
// ErrFailedToSend.
func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := mail.NewMsg()
	if err := m.From(s.config.SenderEmail); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if err := m.To(msg.To); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return errors.Join(ErrFailedToSend, err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.BodyHTML)

	opts := []mail.Option{
		mail.WithPort(s.config.SMTPPort),
		mail.WithTimeout(s.config.SMTPTimeout),
	}
	if s.config.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.SMTPUser),
			mail.WithPassword(s.config.SMTPPass),
		)
	}
	if s.config.UseSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(s.config.SMTPHost, opts...)
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}
