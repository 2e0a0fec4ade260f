package mailer

import (
	"fmt"
	"time"
)

// Config holds SMTP relay configuration. SenderEmail and ReceiverEmail
// establish the fixed sender identity and destination inbox for all
// outbound messages.
type Config struct {
	SMTPHost      string        `env:"SMTP_HOST"`
	SMTPPort      int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string        `env:"SMTP_USER"`
	SMTPPass      string        `env:"SMTP_PASS"`
	SMTPTimeout   time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
	UseSSL        bool          `env:"SMTP_SSL" envDefault:"false"` // implicit TLS (port 465); STARTTLS is used otherwise
	SenderEmail   string        `env:"SENDER_EMAIL"`
	ReceiverEmail string        `env:"RECEIVER_EMAIL"`
	DevDir        string        `env:"MAILER_DEV_DIR"` // when set, messages are written to this directory instead of sent
}

// Validate reports whether the configuration is complete enough to build an
// SMTP sender.
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("%w: SMTPPort %d is out of range", ErrInvalidConfig, c.SMTPPort)
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(c.SenderEmail) {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if c.ReceiverEmail == "" {
		return fmt.Errorf("%w: ReceiverEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(c.ReceiverEmail) {
		return fmt.Errorf("%w: ReceiverEmail must be a valid email address", ErrInvalidConfig)
	}
	return nil
}
