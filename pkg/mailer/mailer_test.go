package mailer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/mailer"
)

func validConfig() mailer.Config {
	return mailer.Config{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      587,
		SMTPUser:      "relay",
		SMTPPass:      "secret",
		SMTPTimeout:   30 * time.Second,
		SenderEmail:   "noreply@example.com",
		ReceiverEmail: "inbox@example.com",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*mailer.Config)
		wantErr bool
	}{
		{"complete config", func(c *mailer.Config) {}, false},
		{"missing host", func(c *mailer.Config) { c.SMTPHost = "" }, true},
		{"port out of range", func(c *mailer.Config) { c.SMTPPort = 70000 }, true},
		{"missing sender", func(c *mailer.Config) { c.SenderEmail = "" }, true},
		{"malformed sender", func(c *mailer.Config) { c.SenderEmail = "not-an-email" }, true},
		{"missing receiver", func(c *mailer.Config) { c.ReceiverEmail = "" }, true},
		{"malformed receiver", func(c *mailer.Config) { c.ReceiverEmail = "x@y" }, true},
		{"anonymous relay allowed", func(c *mailer.Config) { c.SMTPUser, c.SMTPPass = "", "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		sender, err := mailer.NewSMTPSender(validConfig())
		require.NoError(t, err)
		assert.NotNil(t, sender)
	})

	t.Run("incomplete config fails construction", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.SMTPHost = ""
		_, err := mailer.NewSMTPSender(cfg)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	valid := mailer.Message{
		To:       "inbox@example.com",
		ReplyTo:  "visitor@example.org",
		Subject:  "New contact form submission",
		BodyHTML: "<p>hello</p>",
	}

	t.Run("valid message", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid.Validate())
	})

	t.Run("reply-to optional", func(t *testing.T) {
		t.Parallel()

		msg := valid
		msg.ReplyTo = ""
		assert.NoError(t, msg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*mailer.Message)
	}{
		{"missing to", func(m *mailer.Message) { m.To = "" }},
		{"malformed to", func(m *mailer.Message) { m.To = "nope" }},
		{"malformed reply-to", func(m *mailer.Message) { m.ReplyTo = "spaces in@addr.com x" }},
		{"missing subject", func(m *mailer.Message) { m.Subject = "" }},
		{"missing body", func(m *mailer.Message) { m.BodyHTML = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := valid
			tt.mutate(&msg)
			assert.ErrorIs(t, msg.Validate(), mailer.ErrInvalidMessage)
		})
	}
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	t.Run("writes html and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sender := mailer.NewDevSender(dir)

		msg := mailer.Message{
			To:       "inbox@example.com",
			ReplyTo:  "visitor@example.org",
			Subject:  "New Contact Form Submission",
			BodyHTML: "<p>hi there</p>",
		}
		require.NoError(t, sender.Send(context.Background(), msg))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = filepath.Join(dir, e.Name())
			case ".json":
				jsonFile = filepath.Join(dir, e.Name())
			}
		}
		require.NotEmpty(t, htmlFile)
		require.NotEmpty(t, jsonFile)

		body, err := os.ReadFile(htmlFile)
		require.NoError(t, err)
		assert.Equal(t, "<p>hi there</p>", string(body))

		raw, err := os.ReadFile(jsonFile)
		require.NoError(t, err)
		var meta map[string]any
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "inbox@example.com", meta["to"])
		assert.Equal(t, "visitor@example.org", meta["reply_to"])

		assert.True(t, strings.HasSuffix(filepath.Base(htmlFile), "new_contact_form_submission.html"))
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		t.Parallel()

		sender := mailer.NewDevSender(t.TempDir())
		err := sender.Send(context.Background(), mailer.Message{})
		assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
	})
}
