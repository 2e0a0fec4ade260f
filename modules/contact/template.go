package contact

import (
	"html/template"
	"strings"
	"time"
)

// bodyTemplate renders the notification email. Field values are inserted as
// template.HTML because the sanitizer has already escaped them; escaping
// again would display entities literally.
var bodyTemplate = template.Must(template.New("contact_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222; max-width: 600px;">
	<h2 style="border-bottom: 1px solid #ddd; padding-bottom: 8px;">New contact form submission</h2>
	<p><strong>Name:</strong> {{.Name}}</p>
	<p><strong>Email:</strong> {{.Email}}</p>
	<p><strong>Message:</strong></p>
	<blockquote style="border-left: 3px solid #ddd; margin: 0; padding: 4px 12px; color: #444;">{{.Message}}</blockquote>
	<p style="color: #999; font-size: 12px; margin-top: 24px;">Submission {{.SubmissionID}} received at {{.ReceivedAt}}</p>
</body>
</html>
`))

type templateData struct {
	Name         template.HTML
	Email        template.HTML
	Message      template.HTML
	SubmissionID string
	ReceivedAt   string
}

// renderBody produces the HTML email body for an already sanitized
// submission.
func renderBody(s Submission, submissionID string, receivedAt time.Time) (string, error) {
	data := templateData{
		Name:         template.HTML(s.Name),
		Email:        template.HTML(s.Email),
		Message:      template.HTML(nl2br(s.Message)),
		SubmissionID: submissionID,
		ReceivedAt:   receivedAt.UTC().Format(time.RFC3339),
	}

	var sb strings.Builder
	if err := bodyTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// nl2br preserves line breaks from the plain-text message in the HTML body.
func nl2br(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
