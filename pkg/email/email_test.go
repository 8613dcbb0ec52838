package email_test

import (
	"encoding/base64"
	"testing"

	"go-veloce-backend/pkg/email"

	"github.com/stretchr/testify/assert"
)

func TestMessageRecipients(t *testing.T) {
	msg := &email.Message{
		To: []string{"admin@veloce-technology.com"},
		Cc: []string{"jane@x.com"},
	}
	assert.Equal(t, []string{"admin@veloce-technology.com", "jane@x.com"}, msg.Recipients())
}

func TestMessageBytesHeaders(t *testing.T) {
	msg := &email.Message{
		To:      []string{"admin@veloce-technology.com"},
		ReplyTo: "jane@x.com",
		Subject: "New Contact Form Submission from Jane",
		HTML:    "<p>hello</p>",
	}

	payload, err := msg.Bytes("noreply@veloce-technology.com")
	assert.NoError(t, err)

	raw := string(payload)
	assert.Contains(t, raw, "From: noreply@veloce-technology.com\r\n")
	assert.Contains(t, raw, "To: admin@veloce-technology.com\r\n")
	assert.Contains(t, raw, "Reply-To: jane@x.com\r\n")
	assert.Contains(t, raw, "Subject: New Contact Form Submission from Jane\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "<p>hello</p>")
	assert.NotContains(t, raw, "Cc:")
}

func TestMessageBytesAlternative(t *testing.T) {
	msg := &email.Message{
		To:      []string{"admin@veloce-technology.com"},
		Subject: "x",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	}

	payload, err := msg.Bytes("noreply@veloce-technology.com")
	assert.NoError(t, err)

	raw := string(payload)
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "plain body")
	assert.Contains(t, raw, "<p>html body</p>")
}

func TestMessageBytesWithAttachment(t *testing.T) {
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR")
	msg := &email.Message{
		To:      []string{"admin@veloce-technology.com"},
		Cc:      []string{"jane@x.com"},
		Subject: "New Meeting Request: Jane",
		Text:    "meeting request",
		HTML:    "<p>meeting request</p>",
		Attachment: &email.Attachment{
			Filename:    "meeting.ics",
			ContentType: "text/calendar; charset=UTF-8; method=REQUEST",
			Content:     ics,
		},
	}

	payload, err := msg.Bytes("noreply@veloce-technology.com")
	assert.NoError(t, err)

	raw := string(payload)
	assert.Contains(t, raw, "Cc: jane@x.com\r\n")
	assert.Contains(t, raw, "multipart/mixed")
	assert.Contains(t, raw, "text/calendar; charset=UTF-8; method=REQUEST")
	assert.Contains(t, raw, `attachment; filename="meeting.ics"`)
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(ics))
}

func TestSMTPSenderConfigured(t *testing.T) {
	s := email.NewSMTPSender(testConfig("user@gmail.com", "app-password"))
	assert.True(t, s.IsConfigured())
	assert.Equal(t, "user@gmail.com", s.From())

	s = email.NewSMTPSender(testConfig("", ""))
	assert.False(t, s.IsConfigured())
}
