// Package email renders and dispatches notification emails over SMTP.
package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	"go-veloce-backend/config"
)

// Attachment is an optional file carried by a Message.
type Attachment struct {
	Filename    string
	ContentType string // full value, e.g. `text/calendar; charset=UTF-8; method=REQUEST`
	Content     []byte
}

// Message is a fully constructed outbound email. It is built per request and
// never reused after Send.
type Message struct {
	To         []string
	Cc         []string
	ReplyTo    string
	Subject    string
	Text       string
	HTML       string
	Attachment *Attachment
}

// Recipients returns the SMTP envelope recipients (To plus Cc).
func (m *Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	return out
}

// Bytes renders the full MIME payload with the given From header.
// Messages with an attachment become multipart/mixed; messages carrying both
// text and HTML renderings become multipart/alternative.
func (m *Message) Bytes(from string) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}

	writeHeader("From", from)
	writeHeader("To", strings.Join(m.To, ", "))
	if len(m.Cc) > 0 {
		writeHeader("Cc", strings.Join(m.Cc, ", "))
	}
	if m.ReplyTo != "" {
		writeHeader("Reply-To", m.ReplyTo)
	}
	writeHeader("Subject", m.Subject)
	writeHeader("MIME-Version", "1.0")

	bodyType, bodyContent, err := m.renderBody()
	if err != nil {
		return nil, err
	}

	if m.Attachment == nil {
		writeHeader("Content-Type", bodyType)
		buf.WriteString("\r\n")
		buf.Write(bodyContent)
		return buf.Bytes(), nil
	}

	mixed := multipart.NewWriter(&buf)
	writeHeader("Content-Type", `multipart/mixed; boundary="`+mixed.Boundary()+`"`)
	buf.WriteString("\r\n")

	body, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {bodyType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create body part: %w", err)
	}
	if _, err := body.Write(bodyContent); err != nil {
		return nil, err
	}

	att, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {m.Attachment.ContentType},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", m.Attachment.Filename)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment part: %w", err)
	}
	if err := writeBase64(att, m.Attachment.Content); err != nil {
		return nil, err
	}

	if err := mixed.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderBody produces the body's Content-Type header value and its content.
func (m *Message) renderBody() (string, []byte, error) {
	if m.Text == "" || m.HTML == "" {
		if m.HTML != "" {
			return "text/html; charset=UTF-8", []byte(m.HTML), nil
		}
		return "text/plain; charset=UTF-8", []byte(m.Text), nil
	}

	var nested bytes.Buffer
	alt := multipart.NewWriter(&nested)

	text, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return "", nil, err
	}
	if _, err := text.Write([]byte(m.Text)); err != nil {
		return "", nil, err
	}

	html, err := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return "", nil, err
	}
	if _, err := html.Write([]byte(m.HTML)); err != nil {
		return "", nil, err
	}

	if err := alt.Close(); err != nil {
		return "", nil, err
	}

	contentType := `multipart/alternative; boundary="` + alt.Boundary() + `"`
	return contentType, nested.Bytes(), nil
}

// writeBase64 encodes content as wrapped base64 lines.
func writeBase64(w io.Writer, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 0 {
		n := 76
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := io.WriteString(w, encoded[:n]+"\r\n"); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}

// Sender dispatches a single message synchronously. Production uses
// SMTPSender; tests substitute an in-memory implementation.
type Sender interface {
	Send(msg *Message) error
}

// SMTPSender delivers messages through an authenticated SMTP relay.
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewSMTPSender creates an SMTP sender from the loaded configuration.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.FromEmail,
	}
}

// From returns the configured outbound address.
func (s *SMTPSender) From() string {
	return s.fromEmail
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Send renders the message and delivers it in one blocking SMTP exchange.
func (s *SMTPSender) Send(msg *Message) error {
	payload, err := msg.Bytes(s.fromEmail)
	if err != nil {
		return fmt.Errorf("failed to build email message: %w", err)
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.fromEmail, msg.Recipients(), payload); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
