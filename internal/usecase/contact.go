package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go-veloce-backend/internal/domain"
	"go-veloce-backend/pkg/apperror"
	"go-veloce-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender     email.Sender
	validate   *validator.Validate
	adminEmail string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validator.Validate, adminEmail string) domain.ContactUsecase {
	return &contactUsecase{
		sender:     sender,
		validate:   validate,
		adminEmail: adminEmail,
	}
}

// contactEmailTemplate is the HTML body for contact notifications
const contactEmailTemplate = `<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Message:</strong></p>
<p>{{.MessageHTML}}</p>
`

type contactEmailData struct {
	Name        string
	Email       string
	Company     string
	MessageHTML template.HTML
}

// SendContactMessage validates the contact request and sends the notification
// email to the admin address with reply-to set to the submitter.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return err
	}

	name := strings.TrimSpace(req.Name)
	senderEmail := strings.TrimSpace(req.Email)
	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = domain.DefaultCompany
	}
	message := strings.TrimSpace(req.Message)

	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var htmlBody bytes.Buffer
	data := contactEmailData{
		Name:    name,
		Email:   senderEmail,
		Company: company,
		// Escape first, then honor the submitter's line breaks
		MessageHTML: template.HTML(strings.ReplaceAll(template.HTMLEscapeString(message), "\n", "<br>")),
	}
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	textBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nCompany: %s\nMessage: %s\n",
		name, senderEmail, company, message,
	)

	msg := &email.Message{
		To:      []string{uc.adminEmail},
		ReplyTo: senderEmail, // allow replying directly to the submitter
		Subject: fmt.Sprintf("New Contact Form Submission from %s", name),
		Text:    textBody,
		HTML:    htmlBody.String(),
	}

	if err := uc.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

// validateRequest enforces the required fields; whitespace-only values count
// as missing. No email is attempted on failure.
func (uc *contactUsecase) validateRequest(req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return apperror.BadRequest(domain.ErrContactRequired)
	}
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return apperror.BadRequest(domain.ErrContactRequired)
	}
	return nil
}
