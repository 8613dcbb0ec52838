package domain

import "context"

// Contact endpoint messages and defaults. Centralized so handlers and tests
// reference the same literals.
const (
	MsgContactSent     = "Email sent successfully!"
	ErrContactRequired = "Name, email, and message are required."
	ErrContactFailed   = "Failed to send email."

	// DefaultCompany is substituted when the submitter leaves company blank.
	DefaultCompany = "Not provided"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
