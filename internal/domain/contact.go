package domain

import (
	"context"
	"time"
)

// ContactMessage is a confirmed contact-form submission.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	TextArea  string    `json:"text_area"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactConfirmation is a pending contact submission awaiting the sender's
// email confirmation. Keyed by its single-use token; rows past ExpiresAt
// are dead regardless of the token.
type ContactConfirmation struct {
	Token     string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Details   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ContactRepository stores pending contact confirmations and materializes
// confirmed messages.
type ContactRepository interface {
	CreatePending(ctx context.Context, c *ContactConfirmation) error
	// DeletePending removes a pending confirmation, e.g. to roll back an
	// issuance whose notification email could not be sent.
	DeletePending(ctx context.Context, token string) error
	// Confirm consumes the token and inserts the contact message in one
	// transaction. Exactly one concurrent caller can win the consume.
	// Returns ErrNotFound for unknown tokens and ErrExpired for dead ones
	// (the expired row is purged as part of the same transaction).
	Confirm(ctx context.Context, token string, now time.Time) (*ContactMessage, error)
}

// ContactSubmission is the payload of a contact-form submission.
type ContactSubmission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Details   string
}

// ContactService runs the double-opt-in contact flow.
type ContactService interface {
	// Submit stores a pending confirmation and emails the sender a
	// confirmation link. Issuance and notification are one logical unit:
	// if the email cannot be sent, the pending row is rolled back.
	Submit(ctx context.Context, sub *ContactSubmission) error
	// Confirm consumes the token, persists the message, and notifies the
	// operator (best effort, after commit).
	Confirm(ctx context.Context, token string) (*ContactMessage, error)
}
