package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// Send blocks on network I/O and honors ctx cancellation.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ContactConfirmEmailData holds data for the contact confirmation email.
type ContactConfirmEmailData struct {
	Email           string
	FirstName       string
	LastName        string
	ConfirmationURL string
	ExpiresInDays   int
}

// ContactNoticeEmailData holds data for the operator notice sent after a
// contact message is confirmed.
type ContactNoticeEmailData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Details   string
}

// ParticipationEmailData holds data for all participation-flow emails.
type ParticipationEmailData struct {
	FirstName       string
	LastName        string
	Email           string
	EventTitle      string
	EventDate       string
	EventStatus     string
	ConfirmationURL string
	ExpiresInHours  int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendContactConfirmation(ctx context.Context, data *ContactConfirmEmailData) error
	SendContactNotice(ctx context.Context, data *ContactNoticeEmailData) error
	SendParticipationConfirmation(ctx context.Context, data *ParticipationEmailData) error
	SendParticipationNotice(ctx context.Context, data *ParticipationEmailData) error
	SendParticipationConfirmed(ctx context.Context, data *ParticipationEmailData) error
	SendParticipationConfirmedNotice(ctx context.Context, data *ParticipationEmailData) error
}
