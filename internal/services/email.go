package services

import (
	"context"
	"fmt"
	"log"

	"credinta/internal/domain"
)

type emailService struct {
	mailer        domain.Mailer
	renderer      domain.EmailTemplateRenderer
	operatorEmail string
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. Operator notices go to operatorEmail.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, operatorEmail string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, operatorEmail: operatorEmail}
}

func (s *emailService) send(ctx context.Context, templateName, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	log.Printf("[EMAIL] %s email sent to %s", templateName, to)
	return nil
}

func (s *emailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmEmailData) error {
	if data == nil {
		return fmt.Errorf("contact confirmation data is nil")
	}
	return s.send(ctx, "contact_confirm", data.Email, data)
}

func (s *emailService) SendContactNotice(ctx context.Context, data *domain.ContactNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("contact notice data is nil")
	}
	return s.send(ctx, "contact_notice", s.operatorEmail, data)
}

func (s *emailService) SendParticipationConfirmation(ctx context.Context, data *domain.ParticipationEmailData) error {
	if data == nil {
		return fmt.Errorf("participation confirmation data is nil")
	}
	return s.send(ctx, "participation_confirm", data.Email, data)
}

func (s *emailService) SendParticipationNotice(ctx context.Context, data *domain.ParticipationEmailData) error {
	if data == nil {
		return fmt.Errorf("participation notice data is nil")
	}
	return s.send(ctx, "participation_notice", s.operatorEmail, data)
}

func (s *emailService) SendParticipationConfirmed(ctx context.Context, data *domain.ParticipationEmailData) error {
	if data == nil {
		return fmt.Errorf("participation confirmed data is nil")
	}
	return s.send(ctx, "participation_confirmed", data.Email, data)
}

func (s *emailService) SendParticipationConfirmedNotice(ctx context.Context, data *domain.ParticipationEmailData) error {
	if data == nil {
		return fmt.Errorf("participation confirmed notice data is nil")
	}
	return s.send(ctx, "participation_confirmed_notice", s.operatorEmail, data)
}
