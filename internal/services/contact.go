package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"credinta/internal/domain"
)

type contactService struct {
	contactRepo  domain.ContactRepository
	emailService domain.EmailService
	siteURL      string
	confirmTTL   time.Duration
}

// NewContactService creates a ContactService. confirmTTL bounds how long a
// pending submission can wait for its email confirmation.
func NewContactService(contactRepo domain.ContactRepository, emailService domain.EmailService, siteURL string, confirmTTL time.Duration) domain.ContactService {
	return &contactService{
		contactRepo:  contactRepo,
		emailService: emailService,
		siteURL:      siteURL,
		confirmTTL:   confirmTTL,
	}
}

func (s *contactService) Submit(ctx context.Context, sub *domain.ContactSubmission) error {
	if sub.FirstName == "" || sub.LastName == "" || sub.Email == "" || sub.Phone == "" || sub.Details == "" {
		return fmt.Errorf("all fields are required")
	}
	email := strings.TrimSpace(strings.ToLower(sub.Email))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	token, err := generateConfirmationToken()
	if err != nil {
		return err
	}
	now := time.Now()
	pending := &domain.ContactConfirmation{
		Token:     token,
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     email,
		Phone:     sub.Phone,
		Details:   sub.Details,
		ExpiresAt: now.Add(s.confirmTTL),
		CreatedAt: now,
	}
	if err := s.contactRepo.CreatePending(ctx, pending); err != nil {
		return fmt.Errorf("create pending confirmation: %w", err)
	}

	data := &domain.ContactConfirmEmailData{
		Email:           email,
		FirstName:       sub.FirstName,
		LastName:        sub.LastName,
		ConfirmationURL: fmt.Sprintf("%s/confirm-email?token=%s", s.siteURL, token),
		ExpiresInDays:   int(s.confirmTTL.Hours() / 24),
	}
	if err := s.emailService.SendContactConfirmation(ctx, data); err != nil {
		// Issuance and notification are one unit: a token the sender was
		// never told about must not stay pending.
		if delErr := s.contactRepo.DeletePending(ctx, token); delErr != nil {
			log.Printf("[CONTACT] failed to roll back pending confirmation: %v", delErr)
		}
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

func (s *contactService) Confirm(ctx context.Context, token string) (*domain.ContactMessage, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	msg, err := s.contactRepo.Confirm(ctx, token, time.Now())
	if err != nil {
		return nil, err
	}

	// The confirmation is committed; the operator notice is best effort.
	data := &domain.ContactNoticeEmailData{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Details:   msg.TextArea,
	}
	if err := s.emailService.SendContactNotice(ctx, data); err != nil {
		log.Printf("[CONTACT] confirmed message %d but operator notice failed: %v", msg.ID, err)
	}
	return msg, nil
}
