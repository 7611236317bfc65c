package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"credinta/internal/domain"
	"credinta/internal/lifecycle"
)

// Advisory reasons surfaced to the end user by the participation preflight.
const (
	reasonAlreadyConfirmed = "Ești deja înregistrat și confirmat pentru acest eveniment."
	reasonPendingExists    = "Ai deja o înscriere în așteptare. Verifică email-ul pentru confirmare."
)

type participationService struct {
	participantRepo domain.EventParticipantRepository
	postRepo        domain.PostRepository
	emailService    domain.EmailService
	classifier      lifecycle.Classifier
	siteURL         string
	confirmTTL      time.Duration
}

// NewParticipationService creates a ParticipationService. Registrations are
// only accepted for published project posts still classified as future.
func NewParticipationService(
	participantRepo domain.EventParticipantRepository,
	postRepo domain.PostRepository,
	emailService domain.EmailService,
	classifier lifecycle.Classifier,
	siteURL string,
	confirmTTL time.Duration,
) domain.ParticipationService {
	return &participationService{
		participantRepo: participantRepo,
		postRepo:        postRepo,
		emailService:    emailService,
		classifier:      classifier,
		siteURL:         siteURL,
		confirmTTL:      confirmTTL,
	}
}

func (s *participationService) CanParticipate(ctx context.Context, eventID, email string) (*domain.ParticipationCheck, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	existing, err := s.participantRepo.GetByEventAndEmail(ctx, eventID, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ParticipationCheck{Allowed: true}, nil
		}
		return nil, fmt.Errorf("get participant: %w", err)
	}

	if existing.EmailConfirmed {
		return &domain.ParticipationCheck{Allowed: false, Reason: reasonAlreadyConfirmed}, nil
	}

	// A pending registration whose token already expired is dead weight:
	// purge it and let the user retry.
	if existing.ExpiresAt != nil && time.Now().After(*existing.ExpiresAt) {
		if err := s.participantRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("delete expired registration: %w", err)
		}
		return &domain.ParticipationCheck{Allowed: true}, nil
	}

	return &domain.ParticipationCheck{Allowed: false, Reason: reasonPendingExists}, nil
}

func (s *participationService) Register(ctx context.Context, eventID, firstName, lastName, email string) (*domain.EventParticipant, error) {
	if eventID == "" || firstName == "" || lastName == "" || email == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format")
	}

	event, err := s.lookupEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	check, err := s.CanParticipate(ctx, eventID, email)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, check.Reason)
	}

	token, err := generateConfirmationToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expiresAt := now.Add(s.confirmTTL)
	participant := &domain.EventParticipant{
		EventID:           eventID,
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		ConfirmationToken: token,
		ExpiresAt:         &expiresAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	data := s.emailData(participant, event)
	data.ConfirmationURL = fmt.Sprintf("%s/confirm-participation?token=%s", s.siteURL, token)
	data.ExpiresInHours = int(s.confirmTTL.Hours())
	if err := s.emailService.SendParticipationConfirmation(ctx, data); err != nil {
		// The participant was never notified, so the pending registration
		// must not survive.
		if delErr := s.participantRepo.Delete(ctx, participant.ID); delErr != nil {
			log.Printf("[PARTICIPATION] failed to roll back registration %d: %v", participant.ID, delErr)
		}
		return nil, fmt.Errorf("send confirmation email: %w", err)
	}
	if err := s.emailService.SendParticipationNotice(ctx, data); err != nil {
		log.Printf("[PARTICIPATION] operator notice for registration %d failed: %v", participant.ID, err)
	}
	return participant, nil
}

func (s *participationService) Confirm(ctx context.Context, token string) (*domain.EventParticipant, bool, error) {
	if token == "" {
		return nil, false, domain.ErrNotFound
	}
	now := time.Now()
	participant, err := s.participantRepo.ConfirmByToken(ctx, token, now)
	if err == nil {
		s.notifyConfirmed(ctx, participant)
		return participant, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("confirm registration: %w", err)
	}

	// The conditional update matched nothing. Disambiguate: already
	// confirmed, expired, or never issued.
	existing, getErr := s.participantRepo.GetByToken(ctx, token)
	if getErr != nil {
		if errors.Is(getErr, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get registration: %w", getErr)
	}
	if existing.EmailConfirmed {
		return existing, true, nil
	}
	if existing.ExpiresAt != nil && now.After(*existing.ExpiresAt) {
		if delErr := s.participantRepo.Delete(ctx, existing.ID); delErr != nil {
			return nil, false, fmt.Errorf("purge expired registration: %w", delErr)
		}
		return nil, false, domain.ErrExpired
	}
	return nil, false, domain.ErrNotFound
}

func (s *participationService) ListParticipants(ctx context.Context, eventID string) ([]*domain.EventParticipant, error) {
	return s.participantRepo.ListByEventID(ctx, eventID)
}

func (s *participationService) Stats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	total, confirmed, err := s.participantRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	return &domain.EventStats{
		EventID:   eventID,
		Total:     total,
		Confirmed: confirmed,
		Pending:   total - confirmed,
	}, nil
}

// lookupEvent resolves the event post and requires it to still be open for
// registration, i.e. classified as future.
func (s *participationService) lookupEvent(ctx context.Context, eventID string) (*domain.Post, error) {
	id, err := strconv.ParseInt(eventID, 10, 64)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished || post.Category != domain.CategoryProject {
		return nil, domain.ErrNotFound
	}
	if s.classifier.Classify(post.LifecycleItem()) != lifecycle.StateFuture {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (s *participationService) emailData(p *domain.EventParticipant, event *domain.Post) *domain.ParticipationEmailData {
	return &domain.ParticipationEmailData{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		EventTitle:  event.Title,
		EventDate:   formatEventDate(event),
		EventStatus: s.classifier.StatusLabel(event.LifecycleItem()),
	}
}

// notifyConfirmed sends the post-confirmation emails. The confirmation is
// already committed; failures here are logged, never rolled back.
func (s *participationService) notifyConfirmed(ctx context.Context, p *domain.EventParticipant) {
	event, err := s.eventForNotification(ctx, p.EventID)
	if err != nil {
		log.Printf("[PARTICIPATION] confirmed registration %d but event lookup failed: %v", p.ID, err)
		return
	}
	data := s.emailData(p, event)
	if err := s.emailService.SendParticipationConfirmed(ctx, data); err != nil {
		log.Printf("[PARTICIPATION] confirmed registration %d but participant email failed: %v", p.ID, err)
	}
	if err := s.emailService.SendParticipationConfirmedNotice(ctx, data); err != nil {
		log.Printf("[PARTICIPATION] confirmed registration %d but operator notice failed: %v", p.ID, err)
	}
}

// eventForNotification is lookupEvent without the future-only requirement:
// a confirmation clicked after the event started must still be honored.
func (s *participationService) eventForNotification(ctx context.Context, eventID string) (*domain.Post, error) {
	id, err := strconv.ParseInt(eventID, 10, 64)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.postRepo.GetByID(ctx, id)
}

func formatEventDate(event *domain.Post) string {
	const layout = "02.01.2006"
	if event.EventType == lifecycle.EventMultiDay && event.StartDate != nil && event.EndDate != nil {
		return event.StartDate.Format(layout) + " - " + event.EndDate.Format(layout)
	}
	if event.StartDate != nil {
		return event.StartDate.Format(layout)
	}
	return event.CreatedAt.Format(layout)
}
