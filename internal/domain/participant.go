package domain

import (
	"context"
	"time"
)

// EventParticipant is a registration for an event post. A participant is
// live while pending (unexpired) or confirmed; one live registration per
// (event, email) pair.
// swagger:model EventParticipant
type EventParticipant struct {
	ID                int64      `json:"id"`
	EventID           string     `json:"event_id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	EmailConfirmed    bool       `json:"email_confirmed"`
	ConfirmationToken string     `json:"-"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// EventStats summarizes registrations for one event.
// swagger:model EventStats
type EventStats struct {
	EventID   string `json:"event_id"`
	Total     int    `json:"total"`
	Confirmed int    `json:"confirmed"`
	Pending   int    `json:"pending"`
}

// EventParticipantRepository defines storage operations for participants.
type EventParticipantRepository interface {
	Create(ctx context.Context, p *EventParticipant) error
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*EventParticipant, error)
	GetByToken(ctx context.Context, token string) (*EventParticipant, error)
	Delete(ctx context.Context, id int64) error
	// ConfirmByToken marks the pending, unexpired registration holding the
	// token as confirmed in a single conditional update, so concurrent
	// confirmations have exactly one winner. Returns ErrNotFound when no
	// row matched the condition; callers disambiguate via GetByToken.
	ConfirmByToken(ctx context.Context, token string, now time.Time) (*EventParticipant, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventParticipant, error)
	CountByEventID(ctx context.Context, eventID string) (total, confirmed int, err error)
}

// ParticipationCheck is the preflight verdict for a registration attempt.
type ParticipationCheck struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ParticipationService runs the double-opt-in event registration flow.
type ParticipationService interface {
	CanParticipate(ctx context.Context, eventID, email string) (*ParticipationCheck, error)
	// Register stores a pending registration and emails the participant a
	// confirmation link plus a notice to the operator. If the participant
	// email cannot be sent, the registration is rolled back.
	Register(ctx context.Context, eventID, firstName, lastName, email string) (*EventParticipant, error)
	// Confirm flips the registration to confirmed. The bool result is true
	// when the registration was already confirmed (informational outcome,
	// not a failure).
	Confirm(ctx context.Context, token string) (*EventParticipant, bool, error)
	ListParticipants(ctx context.Context, eventID string) ([]*EventParticipant, error)
	Stats(ctx context.Context, eventID string) (*EventStats, error)
}
