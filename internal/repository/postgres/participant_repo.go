package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"credinta/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository returns a domain.EventParticipantRepository implemented with Postgres.
func NewParticipantRepository(db *sql.DB) domain.EventParticipantRepository {
	return &participantRepository{DB: db}
}

const participantColumns = `
	id, event_id, first_name, last_name, email, email_confirmed,
	confirmation_token, expires_at, confirmed_at, created_at, updated_at
`

func (r *participantRepository) Create(ctx context.Context, p *domain.EventParticipant) error {
	query := `
		INSERT INTO event_participants (event_id, first_name, last_name, email,
			email_confirmed, confirmation_token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.EventID, p.FirstName, p.LastName, p.Email,
		p.EmailConfirmed, nullString(p.ConfirmationToken), p.ExpiresAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	// The (event_id, email) unique index is the backstop for two
	// simultaneous registrations racing past the preflight.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}

func (r *participantRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.EventParticipant, error) {
	query := `SELECT ` + participantColumns + `
		FROM event_participants
		WHERE event_id = $1 AND email = $2
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, eventID, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) GetByToken(ctx context.Context, token string) (*domain.EventParticipant, error) {
	query := `SELECT ` + participantColumns + `
		FROM event_participants
		WHERE confirmation_token = $1
	`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM event_participants WHERE id = $1`, id)
	return err
}

// ConfirmByToken is the single-winner confirm: the conditional UPDATE only
// matches a pending, unexpired registration, so a concurrent confirm with
// the same token sees zero rows and falls out as ErrNotFound.
func (r *participantRepository) ConfirmByToken(ctx context.Context, token string, now time.Time) (*domain.EventParticipant, error) {
	query := `
		UPDATE event_participants
		SET email_confirmed = TRUE, confirmed_at = $2, updated_at = $2
		WHERE confirmation_token = $1 AND email_confirmed = FALSE AND expires_at > $2
		RETURNING ` + participantColumns
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, token, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventParticipant, error) {
	query := `SELECT ` + participantColumns + `
		FROM event_participants
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*domain.EventParticipant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*domain.EventParticipant{}
	}
	return participants, nil
}

func (r *participantRepository) CountByEventID(ctx context.Context, eventID string) (total, confirmed int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE email_confirmed)
		FROM event_participants
		WHERE event_id = $1
	`
	err = r.DB.QueryRowContext(ctx, query, eventID).Scan(&total, &confirmed)
	return total, confirmed, err
}

func scanParticipant(row rowScanner) (*domain.EventParticipant, error) {
	p := &domain.EventParticipant{}
	var token sql.NullString
	err := row.Scan(
		&p.ID, &p.EventID, &p.FirstName, &p.LastName, &p.Email,
		&p.EmailConfirmed, &token, &p.ExpiresAt, &p.ConfirmedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ConfirmationToken = token.String
	return p, nil
}
