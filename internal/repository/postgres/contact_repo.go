package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"credinta/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

// NewContactRepository returns a domain.ContactRepository implemented with Postgres.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) CreatePending(ctx context.Context, c *domain.ContactConfirmation) error {
	query := `
		INSERT INTO contact_confirmations (token, first_name, last_name, email, phone, details, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.Token, c.FirstName, c.LastName, c.Email, c.Phone, c.Details, c.ExpiresAt, c.CreatedAt)
	return err
}

func (r *contactRepository) DeletePending(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM contact_confirmations WHERE token = $1`, token)
	return err
}

// Confirm consumes the pending confirmation and materializes the contact
// message in one transaction. The DELETE ... RETURNING is the single-winner
// guard: a concurrent confirm with the same token sees zero rows. Expired
// rows are purged by the same delete before ErrExpired is reported.
func (r *contactRepository) Confirm(ctx context.Context, token string, now time.Time) (*domain.ContactMessage, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin confirm tx: %w", err)
	}
	defer tx.Rollback()

	consumeQuery := `
		DELETE FROM contact_confirmations
		WHERE token = $1
		RETURNING first_name, last_name, email, phone, details, expires_at
	`
	pending := &domain.ContactConfirmation{Token: token}
	err = tx.QueryRowContext(ctx, consumeQuery, token).Scan(
		&pending.FirstName, &pending.LastName, &pending.Email,
		&pending.Phone, &pending.Details, &pending.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if now.After(pending.ExpiresAt) {
		// Keep the delete so the dead token is purged, but do not
		// materialize the message.
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit expired purge: %w", err)
		}
		return nil, domain.ErrExpired
	}

	insertQuery := `
		INSERT INTO contact_messages (first_name, last_name, email, phone, text_area, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	msg := &domain.ContactMessage{
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Email:     pending.Email,
		Phone:     pending.Phone,
		TextArea:  pending.Details,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.QueryRowContext(ctx, insertQuery,
		msg.FirstName, msg.LastName, msg.Email, msg.Phone, msg.TextArea, msg.CreatedAt, msg.UpdatedAt,
	).Scan(&msg.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}
	return msg, nil
}
