package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"credinta/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

// NewAdminRepository returns a domain.AdminRepository implemented with Postgres.
func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, email, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		admin.Username, admin.PasswordHash, admin.Email, admin.FullName,
		admin.IsActive, admin.CreatedAt, admin.UpdatedAt,
	).Scan(&admin.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrConflict
	}
	return err
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT id, username, password_hash, email, full_name, is_active, created_at, updated_at
		FROM admins
		WHERE username = $1
	`
	admin := &domain.Admin{}
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.Email,
		&admin.FullName, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}
