package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"credinta/internal/domain"
)

// ErrInvalidCredentials is returned for any failed login attempt; it does
// not reveal whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type adminService struct {
	adminRepo   domain.AdminRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAdminService creates an AdminService with the given repository and auth ports.
func NewAdminService(adminRepo domain.AdminRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AdminService {
	return &adminService{
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin: %w", err)
	}
	if !admin.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(strconv.FormatInt(admin.ID, 10), admin.Username, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, admin, nil
}
