package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("already exists")

	// ErrInvalidDate is returned when date fields are rejected at the
	// ingestion boundary (missing multi-day bounds, start after end).
	ErrInvalidDate = errors.New("invalid date")

	// ErrExpired is returned when a confirmation token is past its
	// expires_at. The token is purged as a side effect of detection.
	ErrExpired = errors.New("confirmation expired")

	// ErrAlreadyConfirmed signals an idempotent re-access of an already
	// confirmed flow. It is informational, not a hard failure.
	ErrAlreadyConfirmed = errors.New("already confirmed")
)
