package services

import (
	"context"
	"testing"
	"time"

	"credinta/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		FirstName: "Ion",
		LastName:  "Popescu",
		Email:     "ion@example.com",
		Phone:     "0712345678",
		Details:   "Aș dori mai multe detalii despre program.",
	}
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	emails := &fakeEmailService{}
	svc := NewContactService(repo, emails, "https://credinta.live", 7*24*time.Hour)

	require.NoError(t, svc.Submit(ctx, validSubmission()))

	require.Len(t, repo.pending, 1)
	require.Len(t, emails.contactConfirms, 1)
	sent := emails.contactConfirms[0]
	assert.Equal(t, "ion@example.com", sent.Email)
	assert.Equal(t, 7, sent.ExpiresInDays)
	assert.Contains(t, sent.ConfirmationURL, "https://credinta.live/confirm-email?token=")

	for token, pending := range repo.pending {
		assert.Len(t, token, 64) // 32 random bytes, hex encoded
		assert.Contains(t, sent.ConfirmationURL, token)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), pending.ExpiresAt, time.Minute)
	}
}

func TestContactService_SubmitValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(newFakeContactRepo(), &fakeEmailService{}, "https://credinta.live", time.Hour)

	missing := validSubmission()
	missing.Phone = ""
	require.Error(t, svc.Submit(ctx, missing))

	badEmail := validSubmission()
	badEmail.Email = "not-an-email"
	require.Error(t, svc.Submit(ctx, badEmail))
}

func TestContactService_SubmitRollsBackWhenEmailFails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	emails := &fakeEmailService{contactConfirmErr: assert.AnError}
	svc := NewContactService(repo, emails, "https://credinta.live", time.Hour)

	err := svc.Submit(ctx, validSubmission())
	require.Error(t, err)
	// The pending row must not outlive a failed notification.
	assert.Empty(t, repo.pending)
	assert.Len(t, repo.deleted, 1)
}

func TestContactService_Confirm(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	emails := &fakeEmailService{}
	svc := NewContactService(repo, emails, "https://credinta.live", time.Hour)

	require.NoError(t, svc.Submit(ctx, validSubmission()))
	var token string
	for tok := range repo.pending {
		token = tok
	}

	msg, err := svc.Confirm(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "ion@example.com", msg.Email)
	assert.Equal(t, "Aș dori mai multe detalii despre program.", msg.TextArea)
	require.Len(t, emails.contactNotices, 1)

	// Token is single use: the second confirm finds nothing.
	_, err = svc.Confirm(ctx, token)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, repo.messages, 1)
}

func TestContactService_ConfirmExpired(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &fakeEmailService{}, "https://credinta.live", time.Hour)

	repo.pending["dead-token"] = &domain.ContactConfirmation{
		Token:     "dead-token",
		Email:     "ion@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Confirm(ctx, "dead-token")
	require.ErrorIs(t, err, domain.ErrExpired)

	// Expiry detection purges the token; retry reports not found.
	_, err = svc.Confirm(ctx, "dead-token")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactService_ConfirmNoticeFailureDoesNotFailConfirm(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	emails := &fakeEmailService{contactNoticeErr: assert.AnError}
	svc := NewContactService(repo, emails, "https://credinta.live", time.Hour)

	require.NoError(t, svc.Submit(ctx, validSubmission()))
	var token string
	for tok := range repo.pending {
		token = tok
	}

	msg, err := svc.Confirm(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, msg)
	require.Len(t, repo.messages, 1)
}

func TestContactService_ConfirmEmptyToken(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &fakeEmailService{}, "https://credinta.live", time.Hour)
	_, err := svc.Confirm(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
