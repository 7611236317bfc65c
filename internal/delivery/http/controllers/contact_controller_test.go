package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"credinta/internal/delivery/http/helpers"
	"credinta/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockContactService struct {
	submitted  *domain.ContactSubmission
	submitErr  error
	msg        *domain.ContactMessage
	confirmErr error
}

func (m *mockContactService) Submit(ctx context.Context, sub *domain.ContactSubmission) error {
	m.submitted = sub
	return m.submitErr
}

func (m *mockContactService) Confirm(ctx context.Context, token string) (*domain.ContactMessage, error) {
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return m.msg, nil
}

func TestContactController_SubmitContact_Success(t *testing.T) {
	svc := &mockContactService{}
	ctrl := NewContactController(testLogger(), svc)

	body := `{"first_name":"Ion","last_name":"Popescu","email":"ion@example.com","phone":"0712345678","text_area":"Detalii"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-message", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SubmitContact(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, w.Code)
	}
	if svc.submitted == nil || svc.submitted.Email != "ion@example.com" {
		t.Fatalf("expected submission to reach the service, got %+v", svc.submitted)
	}
}

func TestContactController_SubmitContact_Validation(t *testing.T) {
	ctrl := NewContactController(testLogger(), &mockContactService{})

	body := `{"first_name":"Ion","last_name":"Popescu","email":"not-an-email","phone":"0712345678","text_area":"Detalii"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-message", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SubmitContact(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestContactController_ConfirmContact(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		svc        *mockContactService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			token:      "tok-1",
			svc:        &mockContactService{msg: &domain.ContactMessage{ID: 1, Email: "ion@example.com"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			token:      "",
			svc:        &mockContactService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown or reused token",
			token:      "tok-x",
			svc:        &mockContactService{confirmErr: domain.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "expired token",
			token:      "tok-old",
			svc:        &mockContactService{confirmErr: domain.ErrExpired},
			wantStatus: http.StatusGone,
			wantCode:   helpers.ErrCodeGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewContactController(testLogger(), tt.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/confirm-email?token="+tt.token, nil)
			w := httptest.NewRecorder()

			ctrl.ConfirmContact(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp helpers.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if tt.wantCode == "" {
				if resp.Error != nil {
					t.Fatalf("expected no error, got %v", resp.Error)
				}
			} else if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Fatalf("expected error code %q, got %v", tt.wantCode, resp.Error)
			}
		})
	}
}
