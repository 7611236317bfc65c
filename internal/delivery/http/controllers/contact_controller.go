package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"credinta/internal/delivery/http/helpers"
	"credinta/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ContactController serves the double-opt-in contact flow.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// SubmitContactRequest is the request body for POST /api/contact-message.
type SubmitContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Details   string `json:"text_area"`
}

// Validate implements Validator.
func (s SubmitContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if strings.TrimSpace(s.Details) == "" {
		errs = append(errs, "text_area is required")
	}
	if s.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(s.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// SubmitContactResponse is the data payload for POST /api/contact-message (202).
type SubmitContactResponse struct {
	Status string `json:"status"`
}

// SubmitContactSuccessResponse is the success response envelope for POST /api/contact-message (202).
type SubmitContactSuccessResponse struct {
	Data  SubmitContactResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Description Stores the message as pending and sends the sender a confirmation link. The message becomes visible to the operator only after the sender confirms.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body SubmitContactRequest true "Contact form fields"
// @Success 202 {object} controllers.SubmitContactSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/contact-message [post]
func (c *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub := &domain.ContactSubmission{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Details:   req.Details,
	}
	if err := c.Service.Submit(r.Context(), sub); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, SubmitContactResponse{Status: "confirmation email sent"})
}

// ConfirmContactSuccessResponse is the success response envelope for GET /api/confirm-email (200).
type ConfirmContactSuccessResponse struct {
	Data  *domain.ContactMessage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ConfirmContact godoc
// @Summary Confirm a contact message
// @Description Consumes the single-use token from the confirmation email and materializes the message. A second use of the same token reports not_found; an expired token reports gone.
// @Tags contact
// @Produce json
// @Param token query string true "Confirmation token"
// @Success 200 {object} controllers.ConfirmContactSuccessResponse "data contains the confirmed message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (token expired)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/confirm-email [get]
func (c *ContactController) ConfirmContact(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "token is required")
		return
	}
	msg, err := c.Service.Confirm(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "token not found or already used")
			return
		}
		if errors.Is(err, domain.ErrExpired) {
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "confirmation link expired")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}
