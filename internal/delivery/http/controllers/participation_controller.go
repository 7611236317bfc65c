package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"credinta/internal/delivery/http/helpers"
	"credinta/internal/domain"
)

// ParticipationController serves the double-opt-in event registration flow.
type ParticipationController struct {
	Logger  *slog.Logger
	Service domain.ParticipationService
}

func NewParticipationController(logger *slog.Logger, svc domain.ParticipationService) *ParticipationController {
	return &ParticipationController{Logger: logger, Service: svc}
}

// RegisterParticipantRequest is the request body for POST /api/event-participation.
type RegisterParticipantRequest struct {
	EventID   string `json:"event_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Validate implements Validator.
func (r RegisterParticipantRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// RegisterParticipantResponse is the data payload for POST /api/event-participation (202).
type RegisterParticipantResponse struct {
	Status string `json:"status"`
}

// RegisterParticipantSuccessResponse is the success response envelope for POST /api/event-participation (202).
type RegisterParticipantSuccessResponse struct {
	Data  RegisterParticipantResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// RegisterParticipant godoc
// @Summary Register for an event
// @Description Stores a pending registration for an upcoming event and emails the participant a confirmation link. Registration closes once the event is no longer upcoming.
// @Tags participation
// @Accept json
// @Produce json
// @Param body body RegisterParticipantRequest true "Registration fields"
// @Success 202 {object} controllers.RegisterParticipantSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such upcoming event)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-participation [post]
func (c *ParticipationController) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var req RegisterParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	_, err := c.Service.Register(r.Context(), strings.TrimSpace(req.EventID),
		strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no such upcoming event")
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, RegisterParticipantResponse{Status: "confirmation email sent"})
}

// ConfirmParticipationResponse is the data payload for GET /api/confirm-event-participation (200).
type ConfirmParticipationResponse struct {
	Participant      *domain.EventParticipant `json:"participant"`
	AlreadyConfirmed bool                     `json:"already_confirmed"`
}

// ConfirmParticipationSuccessResponse is the success response envelope for GET /api/confirm-event-participation (200).
type ConfirmParticipationSuccessResponse struct {
	Data  ConfirmParticipationResponse `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// ConfirmParticipation godoc
// @Summary Confirm an event registration
// @Description Confirms the registration behind the token. Clicking the link twice is not an error: the second call returns 200 with already_confirmed set to true. Expired tokens report gone; unknown tokens report not_found.
// @Tags participation
// @Produce json
// @Param token query string true "Confirmation token"
// @Success 200 {object} controllers.ConfirmParticipationSuccessResponse "data contains the participant and already_confirmed flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (token expired)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/confirm-event-participation [get]
func (c *ParticipationController) ConfirmParticipation(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "token is required")
		return
	}
	participant, already, err := c.Service.Confirm(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "token not found")
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
	helpers.WriteJSONSuccess(w, http.StatusOK, ConfirmParticipationResponse{
		Participant:      participant,
		AlreadyConfirmed: already,
	})
}

// CanParticipateSuccessResponse is the success response envelope for GET /api/event-participation/check (200).
type CanParticipateSuccessResponse struct {
	Data  *domain.ParticipationCheck `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// CanParticipate godoc
// @Summary Check whether an email can register for an event
// @Description Preflight for the registration form. Returns allowed plus a user-facing reason when denied.
// @Tags participation
// @Produce json
// @Param event_id query string true "Event ID"
// @Param email query string true "Email address"
// @Success 200 {object} controllers.CanParticipateSuccessResponse "data contains allowed and reason"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-participation/check [get]
func (c *ParticipationController) CanParticipate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	eventID := strings.TrimSpace(q.Get("event_id"))
	email := strings.TrimSpace(q.Get("email"))
	if eventID == "" || email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event_id and email are required")
		return
	}
	check, err := c.Service.CanParticipate(r.Context(), eventID, email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, check)
}

// ListParticipantsSuccessResponse is the success response envelope for GET /api/event-participants/{eventID} (200).
type ListParticipantsSuccessResponse struct {
	Data  []*domain.EventParticipant `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// ListParticipants godoc
// @Summary List participants for an event
// @Description Returns every registration for the event, pending and confirmed. Requires authentication.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ListParticipantsSuccessResponse "data is an array of participants"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-participants/{eventID} [get]
func (c *ParticipationController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	participants, err := c.Service.ListParticipants(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// EventStatsSuccessResponse is the success response envelope for GET /api/event-stats/{eventID} (200).
type EventStatsSuccessResponse struct {
	Data  *domain.EventStats `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// EventStats godoc
// @Summary Registration stats for an event
// @Description Returns total, confirmed, and pending registration counts. Requires authentication.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventStatsSuccessResponse "data contains the counters"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-stats/{eventID} [get]
func (c *ParticipationController) EventStats(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	stats, err := c.Service.Stats(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
