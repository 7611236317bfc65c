package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"credinta/internal/delivery/http/controllers"
	"credinta/internal/delivery/http/helpers"
	"credinta/internal/delivery/http/middleware"
	"credinta/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Admin routes are wrapped with RequireAuth; everything else is public.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	postController *controllers.PostController,
	contactController *controllers.ContactController,
	participationController *controllers.ParticipationController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Public posts
	mux.HandleFunc("GET /api/posts", postController.ListPosts)
	mux.HandleFunc("GET /api/posts/{postID}", postController.GetPost)

	// Contact flow
	mux.HandleFunc("POST /api/contact-message", contactController.SubmitContact)
	mux.HandleFunc("GET /api/confirm-email", contactController.ConfirmContact)

	// Participation flow
	mux.HandleFunc("POST /api/event-participation", participationController.RegisterParticipant)
	mux.HandleFunc("GET /api/event-participation/check", participationController.CanParticipate)
	mux.HandleFunc("GET /api/confirm-event-participation", participationController.ConfirmParticipation)

	// Auth
	mux.HandleFunc("POST /api/admin/login", authController.Login)

	// Admin
	mux.HandleFunc("GET /api/admin/posts", auth(postController.ListAdminPosts))
	mux.HandleFunc("POST /api/admin/posts", auth(postController.CreatePost))
	mux.HandleFunc("GET /api/admin/posts/search", auth(postController.SearchPosts))
	mux.HandleFunc("PUT /api/admin/posts/{postID}", auth(postController.UpdatePost))
	mux.HandleFunc("DELETE /api/admin/posts/{postID}", auth(postController.DeletePost))
	mux.HandleFunc("GET /api/event-participants/{eventID}", auth(participationController.ListParticipants))
	mux.HandleFunc("GET /api/event-stats/{eventID}", auth(participationController.EventStats))

	// Health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
