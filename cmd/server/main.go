package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"credinta/config"
	_ "credinta/docs"
	"credinta/internal/adapters/auth"
	"credinta/internal/adapters/email"
	deliveryhttp "credinta/internal/delivery/http"
	"credinta/internal/delivery/http/controllers"
	"credinta/internal/delivery/http/middleware"
	"credinta/internal/lifecycle"
	"credinta/internal/repository/postgres"
	"credinta/internal/services"
)

// @title Credinta API
// @version 1.0
// @description Backend for the Calarași Warriors club and church site: posts with derived lifecycle states, double-opt-in contact messages, and event participation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger("credinta-api")

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	postRepo := postgres.NewPostRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		ReplyTo:     cfg.OperatorEmail,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	renderer := email.NewTemplateRenderer()
	issuer, verifier := auth.NewJWTProvider(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(0)

	classifier := lifecycle.Classifier{}
	emailService := services.NewEmailService(mailer, renderer, cfg.OperatorEmail)
	postService := services.NewPostService(postRepo, classifier)
	contactService := services.NewContactService(contactRepo, emailService, cfg.SiteURL, cfg.ContactConfirmTTL)
	participationService := services.NewParticipationService(participantRepo, postRepo, emailService, classifier, cfg.SiteURL, cfg.ParticipationConfirmTTL)
	adminService := services.NewAdminService(adminRepo, hasher, issuer, cfg.AdminTokenTTL)

	postController := controllers.NewPostController(logger, postService)
	contactController := controllers.NewContactController(logger, contactService)
	participationController := controllers.NewParticipationController(logger, participationService)
	authController := controllers.NewAuthController(logger, adminService)

	mux := deliveryhttp.NewRouter(logger, verifier, postController, contactController, participationController, authController)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
