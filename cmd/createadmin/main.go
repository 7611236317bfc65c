package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"credinta/config"
	"credinta/internal/adapters/auth"
	"credinta/internal/domain"
	"credinta/internal/repository/postgres"
)

// Seeds an admin account. Run once after migrations:
//
//	createadmin -username admin -password ... -email contact@credinta.live -name "Admin"
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	email := flag.String("email", "", "admin email")
	fullName := flag.String("name", "", "admin full name")
	flag.Parse()

	if *username == "" || *password == "" || *email == "" {
		log.Fatal("username, password and email are required")
	}
	if *fullName == "" {
		*fullName = *username
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger("credinta-createadmin")

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hasher := auth.NewBcryptHasher(0)
	hash, err := hasher.Hash(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	admin := &domain.Admin{
		Username:     *username,
		PasswordHash: hash,
		Email:        *email,
		FullName:     *fullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := postgres.NewAdminRepository(db)
	if err := repo.Create(context.Background(), admin); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			log.Fatalf("admin %q already exists", *username)
		}
		log.Fatalf("failed to create admin: %v", err)
	}

	logger.Info("admin created", "id", admin.ID, "username", admin.Username)
}
