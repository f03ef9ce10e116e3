// Package main initializes and starts the portal API server, setting
// up configuration, logging, the database, repositories, services,
// and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"time"

	nethttp "net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/princearya108/foodlab-portal/internal/config"
	"github.com/princearya108/foodlab-portal/internal/db"
	"github.com/princearya108/foodlab-portal/internal/logger"
	"github.com/princearya108/foodlab-portal/internal/models"
	"github.com/princearya108/foodlab-portal/internal/repository"
	"github.com/princearya108/foodlab-portal/internal/server/handler/http"
	"github.com/princearya108/foodlab-portal/internal/server/upload"
	"github.com/princearya108/foodlab-portal/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("jwt secret is required (-s flag or JWT_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted records in the background.
	db.StartSoftDeleteCleaner(context.Background(), postgresDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories.
	adminRepo := repository.NewPostgresAdminRepository(postgresDB)
	contactRepo := repository.NewPostgresContactRepository(postgresDB)
	internshipRepo := repository.NewPostgresInternshipRepository(postgresDB)
	serviceRequestRepo := repository.NewPostgresServiceRequestRepository(postgresDB)
	blogRepo := repository.NewPostgresBlogRepository(postgresDB)
	teamRepo := repository.NewPostgresTeamRepository(postgresDB)
	equipmentRepo := repository.NewPostgresEquipmentRepository(postgresDB)
	pageRepo := repository.NewPostgresPageRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(adminRepo, options.JWTSecret)

	// Seed the bootstrap admin so a fresh database is usable.
	if err := seedAdmin(context.Background(), adminRepo); err != nil {
		zapLogger.Fatal("failed to seed admin account", zap.Error(err))
	}

	// File storage for uploaded resumes, images, and manuals.
	saver, err := upload.NewSaver(options.UploadsDir)
	if err != nil {
		zapLogger.Fatal("failed to init uploads dir", zap.Error(err))
	}

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	publicHandler := &http.PublicHandler{
		Blogs:     blogRepo,
		Team:      teamRepo,
		Equipment: equipmentRepo,
		Pages:     pageRepo,
	}
	submitHandler := &http.SubmitHandler{
		Contacts:        contactRepo,
		Internships:     internshipRepo,
		ServiceRequests: serviceRequestRepo,
		Uploads:         saver,
	}
	adminHandler := &http.AdminHandler{
		Contacts:        contactRepo,
		Internships:     internshipRepo,
		ServiceRequests: serviceRequestRepo,
		Blogs:           blogRepo,
		Team:            teamRepo,
		Equipment:       equipmentRepo,
		Pages:           pageRepo,
		Uploads:         saver,
	}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, publicHandler, submitHandler, adminHandler,
		authService, options.UploadsDir, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}

// seedAdmin creates the initial admin account when ADMIN_PASSWORD is
// set and the username is free. Existing accounts are left untouched.
func seedAdmin(ctx context.Context, repo *repository.PostgresAdminRepository) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return nil
	}
	username := cmp.Or(os.Getenv("ADMIN_USERNAME"), "admin")
	email := cmp.Or(os.Getenv("ADMIN_EMAIL"), "admin@localhost")

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	return repo.EnsureAdmin(ctx, &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Role:         "admin",
		PasswordHash: hash,
	})
}
