// Package main initializes and starts the A Loving Lunch API server,
// setting up configuration, logging, the database connection, repositories,
// services, and handlers.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/config"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/db"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/logger"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/repository"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/server/handler/http"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/service"
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
	buildVersion := version
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	buildDateValue := buildDate
	if buildDateValue == "" {
		buildDateValue = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDateValue)

	// Initialize structured logging.
	zapLogger, err := logger.New(options.Environment)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	defer func() { _ = zapLogger.Sync() }()

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT secret is required (flag -j or env JWT_SECRET)")
	}
	signKey := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection and apply migrations.
	postgresDB, err := db.Open(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	if err := db.Migrate(context.Background(), postgresDB); err != nil {
		zapLogger.Fatal("cannot apply migrations", zap.Error(err))
	}

	// Initialize repositories for accounts and bento box records.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	bentoRepo := repository.NewPostgresBentoBoxRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, signKey, time.Duration(options.TokenTTLMinutes)*time.Minute)
	bentoService := service.NewBentoBoxService(bentoRepo)

	// Create HTTP handlers for auth and record endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	bentoHandler := &http.BentoBoxHandler{BentoService: bentoService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, bentoHandler, signKey, zapLogger, options.Environment)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
