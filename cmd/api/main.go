package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/events"
	"github.com/kazimashinani/kazi-api/internal/handlers"
	mw "github.com/kazimashinani/kazi-api/internal/middleware"
	"github.com/kazimashinani/kazi-api/internal/repository"
	"github.com/kazimashinani/kazi-api/internal/service"
	"github.com/kazimashinani/kazi-api/pkg/config"
	"github.com/kazimashinani/kazi-api/pkg/database"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting with configuration",
		"port", cfg.Server.Port,
		"database_url_set", cfg.Database.URL != "",
		"jwt_secret_set", cfg.Auth.JWTSecret != "",
	)

	ctx := context.Background()

	// Connect to database and apply schema
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)

	// Initialize services
	authService := service.NewAuthService(userRepo, eventBus, cfg)
	jobService := service.NewJobService(jobRepo, userRepo, eventBus)
	applicationService := service.NewApplicationService(applicationRepo, eventBus)

	// Initialize handlers
	h := handlers.New(authService, jobService, applicationService, pool)

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/signin", h.Signin)
			r.Post("/check-phone", h.CheckPhone)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth(cfg.Auth.JWTSecret))
				r.Put("/profile", h.UpdateProfile)
				r.Put("/password", h.ChangePassword)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.ListJobs)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth(cfg.Auth.JWTSecret))
				r.With(mw.RequireRole(domain.RoleEmployer)).Post("/", h.CreateJob)
				r.Put("/{id}", h.UpdateJob)
				r.Delete("/{id}", h.DeleteJob)
			})
		})

		r.Get("/employees", h.ListEmployees)

		r.Route("/applications", func(r chi.Router) {
			r.Post("/", h.CreateApplication)
			r.Get("/job/{id}", h.ListApplicationsByJob)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
