package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/skaran/portfolio/internal/config"
	"github.com/skaran/portfolio/internal/handlers"
	appMiddleware "github.com/skaran/portfolio/internal/middleware"
	"github.com/skaran/portfolio/internal/services"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	contentService, contactService, userService := buildServices(ctx, cfg)

	if err := userService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin credential: %v", err)
	}

	sessions := appMiddleware.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	authHandler := handlers.NewAuthHandler(userService, sessions, cfg.AdminUsername)
	contentHandler := handlers.NewContentHandler(contentService)
	contactHandler := handlers.NewContactHandler(contactService)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/contact", contactHandler.Create)
		r.Get("/portfolio-content", contentHandler.Get)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/status", authHandler.Status)

			r.Group(func(r chi.Router) {
				r.Use(sessions.RequireAdmin)
				r.Post("/portfolio-content", contentHandler.Update)
			})
		})

		// Admin-only message list
		r.Group(func(r chi.Router) {
			r.Use(sessions.RequireAdmin)
			r.Get("/contacts", contactHandler.List)
		})
	})

	log.Printf("Portfolio API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// buildServices connects to MongoDB, falling back to the file-backed store in
// the data directory when the database is unreachable so the site keeps
// serving instead of crashing.
func buildServices(ctx context.Context, cfg *config.Config) (services.ContentService, services.ContactService, services.UserService) {
	client, err := services.ConnectMongo(ctx, cfg.MongoURI)
	if err == nil {
		db := client.Database(cfg.MongoDatabase)
		return services.NewMongoContentService(db),
			services.NewMongoContactService(ctx, db),
			services.NewMongoUserService(ctx, db)
	}

	log.Printf("Warning: MongoDB unavailable (%v), using file store in %s", err, cfg.DataDir)

	contentService, err := services.NewFileContentService(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open content store: %v", err)
	}
	contactService, err := services.NewFileContactService(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open contact store: %v", err)
	}
	userService, err := services.NewFileUserService(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}
	return contentService, contactService, userService
}
