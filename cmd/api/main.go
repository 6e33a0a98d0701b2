package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/customcraft/customcraft-backend/internal/config"
	"github.com/customcraft/customcraft-backend/internal/modules/assistant"
	"github.com/customcraft/customcraft-backend/internal/modules/auth"
	"github.com/customcraft/customcraft-backend/internal/modules/catalog"
	"github.com/customcraft/customcraft-backend/internal/modules/order"
	"github.com/customcraft/customcraft-backend/internal/modules/upload"
	"github.com/customcraft/customcraft-backend/internal/modules/user"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("reach database", zap.Error(err))
	}
	logger.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	authenticated := auth.Middleware(cfg.JWTSecret)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, logger)
	catalog.NewHandler(catalogService).RegisterRoutes(router)
	if err := catalogService.Seed(context.Background()); err != nil {
		logger.Fatal("seed catalog", zap.Error(err))
	}

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router, authenticated)

	// ── Design assistant ────────────────────────────────────
	var provider assistant.Provider
	if cfg.GeminiAPIKey != "" {
		provider, err = assistant.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, "")
		if err != nil {
			logger.Warn("gemini unavailable, assistant will use fallback only", zap.Error(err))
			provider = nil
		}
	} else {
		logger.Info("no GEMINI_API_KEY set, assistant will use fallback only")
	}
	assistantService := assistant.NewService(provider, logger)
	assistant.NewHandler(assistantService).RegisterRoutes(router, authenticated)

	// ── Uploads ─────────────────────────────────────────────
	upload.NewHandler(cfg.UploadDir, logger).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	logger.Info("CustomCraft API listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
