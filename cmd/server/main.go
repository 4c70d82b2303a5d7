package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"datavisor/internal/auth"
	"datavisor/internal/config"
	"datavisor/internal/handler"
	"datavisor/internal/handler/sse"
	"datavisor/internal/middleware"
	"datavisor/internal/service/format"
	"datavisor/internal/service/render"
	"datavisor/internal/service/session"
	"datavisor/internal/views"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" || cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "server", cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"debounce", cfg.Debounce,
		"auth", cfg.AuthEnabled(),
	)

	// View catalogue
	registry, err := views.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load view catalogue: %v", err)
	}
	logger.Info("view catalogue loaded", "views", len(registry.List()))

	// Core services
	classifier := format.NewClassifier(logger)
	highlighter := render.NewHighlighter(cfg.HighlightStyle)
	renderer := render.NewRenderer(registry, highlighter, logger)
	sessions := session.NewService(classifier, renderer, registry, session.Config{
		Debounce:    cfg.Debounce,
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
	}, logger)
	defer sessions.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sessions.Run(ctx)

	logger.Info("services initialized", "highlight_style", highlighter.StyleName())

	// Handlers
	formatHandler := handler.NewFormatHandler(classifier, renderer, registry, logger)
	sessionHandler := handler.NewSessionHandler(sessions, &sse.Config{
		KeepAliveInterval: cfg.SSEKeepAlive,
		EventIDs:          cfg.Debug,
	}, logger)
	viewsHandler := handler.NewViewsHandler(registry, logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, formatHandler, sessionHandler, viewsHandler)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLogger → Recovery → Auth → Routes
	if cfg.AuthEnabled() {
		jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
		h = middleware.AuthMiddleware(jwtVerifier)(h)
	} else {
		logger.Warn("AUTH_JWKS_URL not set: API requests are not authenticated")
	}
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Last-Event-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	// Close sessions first so open streams end with a "closed" event.
	sessions.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
