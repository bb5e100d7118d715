package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/navarrastar/coming-soon/pkg/api"
	"github.com/navarrastar/coming-soon/pkg/clients/sheets"
	"github.com/navarrastar/coming-soon/pkg/config"
	"github.com/navarrastar/coming-soon/pkg/i18n"
	"github.com/navarrastar/coming-soon/pkg/logger"
	"github.com/navarrastar/coming-soon/pkg/middleware"
	"github.com/navarrastar/coming-soon/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if !cfg.HasSheetsConfig() {
		appLogger.Warn("google sheets not configured, submissions will fail until GOOGLE_SERVICE_ACCOUNT_CREDENTIALS and GOOGLE_SHEET_ID are set")
	}

	// Initialize services
	submissionService := services.NewLeadSubmissionService(
		sheets.NewFactory(appLogger),
		cfg,
		appLogger,
	)

	gin.SetMode(cfg.GinMode)
	router, err := newRouter(cfg, submissionService, appLogger)
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("server starting", "port", cfg.Port, "mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error starting server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("error during shutdown", "error", err)
		os.Exit(1)
	}
}

// newRouter wires middleware and routes onto a fresh gin engine.
func newRouter(cfg *config.Config, submissionService services.LeadSubmissionService, appLogger *slog.Logger) (*gin.Engine, error) {
	router := gin.New()
	// Forwarded headers count only from TRUSTED_PROXIES; otherwise the
	// client IP is the peer address.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("error setting trusted proxies: %w", err)
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(appLogger),
		middleware.CORS(cfg.AllowedOrigins...),
	)

	// Register routes
	handlers := api.NewHandlers(submissionService, appLogger)
	limiter := middleware.NewIPLimiter(cfg.SubmitRatePerMinute, cfg.SubmitBurst)
	handlers.Register(router, middleware.RateLimit(limiter, i18n.MsgTooManyTries))
	return router, nil
}
