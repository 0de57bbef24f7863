package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/config"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/handlers"
	custommiddleware "github.com/ybhavesh-0915/taxwise-CIDIB/internal/middleware"
	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/services"
)

func main() {
	// Missing .env is fine; the environment may carry everything already
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.DataProcessor.BreakerMaxFailures,
		ResetTimeout:    cfg.DataProcessor.BreakerResetTimeout,
		HalfOpenMaxSucc: 3,
	})

	sessionClient := services.NewSessionClient(
		cfg.DataProcessor.BaseURL,
		cfg.DataProcessor.Timeout,
		breaker,
		metrics,
	)
	normalizer := services.NewNormalizerService()
	analysisService := services.NewAnalysisService(normalizer, services.DefaultScoringConfig(), metrics)
	chartService := services.NewChartService()

	analysisHandler := handlers.NewAnalysisHandler(sessionClient, analysisService, chartService, metrics)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(echomiddleware.CORS())
	e.Use(custommiddleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.GET("/analyze/:sessionId", analysisHandler.AnalyzeSession)

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(services.NewTransactionGenerator(uint64(time.Now().UnixNano())))
		v1.GET("/dev/sample-transactions", devHandler.GenerateSampleFeed)
		slog.Info("development endpoints enabled")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting CIBIL analysis server",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"data_processor", cfg.DataProcessor.BaseURL)

		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// setupLogger configures slog output. Production gets JSON for log
// aggregation; everything else gets human-readable text.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
