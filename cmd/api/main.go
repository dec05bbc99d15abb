package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nobug-il/leadgen/cmd/mainconfig"
	"github.com/nobug-il/leadgen/internal/api/router"
	appconfig "github.com/nobug-il/leadgen/internal/config"
	"github.com/nobug-il/leadgen/internal/leads"
	"github.com/nobug-il/leadgen/internal/notify"
	"github.com/nobug-il/leadgen/internal/observability/metrics"
	"github.com/nobug-il/leadgen/pkg/logging"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting leadgen API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	sender, err := mainconfig.BuildEmailSender(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to build email sender", "error", err)
		os.Exit(1)
	}
	if sender == nil {
		logger.Warn("no email provider credential configured, leads will be logged only")
	}

	reg := prometheus.NewRegistry()
	leadMetrics := metrics.NewLeadMetrics(reg)

	dispatcher := notify.NewService(sender, notify.Config{
		OwnerEmail: cfg.OwnerEmail,
		ReplyTo:    cfg.ReplyTo,
		Timezone:   cfg.BusinessTimezone,
	}, leadMetrics, logger)

	svc := leads.NewService(dispatcher, leadMetrics, logger)
	formHandler := leads.NewHandler(svc, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		FormHandler:    formHandler,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
