package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/connectingthedots/contact-api/internal/awsutil"
	appconfig "github.com/connectingthedots/contact-api/internal/config"
	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/internal/gateway"
	"github.com/connectingthedots/contact-api/internal/notify"
	"github.com/connectingthedots/contact-api/internal/server"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

func main() {
	// .env is optional; real deploys set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting contact-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	var store contact.Store
	var notifier *notify.Service
	if cfg.UseMemoryStore {
		logger.Info("using in-memory store")
		store = contact.NewMemoryStore()
		if cfg.NotifyEmail != "" {
			notifier = notify.NewService(notify.NewStubEmailSender(logger), cfg.NotifyEmail, logger)
		}
	} else {
		awsCfg, err := awsutil.LoadConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		store = contact.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.ContactsTable, logger)
		if cfg.NotifyEmail != "" {
			sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
				FromEmail: cfg.NotifyFromEmail,
				FromName:  cfg.NotifyFromName,
			}, logger)
			notifier = notify.NewService(sender, cfg.NotifyEmail, logger)
		}
	}

	reg := prometheus.NewRegistry()
	handler := gateway.NewHandler(gateway.Config{
		Store:         store,
		Notifier:      notifier,
		Metrics:       gateway.NewMetrics(reg),
		AllowedOrigin: cfg.AllowedOrigin,
		Logger:        logger,
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.New(server.Config{
			Logger:  logger,
			Gateway: handler,
			Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}),
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

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
