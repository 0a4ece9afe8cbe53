package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/connectingthedots/contact-api/internal/awsutil"
	appconfig "github.com/connectingthedots/contact-api/internal/config"
	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/internal/gateway"
	"github.com/connectingthedots/contact-api/internal/notify"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	awsCfg, err := awsutil.LoadConfig(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	store := contact.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.ContactsTable, logger)

	var notifier *notify.Service
	if cfg.NotifyEmail != "" {
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.NotifyFromEmail,
			FromName:  cfg.NotifyFromName,
		}, logger)
		notifier = notify.NewService(sender, cfg.NotifyEmail, logger)
	}

	handler := gateway.NewHandler(gateway.Config{
		Store:         store,
		Notifier:      notifier,
		AllowedOrigin: cfg.AllowedOrigin,
		Logger:        logger,
	})

	logger.Info("starting contact intake lambda", "table", cfg.ContactsTable, "region", cfg.AWSRegion)
	lambda.Start(handler.Handle)
}
