package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	appconfig "github.com/connectingthedots/contact-api/internal/config"
	"github.com/connectingthedots/contact-api/internal/signup"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	validator := signup.NewValidator(cfg.AllowedSignupDomains, logger)

	logger.Info("starting pre-signup lambda", "allowed_domains", cfg.AllowedSignupDomains)
	lambda.Start(validator.Handle)
}
