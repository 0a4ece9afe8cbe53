// Command scan dumps every stored contact submission as JSON, for operators
// checking what the form has collected.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/connectingthedots/contact-api/internal/awsutil"
	appconfig "github.com/connectingthedots/contact-api/internal/config"
	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	awsCfg, err := awsutil.LoadConfig(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	store := contact.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.ContactsTable, logger)

	subs, err := store.List(ctx)
	if err != nil {
		logger.Error("scan failed", "error", err, "table", cfg.ContactsTable)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(subs); err != nil {
		logger.Error("failed to encode submissions", "error", err)
		os.Exit(1)
	}

	logger.Info("scan complete", "table", cfg.ContactsTable, "count", len(subs))
}
