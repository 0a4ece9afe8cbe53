package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration. It is built once at process start
// and passed to components explicitly; nothing reads the environment
// mid-request.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	ContactsTable string

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// UseMemoryStore swaps DynamoDB for an in-process store, for local runs
	// without AWS credentials.
	UseMemoryStore bool

	AllowedOrigin string

	// NotifyEmail is the operator address that receives a copy of each
	// accepted submission. Empty disables notifications.
	NotifyEmail     string
	NotifyFromEmail string
	NotifyFromName  string

	// AllowedSignupDomains restricts Cognito sign-ups to the listed email
	// domains. Empty disables the restriction.
	AllowedSignupDomains []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ContactsTable: getEnv("CONTACTS_TABLE", "ConnectingTheDotsDBTable"),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		UseMemoryStore: getEnvAsBool("USE_MEMORY_STORE", false),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),

		NotifyEmail:     getEnv("NOTIFY_EMAIL", ""),
		NotifyFromEmail: getEnv("NOTIFY_FROM_EMAIL", ""),
		NotifyFromName:  getEnv("NOTIFY_FROM_NAME", "Connecting The Dots"),

		AllowedSignupDomains: getEnvAsList("ALLOWED_SIGNUP_DOMAINS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable as a slice,
// dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
