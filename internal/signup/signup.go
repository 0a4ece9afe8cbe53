// Package signup implements the Cognito pre-signup trigger that restricts
// account creation to an allowlist of email domains.
package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/connectingthedots/contact-api/pkg/logging"
)

// ErrMissingEmail is returned when the sign-up event carries no email.
var ErrMissingEmail = errors.New("signup: email attribute missing")

// Validator checks sign-up events against an allowed-domain list. An empty
// list disables the restriction and admits every domain.
type Validator struct {
	allowed map[string]struct{}
	logger  *logging.Logger
}

// NewValidator creates a validator for the given domains.
func NewValidator(domains []string, logger *logging.Logger) *Validator {
	if logger == nil {
		logger = logging.Default()
	}
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		allowed[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	return &Validator{allowed: allowed, logger: logger}
}

// Handle validates one pre-signup event. Returning an error makes Cognito
// reject the sign-up; the unchanged event is returned on success.
func (v *Validator) Handle(ctx context.Context, event events.CognitoEventUserPoolsPreSignup) (events.CognitoEventUserPoolsPreSignup, error) {
	email := event.Request.UserAttributes["email"]
	if email == "" {
		return event, ErrMissingEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return event, fmt.Errorf("signup: invalid email address %q", email)
	}
	domain := strings.ToLower(email[at+1:])

	if len(v.allowed) == 0 {
		return event, nil
	}
	if _, ok := v.allowed[domain]; !ok {
		v.logger.Info("sign-up rejected", "domain", domain)
		return event, fmt.Errorf("signup: email domain %q is not allowed", domain)
	}

	v.logger.Info("sign-up allowed", "domain", domain)
	return event, nil
}
