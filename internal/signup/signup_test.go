package signup

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/connectingthedots/contact-api/pkg/logging"
)

func preSignupEvent(email string) events.CognitoEventUserPoolsPreSignup {
	return events.CognitoEventUserPoolsPreSignup{
		Request: events.CognitoEventUserPoolsPreSignupRequest{
			UserAttributes: map[string]string{"email": email},
		},
	}
}

func TestHandle_AllowedDomain(t *testing.T) {
	v := NewValidator([]string{"example.com", "connectingthedots.com"}, logging.Default())

	_, err := v.Handle(context.Background(), preSignupEvent("ada@example.com"))
	if err != nil {
		t.Fatalf("expected allowed domain to pass, got %v", err)
	}
}

func TestHandle_DomainCaseInsensitive(t *testing.T) {
	v := NewValidator([]string{"Example.COM"}, logging.Default())

	_, err := v.Handle(context.Background(), preSignupEvent("ada@EXAMPLE.com"))
	if err != nil {
		t.Fatalf("domain comparison should ignore case, got %v", err)
	}
}

func TestHandle_RejectedDomain(t *testing.T) {
	v := NewValidator([]string{"example.com"}, logging.Default())

	_, err := v.Handle(context.Background(), preSignupEvent("mallory@evil.net"))
	if err == nil {
		t.Fatal("expected rejection for unlisted domain")
	}
	if !strings.Contains(err.Error(), "evil.net") {
		t.Errorf("error should name the domain: %v", err)
	}
}

func TestHandle_EmptyAllowlistAdmitsAll(t *testing.T) {
	v := NewValidator(nil, logging.Default())

	_, err := v.Handle(context.Background(), preSignupEvent("anyone@anywhere.org"))
	if err != nil {
		t.Fatalf("empty allowlist should disable the restriction, got %v", err)
	}
}

func TestHandle_MissingEmail(t *testing.T) {
	v := NewValidator([]string{"example.com"}, logging.Default())

	evt := events.CognitoEventUserPoolsPreSignup{}
	_, err := v.Handle(context.Background(), evt)
	if !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}

func TestHandle_InvalidEmail(t *testing.T) {
	v := NewValidator([]string{"example.com"}, logging.Default())

	for _, email := range []string{"no-at-sign", "trailing@"} {
		if _, err := v.Handle(context.Background(), preSignupEvent(email)); err == nil {
			t.Errorf("expected rejection for %q", email)
		}
	}
}
