package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

type recordingSender struct {
	messages []EmailMessage
	err      error
}

func (r *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	r.messages = append(r.messages, msg)
	return r.err
}

func TestSubmissionReceived_ComposesMessage(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, "ops@connectingthedots.com", logging.Default())

	sub := &contact.Submission{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Company:   "Analytical Engines Ltd",
		Message:   "Please get in touch.",
	}

	if err := svc.SubmissionReceived(context.Background(), sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}
	msg := sender.messages[0]
	if msg.To != "ops@connectingthedots.com" {
		t.Errorf("unexpected recipient: %s", msg.To)
	}
	if msg.Subject != "New contact submission from Ada Lovelace" {
		t.Errorf("unexpected subject: %s", msg.Subject)
	}
	for _, want := range []string{"ada@example.com", "Analytical Engines Ltd", "Please get in touch."} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q:\n%s", want, msg.Body)
		}
	}
	if strings.Contains(msg.Body, "Job title:") {
		t.Errorf("absent optional fields should be omitted:\n%s", msg.Body)
	}
}

func TestSubmissionReceived_WrapsSendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	svc := NewService(sender, "ops@connectingthedots.com", logging.Default())

	err := svc.SubmissionReceived(context.Background(), &contact.Submission{
		Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace",
	})
	if err == nil || !strings.Contains(err.Error(), "smtp down") {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func TestNilServiceIsSafe(t *testing.T) {
	var svc *Service
	if err := svc.SubmissionReceived(context.Background(), &contact.Submission{Email: "a@b.c"}); err != nil {
		t.Fatalf("nil service should be a no-op, got %v", err)
	}
}

func TestNewService_DisabledWithoutConfig(t *testing.T) {
	if svc := NewService(nil, "ops@connectingthedots.com", nil); svc != nil {
		t.Fatal("expected nil service without a sender")
	}
	if svc := NewService(&recordingSender{}, "", nil); svc != nil {
		t.Fatal("expected nil service without a destination")
	}
}

type mockSES struct {
	inputs  []*sesv2.SendEmailInput
	sendErr error
}

func (m *mockSES) SendEmail(_ context.Context, input *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	m.inputs = append(m.inputs, input)
	return &sesv2.SendEmailOutput{}, m.sendErr
}

func TestSESSender_Send(t *testing.T) {
	mock := &mockSES{}
	sender := NewSESSender(mock, SESConfig{FromEmail: "no-reply@connectingthedots.com"}, logging.Default())

	err := sender.Send(context.Background(), EmailMessage{
		To:      "ops@connectingthedots.com",
		Subject: "New contact submission from Ada Lovelace",
		Body:    "Email: ada@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.inputs) != 1 {
		t.Fatalf("expected 1 send, got %d", len(mock.inputs))
	}
	input := mock.inputs[0]
	if from := *input.FromEmailAddress; from != "Connecting The Dots <no-reply@connectingthedots.com>" {
		t.Errorf("unexpected from address: %s", from)
	}
	if to := input.Destination.ToAddresses; len(to) != 1 || to[0] != "ops@connectingthedots.com" {
		t.Errorf("unexpected destination: %v", to)
	}
}

func TestSESSender_SendError(t *testing.T) {
	mock := &mockSES{sendErr: errors.New("rate exceeded")}
	sender := NewSESSender(mock, SESConfig{FromEmail: "no-reply@connectingthedots.com"}, logging.Default())

	err := sender.Send(context.Background(), EmailMessage{To: "ops@connectingthedots.com"})
	if err == nil || !strings.Contains(err.Error(), "rate exceeded") {
		t.Fatalf("expected wrapped SES error, got %v", err)
	}
}
