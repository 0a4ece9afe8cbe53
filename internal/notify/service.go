package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

// Service sends operator notifications for accepted submissions. A nil
// Service is safe to call and does nothing, so callers never need to branch
// on whether notifications are configured.
type Service struct {
	sender EmailSender
	to     string
	logger *logging.Logger
}

// NewService creates a notification service. Returns nil when no sender or
// destination address is configured.
func NewService(sender EmailSender, to string, logger *logging.Logger) *Service {
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		sender: sender,
		to:     to,
		logger: logger,
	}
}

// SubmissionReceived emails the operator a copy of a stored submission.
func (s *Service) SubmissionReceived(ctx context.Context, sub *contact.Submission) error {
	if s == nil {
		return nil
	}

	msg := EmailMessage{
		To:      s.to,
		Subject: fmt.Sprintf("New contact submission from %s", sub.FullName()),
		Body:    formatSubmission(sub),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send submission notification", "error", err, "email", sub.Email)
		return fmt.Errorf("notify: submission notification: %w", err)
	}
	return nil
}

func formatSubmission(sub *contact.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", sub.FullName())
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.JobTitle != "" {
		fmt.Fprintf(&b, "Job title: %s\n", sub.JobTitle)
	}
	if sub.PhoneNumber != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.PhoneNumber)
	}
	if sub.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", sub.Company)
	}
	if sub.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", sub.Message)
	}
	return b.String()
}
