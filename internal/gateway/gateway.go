// Package gateway routes API Gateway proxy events to the contact intake
// endpoints and shapes every outcome into a CORS-complete response.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/connectingthedots/contact-api/internal/contact"
	"github.com/connectingthedots/contact-api/internal/notify"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

// Logical paths. Matching is exact and case-sensitive.
const (
	PathRoot      = "/"
	PathPing      = "/ping"
	PathContact   = "/contact"
	PathDashboard = "/dashboard"
	PathSubmit    = "/submit_contact"
)

// Config holds handler dependencies.
type Config struct {
	Store         contact.Store
	Notifier      *notify.Service
	Metrics       *Metrics
	AllowedOrigin string
	Logger        *logging.Logger
}

// Handler dispatches one API Gateway event per invocation. It holds no
// per-request state; the platform may run any number of instances
// concurrently.
type Handler struct {
	store     contact.Store
	notifier  *notify.Service
	metrics   *Metrics
	responses *ResponseBuilder
	logger    *logging.Logger
}

// NewHandler creates a gateway handler.
func NewHandler(cfg Config) *Handler {
	if cfg.Store == nil {
		panic("gateway: store cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:     cfg.Store,
		notifier:  cfg.Notifier,
		metrics:   cfg.Metrics,
		responses: NewResponseBuilder(cfg.AllowedOrigin),
		logger:    logger,
	}
}

// Handle routes a single event. It never returns a non-nil error: every
// failure, including a panic, becomes a well-formed response so the caller
// always receives CORS headers.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling request", "panic", r, "path", req.Path)
			resp = h.responses.Error(http.StatusInternalServerError, "internal server error")
			err = nil
		}
		h.metrics.ObserveRequest(req.Path, resp.StatusCode)
	}()

	method := strings.ToUpper(req.HTTPMethod)

	// CORS preflight short-circuits before any other component runs.
	if method == http.MethodOptions {
		return h.responses.Preflight(), nil
	}

	switch {
	case method == http.MethodPost && req.Path == PathSubmit:
		return h.submitContact(ctx, req), nil
	case method == http.MethodGet && req.Path == PathPing:
		return h.responses.JSON(http.StatusOK, map[string]string{"status": "alive"}), nil
	case method == http.MethodGet && req.Path == PathRoot:
		return h.responses.Text(http.StatusOK, "Welcome to Connecting The Dots!"), nil
	case method == http.MethodGet && req.Path == PathContact:
		return h.responses.Text(http.StatusOK, "Contact Page"), nil
	case method == http.MethodGet && req.Path == PathDashboard:
		return h.responses.Text(http.StatusOK, "Dashboard Page"), nil
	default:
		return h.responses.Error(http.StatusNotFound, "not found"), nil
	}
}

func (h *Handler) submitContact(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	contentType := headerValue(req.Headers, headerContentType)

	fields, err := contact.ParseFields(req.Body, contentType)
	if err != nil {
		h.logger.Warn("failed to parse submission body", "error", err, "content_type", contentType)
		h.metrics.ObserveSubmission(OutcomeMalformed)
		return h.responses.Error(http.StatusBadRequest, err.Error())
	}

	sub, err := contact.FromFields(fields)
	if err != nil {
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Info("submission rejected", "missing", vErr.Missing)
			h.metrics.ObserveSubmission(OutcomeInvalid)
			return h.responses.Error(http.StatusBadRequest, vErr.Error())
		}
		h.metrics.ObserveSubmission(OutcomeInvalid)
		return h.responses.Error(http.StatusBadRequest, "invalid submission")
	}

	if err := h.store.Put(ctx, sub); err != nil {
		// Store detail goes to the log only; the caller gets a generic body.
		h.logger.Error("failed to persist submission", "error", err, "email", sub.Email)
		h.metrics.ObserveSubmission(OutcomeStoreError)
		return h.responses.Error(http.StatusInternalServerError, "failed to store submission")
	}

	h.logger.Info("contact submission accepted", "email", sub.Email, "name", sub.FullName())
	h.metrics.ObserveSubmission(OutcomeAccepted)

	// Notification is best-effort; a mail failure never fails the request.
	if err := h.notifier.SubmissionReceived(ctx, sub); err != nil {
		h.logger.Error("submission notification failed", "error", err)
	}

	return h.responses.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Form submitted successfully!",
	})
}

// headerValue looks up a header case-insensitively; API Gateway does not
// normalize header casing.
func headerValue(headers map[string]string, key string) string {
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
