package server

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/connectingthedots/contact-api/internal/gateway"
)

// maxBodyBytes caps request bodies; API Gateway enforces a similar limit in
// the Lambda deployment.
const maxBodyBytes = 1 << 20

// Adapter serves the gateway handler over plain HTTP, so local runs and
// container deploys route requests exactly like the Lambda deployment.
type Adapter struct {
	handler *gateway.Handler
}

// NewAdapter wraps a gateway handler as an http.Handler.
func NewAdapter(handler *gateway.Handler) *Adapter {
	if handler == nil {
		panic("server: gateway handler cannot be nil")
	}
	return &Adapter{handler: handler}
}

func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	evt := events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    headers,
		Body:       string(body),
	}

	resp, err := a.handler.Handle(r.Context(), evt)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
