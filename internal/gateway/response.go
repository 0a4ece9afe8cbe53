package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerContentType  = "Content-Type"

	// allowedMethods is advertised on every regular response;
	// preflightMethods on the OPTIONS fast path.
	allowedMethods   = "GET, POST, OPTIONS"
	preflightMethods = "POST, OPTIONS"
)

// ResponseBuilder constructs API Gateway responses. Every response it
// produces carries the full CORS header set, including error responses;
// browsers drop bodies of 4xx/5xx responses that lack them.
type ResponseBuilder struct {
	origin string
}

// NewResponseBuilder creates a builder allowing the given origin.
func NewResponseBuilder(origin string) *ResponseBuilder {
	if origin == "" {
		origin = "*"
	}
	return &ResponseBuilder{origin: origin}
}

func (b *ResponseBuilder) headers(methods string) map[string]string {
	return map[string]string{
		headerAllowOrigin:  b.origin,
		headerAllowMethods: methods,
		headerAllowHeaders: headerContentType,
	}
}

// JSON builds a response with a JSON-encoded body.
func (b *ResponseBuilder) JSON(status int, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		return b.Error(http.StatusInternalServerError, "internal server error")
	}
	headers := b.headers(allowedMethods)
	headers[headerContentType] = "application/json"
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// Text builds a plain-text response.
func (b *ResponseBuilder) Text(status int, body string) events.APIGatewayProxyResponse {
	headers := b.headers(allowedMethods)
	headers[headerContentType] = "text/plain"
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

// Error builds a structured JSON error body. The message is what the caller
// sees; internal detail belongs in the log, not here.
func (b *ResponseBuilder) Error(status int, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	headers := b.headers(allowedMethods)
	headers[headerContentType] = "application/json"
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// Preflight builds the CORS preflight response: 200, no body.
func (b *ResponseBuilder) Preflight() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    b.headers(preflightMethods),
		Body:       "",
	}
}
