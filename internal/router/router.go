// Package router dispatches API Gateway proxy requests to the handler
// for their method and path.
package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

// Handlers is the set of operations the router can dispatch to.
type Handlers interface {
	GetExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	ListExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	Get(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
	List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse
}

// Router matches a request to an operation.
type Router struct {
	h Handlers
}

// New creates a Router over the given handlers.
func New(h Handlers) *Router {
	return &Router{h: h}
}

// Dispatch routes one request. Unknown routes get a 404 envelope;
// OPTIONS requests get an empty CORS response for preflight.
func (r *Router) Dispatch(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == http.MethodOptions {
		return response.NoContent()
	}

	segments := splitPath(req.Path)

	switch {
	case req.HTTPMethod == http.MethodGet && matches(segments, "records", "external", "*"):
		return r.h.GetExternal(ctx, withID(req, segments[2]))

	case req.HTTPMethod == http.MethodGet && matches(segments, "records", "external"):
		return r.h.ListExternal(ctx, req)

	case req.HTTPMethod == http.MethodPost && matches(segments, "records"):
		return r.h.Create(ctx, req)

	case req.HTTPMethod == http.MethodGet && matches(segments, "records", "*"):
		return r.h.Get(ctx, withID(req, segments[1]))

	case req.HTTPMethod == http.MethodGet && matches(segments, "records"):
		return r.h.List(ctx, req)
	}

	return response.NotFound("Recurso no encontrado", map[string]interface{}{
		"ruta": req.HTTPMethod + " " + req.Path,
	})
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// matches compares path segments against a pattern where "*" accepts any
// single non-empty segment.
func matches(segments []string, pattern ...string) bool {
	if len(segments) != len(pattern) {
		return false
	}
	for i, p := range pattern {
		if p == "*" {
			continue
		}
		if segments[i] != p {
			return false
		}
	}
	return true
}

// withID fills the id path parameter when API Gateway did not (direct
// Lambda invocations, local testing).
func withID(req events.APIGatewayProxyRequest, id string) events.APIGatewayProxyRequest {
	if req.PathParameters == nil {
		req.PathParameters = map[string]string{}
	}
	if _, ok := req.PathParameters["id"]; !ok {
		req.PathParameters["id"] = id
	}
	return req
}
