package router

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

// spyHandlers records which operation was dispatched.
type spyHandlers struct {
	called string
	lastID string
}

func (s *spyHandlers) mark(op string, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	s.called = op
	s.lastID = req.PathParameters["id"]
	return response.OK(op, nil)
}

func (s *spyHandlers) GetExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return s.mark("GetExternal", req)
}

func (s *spyHandlers) ListExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return s.mark("ListExternal", req)
}

func (s *spyHandlers) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return s.mark("Create", req)
}

func (s *spyHandlers) Get(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return s.mark("Get", req)
}

func (s *spyHandlers) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	return s.mark("List", req)
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		expected string
		wantID   string
	}{
		{"fetch external", "GET", "/records/external/4", "GetExternal", "4"},
		{"fetch external trailing slash", "GET", "/records/external/4/", "GetExternal", "4"},
		{"list external", "GET", "/records/external", "ListExternal", ""},
		{"create", "POST", "/records", "Create", ""},
		{"get by id", "GET", "/records/abc-123", "Get", "abc-123"},
		{"list", "GET", "/records", "List", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyHandlers{}
			r := New(spy)

			resp := r.Dispatch(context.Background(), events.APIGatewayProxyRequest{
				HTTPMethod: tt.method,
				Path:       tt.path,
			})

			if resp.StatusCode != 200 {
				t.Fatalf("Dispatch(%s %s) status = %d", tt.method, tt.path, resp.StatusCode)
			}
			if spy.called != tt.expected {
				t.Errorf("Dispatch(%s %s) called %q, want %q", tt.method, tt.path, spy.called, tt.expected)
			}
			if spy.lastID != tt.wantID {
				t.Errorf("Dispatch(%s %s) id = %q, want %q", tt.method, tt.path, spy.lastID, tt.wantID)
			}
		})
	}
}

func TestDispatchUnknownRoute(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/unknown"},
		{"DELETE", "/records/abc"},
		{"PUT", "/records/abc"},
		{"PATCH", "/records/abc"},
		{"POST", "/records/external"},
		{"GET", "/records/external/4/films"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			spy := &spyHandlers{}
			r := New(spy)

			resp := r.Dispatch(context.Background(), events.APIGatewayProxyRequest{
				HTTPMethod: tt.method,
				Path:       tt.path,
			})

			if resp.StatusCode != 404 {
				t.Errorf("Dispatch(%s %s) status = %d, want 404", tt.method, tt.path, resp.StatusCode)
			}
			if spy.called != "" {
				t.Errorf("Dispatch(%s %s) unexpectedly called %q", tt.method, tt.path, spy.called)
			}
		})
	}
}

func TestDispatchPreflight(t *testing.T) {
	r := New(&spyHandlers{})

	resp := r.Dispatch(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "OPTIONS",
		Path:       "/records",
	})

	if resp.StatusCode != 200 {
		t.Fatalf("OPTIONS status = %d, want 200", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("OPTIONS response missing CORS headers")
	}
}

func TestDispatchKeepsGatewayPathParameters(t *testing.T) {
	spy := &spyHandlers{}
	r := New(spy)

	// API Gateway already resolved the path parameter; it wins.
	r.Dispatch(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     "GET",
		Path:           "/records/abc",
		PathParameters: map[string]string{"id": "abc"},
	})

	if spy.lastID != "abc" {
		t.Errorf("id = %q, want \"abc\"", spy.lastID)
	}
}
