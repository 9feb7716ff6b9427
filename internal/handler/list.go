package handler

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/domain"
	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// List returns persisted records, most recently created first. The page
// size comes from limite (or limit), defaulting and clamping as needed.
func (h *Handler) List(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	limit := resolveLimit(req.QueryStringParameters)

	records, err := h.repo.List(ctx, int32(limit))
	if err != nil {
		h.log.Error("fallo al listar personajes", zap.Error(err))
		return response.FromError(err, h.prod)
	}

	sortByCreado(records)

	mensaje := fmt.Sprintf("%d personajes encontrados", len(records))
	if len(records) == 0 {
		mensaje = "No hay personajes registrados"
	}

	return response.List(mensaje, len(records), limit, records)
}

// resolveLimit accepts the page size under limite or limit. Absent,
// non-numeric, zero and negative values fall back to the default; values
// over the ceiling are clamped to it.
func resolveLimit(params map[string]string) int {
	raw := params["limite"]
	if raw == "" {
		raw = params["limit"]
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// sortByCreado orders records newest first. The timestamps sort
// lexicographically; a record missing creado compares equal to anything,
// so the sort is stable around it.
func sortByCreado(records []map[string]interface{}) {
	sort.SliceStable(records, func(i, j int) bool {
		a, okA := records[i][domain.FieldCreado].(string)
		b, okB := records[j][domain.FieldCreado].(string)
		if !okA || !okB {
			return false
		}
		return a > b
	})
}
