package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

// Get returns one persisted record by its opaque identifier.
func (h *Handler) Get(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id, ok := req.PathParameters["id"]
	if !ok {
		return response.BadRequest("El parámetro id es requerido", nil)
	}
	if strings.TrimSpace(id) == "" {
		return response.BadRequest("El id debe ser una cadena válida", nil)
	}

	record, err := h.repo.Get(ctx, id)
	if err != nil {
		h.log.Error("fallo al consultar el personaje", zap.String("id", id), zap.Error(err))
		return response.FromError(err, h.prod)
	}
	if record == nil {
		return response.NotFound(
			fmt.Sprintf("No existe un personaje con el id %s", id),
			map[string]interface{}{"sugerencia": "Puedes crear uno con POST /records"})
	}

	return response.OK("Personaje encontrado", record)
}
