package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

// GetExternal fetches one catalog record by numeric id and returns it
// translated. Validation failures never reach the catalog.
func (h *Handler) GetExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id, ok := req.PathParameters["id"]
	if !ok || id == "" {
		return response.BadRequest("El parámetro id es requerido", nil)
	}

	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return response.BadRequest("El id debe ser un número positivo",
			map[string]interface{}{"recibido": id})
	}

	record, err := h.catalog.GetPerson(ctx, id)
	if err != nil {
		h.log.Warn("fallo al consultar el catálogo externo",
			zap.String("id", id), zap.Error(err))
		return response.FromError(err, h.prod)
	}
	if len(record) == 0 {
		return response.NotFound(
			fmt.Sprintf("No se encontró el personaje con ID %s", id), nil)
	}

	return response.OK("Personaje obtenido exitosamente", record)
}

// ListExternal returns one translated page of the catalog. With a nombre
// query it searches by name instead of paging.
func (h *Handler) ListExternal(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if nombre := strings.TrimSpace(req.QueryStringParameters["nombre"]); nombre != "" {
		page, err := h.catalog.SearchPeople(ctx, nombre)
		if err != nil {
			h.log.Warn("fallo al buscar en el catálogo externo",
				zap.String("nombre", nombre), zap.Error(err))
			return response.FromError(err, h.prod)
		}
		return response.Collection(
			fmt.Sprintf("%d personajes coinciden con %q", page.Total, nombre),
			page.Total, page.Results)
	}

	pageNum := 1
	if raw, ok := req.QueryStringParameters["page"]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return response.BadRequest("El parámetro page debe ser un número positivo",
				map[string]interface{}{"recibido": raw})
		}
		pageNum = n
	}

	page, err := h.catalog.ListPeople(ctx, pageNum)
	if err != nil {
		h.log.Warn("fallo al listar el catálogo externo",
			zap.Int("page", pageNum), zap.Error(err))
		return response.FromError(err, h.prod)
	}

	return response.Collection("Personajes obtenidos exitosamente", page.Total, page.Results)
}
