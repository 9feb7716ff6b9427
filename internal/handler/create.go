package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/domain"
	"github.com/Cali99-droid/technical-test-smrtl/internal/response"
)

// Create validates and persists a locally authored record. The pipeline
// runs in stages: body shape, required fields, collected type checks,
// sanitation, identity assignment, persistence.
func (h *Handler) Create(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	record, errResp := parseBody(req.Body)
	if errResp != nil {
		return *errResp
	}

	if missing := missingRequired(record); len(missing) > 0 {
		return response.BadRequest("Faltan campos requeridos", map[string]interface{}{
			"camposFaltantes": missing,
			"ejemplo":         domain.ExamplePayload,
		})
	}

	if errores := validateTypes(record); len(errores) > 0 {
		return response.BadRequest("El personaje tiene campos inválidos",
			map[string]interface{}{"errores": errores})
	}

	sanitize(record)

	record[domain.FieldID] = h.newID()
	now := h.now().UTC().Format(domain.TimeFormat)
	record[domain.FieldCreado] = now
	record[domain.FieldEditado] = now

	if err := h.repo.Create(ctx, record); err != nil {
		h.log.Error("fallo al crear el personaje", zap.Error(err))
		return response.FromError(err, h.prod)
	}

	return response.Created("Personaje creado exitosamente", record)
}

// parseBody applies the body-shape stage: non-empty, valid JSON, a JSON
// object. The returned response is non-nil on failure.
func parseBody(body string) (map[string]interface{}, *events.APIGatewayProxyResponse) {
	fail := func(mensaje string) *events.APIGatewayProxyResponse {
		resp := response.BadRequest(mensaje, nil)
		return &resp
	}

	if strings.TrimSpace(body) == "" {
		return nil, fail("El cuerpo de la petición está vacío")
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, fail("El cuerpo debe ser JSON válido")
	}

	record, ok := parsed.(map[string]interface{})
	if !ok || record == nil {
		return nil, fail("El cuerpo debe ser un objeto JSON")
	}
	return record, nil
}

func missingRequired(record map[string]interface{}) []string {
	var missing []string
	nombre, ok := record[domain.FieldNombre].(string)
	if !ok || strings.TrimSpace(nombre) == "" {
		missing = append(missing, domain.FieldNombre)
	}
	return missing
}

// validateTypes collects every violation instead of stopping at the
// first, so the caller gets the full list in one round trip.
func validateTypes(record map[string]interface{}) []string {
	var errores []string

	for _, field := range domain.StringFields {
		value, present := record[field]
		if !present {
			continue
		}
		switch value.(type) {
		case string:
		case []interface{}:
			errores = append(errores,
				fmt.Sprintf("El campo %s debe ser una cadena, no un arreglo", field))
		default:
			errores = append(errores,
				fmt.Sprintf("El campo %s debe ser una cadena", field))
		}
	}

	for _, field := range domain.ArrayFields {
		value, present := record[field]
		if !present {
			continue
		}
		if _, ok := value.([]interface{}); !ok {
			errores = append(errores,
				fmt.Sprintf("El campo %s debe ser un arreglo", field))
		}
	}

	for _, field := range domain.NumericFields {
		value, present := record[field]
		if !present {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue // already reported by the string check
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			errores = append(errores,
				fmt.Sprintf("El campo %s debe ser un valor numérico", field))
		}
	}

	if value, present := record[domain.FieldGenero]; present {
		if s, ok := value.(string); ok && !domain.ValidGenders[strings.ToLower(strings.TrimSpace(s))] {
			errores = append(errores,
				"El campo genero debe ser uno de: masculino, femenino, hermafrodita, ninguno, no aplica")
		}
	}

	return errores
}

// sanitize trims every string field, lower-cases genero and defaults the
// array fields to empty arrays. Runs only on validated records.
func sanitize(record map[string]interface{}) {
	for field, value := range record {
		if s, ok := value.(string); ok {
			record[field] = strings.TrimSpace(s)
		}
	}

	if s, ok := record[domain.FieldGenero].(string); ok {
		record[domain.FieldGenero] = strings.ToLower(s)
	}

	for _, field := range domain.ArrayFields {
		if _, present := record[field]; !present {
			record[field] = []interface{}{}
		}
	}
}
