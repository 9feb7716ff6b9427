package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cali99-droid/technical-test-smrtl/internal/apperr"
)

func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestOKEnvelope(t *testing.T) {
	resp := OK("Personaje encontrado", map[string]interface{}{"nombre": "Yoda"})

	assert.Equal(t, 200, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, true, body["exito"])
	assert.Equal(t, "Personaje encontrado", body["mensaje"])
	assert.Equal(t, map[string]interface{}{"nombre": "Yoda"}, body["datos"])
}

func TestCORSHeadersAlwaysPresent(t *testing.T) {
	for _, resp := range []struct {
		name    string
		headers map[string]string
	}{
		{"success", OK("ok", nil).Headers},
		{"created", Created("ok", nil).Headers},
		{"bad request", BadRequest("mal", nil).Headers},
		{"not found", NotFound("nada", nil).Headers},
		{"internal", FromError(apperr.New(apperr.Unknown, "x"), true).Headers},
		{"preflight", NoContent().Headers},
	} {
		t.Run(resp.name, func(t *testing.T) {
			assert.Equal(t, "application/json", resp.headers["Content-Type"])
			assert.Equal(t, "*", resp.headers["Access-Control-Allow-Origin"])
			assert.Equal(t, "true", resp.headers["Access-Control-Allow-Credentials"])
		})
	}
}

func TestListEnvelope(t *testing.T) {
	resp := List("2 personajes encontrados", 2, 50, []string{"a", "b"})

	body := decode(t, resp.Body)
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(50), body["limite"])
	assert.Equal(t, []interface{}{"a", "b"}, body["datos"])
}

func TestFailMergesContext(t *testing.T) {
	resp := BadRequest("Faltan campos requeridos", map[string]interface{}{
		"camposFaltantes": []string{"nombre"},
	})

	assert.Equal(t, 400, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.Equal(t, "Bad Request", body["error"])
	assert.Equal(t, []interface{}{"nombre"}, body["camposFaltantes"])
}

func TestFromErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperr.New(apperr.Validation, "mal"), 400, "Bad Request"},
		{"not found", apperr.New(apperr.NotFound, "nada"), 404, "Not Found"},
		{"conflict", apperr.New(apperr.Conflict, "duplicado"), 409, "Conflict"},
		{"unavailable", apperr.New(apperr.Unavailable, "sin red"), 503, "Service Unavailable"},
		{"configuration", apperr.New(apperr.Configuration, "sin tabla"), 500, "Internal Server Error"},
		{"unknown", apperr.New(apperr.Unknown, "boom"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := FromError(tt.err, false)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tt.category, body["error"])
		})
	}
}

func TestFromErrorSuppressesDetailInProd(t *testing.T) {
	err := apperr.New(apperr.Configuration, "la variable de entorno PERSONAJES_TABLE no está definida")

	dev := decode(t, FromError(err, false).Body)
	assert.Contains(t, dev, "detalle")

	prod := decode(t, FromError(err, true).Body)
	assert.NotContains(t, prod, "detalle")
	assert.Equal(t, "Error interno del servidor", prod["mensaje"])
}
