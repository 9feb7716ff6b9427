// Package response builds the uniform API Gateway response envelopes:
// {exito, mensaje, datos} on success, {error, mensaje, ...context} on
// failure. Every response carries the CORS headers, failures included.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Cali99-droid/technical-test-smrtl/internal/apperr"
)

// Failure categories as they appear in the error envelope.
const (
	CategoryBadRequest  = "Bad Request"
	CategoryNotFound    = "Not Found"
	CategoryConflict    = "Conflict"
	CategoryUnavailable = "Service Unavailable"
	CategoryInternal    = "Internal Server Error"
)

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}

func write(status int, body map[string]interface{}) events.APIGatewayProxyResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		// The envelopes are built from plain maps and slices; this can
		// only trip on a programming error.
		encoded = []byte(`{"error":"Internal Server Error","mensaje":"Error interno del servidor"}`)
		status = http.StatusInternalServerError
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       string(encoded),
	}
}

// OK is a 200 success envelope.
func OK(mensaje string, datos interface{}) events.APIGatewayProxyResponse {
	return write(http.StatusOK, map[string]interface{}{
		"exito":   true,
		"mensaje": mensaje,
		"datos":   datos,
	})
}

// Created is a 201 success envelope.
func Created(mensaje string, datos interface{}) events.APIGatewayProxyResponse {
	return write(http.StatusCreated, map[string]interface{}{
		"exito":   true,
		"mensaje": mensaje,
		"datos":   datos,
	})
}

// List is a 200 success envelope for collections, with total and the
// resolved limit alongside the data.
func List(mensaje string, total, limite int, datos interface{}) events.APIGatewayProxyResponse {
	return write(http.StatusOK, map[string]interface{}{
		"exito":   true,
		"mensaje": mensaje,
		"total":   total,
		"limite":  limite,
		"datos":   datos,
	})
}

// Collection is a 200 success envelope for catalog pages, where the
// total is the catalog's own count and no local limit applies.
func Collection(mensaje string, total int, datos interface{}) events.APIGatewayProxyResponse {
	return write(http.StatusOK, map[string]interface{}{
		"exito":   true,
		"mensaje": mensaje,
		"total":   total,
		"datos":   datos,
	})
}

// NoContent is a 200 response with empty CORS-bearing body, used for
// preflight requests.
func NoContent() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers(),
		Body:       "",
	}
}

// Fail builds an error envelope. Extra context fields (the echoed id,
// camposFaltantes, the example payload) merge in beside error/mensaje.
func Fail(status int, category, mensaje string, context map[string]interface{}) events.APIGatewayProxyResponse {
	body := map[string]interface{}{
		"error":   category,
		"mensaje": mensaje,
	}
	for k, v := range context {
		body[k] = v
	}
	return write(status, body)
}

// BadRequest is a 400 error envelope.
func BadRequest(mensaje string, context map[string]interface{}) events.APIGatewayProxyResponse {
	return Fail(http.StatusBadRequest, CategoryBadRequest, mensaje, context)
}

// NotFound is a 404 error envelope.
func NotFound(mensaje string, context map[string]interface{}) events.APIGatewayProxyResponse {
	return Fail(http.StatusNotFound, CategoryNotFound, mensaje, context)
}

// FromError maps a tagged failure to its status and category. Detail for
// unexpected and configuration failures is suppressed when prod is true.
func FromError(err error, prod bool) events.APIGatewayProxyResponse {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return BadRequest(err.Error(), nil)
	case apperr.NotFound:
		return NotFound(err.Error(), nil)
	case apperr.Conflict:
		return Fail(http.StatusConflict, CategoryConflict, err.Error(), nil)
	case apperr.Unavailable:
		return Fail(http.StatusServiceUnavailable, CategoryUnavailable,
			"El servicio no está disponible en este momento, intenta más tarde", nil)
	default:
		// Configuration and Unknown both render as internal errors.
		var context map[string]interface{}
		if !prod {
			context = map[string]interface{}{"detalle": err.Error()}
		}
		return Fail(http.StatusInternalServerError, CategoryInternal,
			"Error interno del servidor", context)
	}
}
