// Package handler implements the request handlers behind the API Gateway
// routes. Each handler validates its input, makes exactly one downstream
// call and shapes the response envelope.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cali99-droid/technical-test-smrtl/internal/swapi"
)

// Catalog is the external character catalog the handlers consume.
type Catalog interface {
	GetPerson(ctx context.Context, id string) (map[string]interface{}, error)
	ListPeople(ctx context.Context, page int) (*swapi.Page, error)
	SearchPeople(ctx context.Context, name string) (*swapi.Page, error)
}

// Repository is the slice of the record store the handlers consume.
// Update and delete exist on the store but are not routed.
type Repository interface {
	Create(ctx context.Context, record map[string]interface{}) error
	Get(ctx context.Context, id string) (map[string]interface{}, error)
	List(ctx context.Context, limit int32) ([]map[string]interface{}, error)
}

// Handler holds the collaborators shared by every operation.
type Handler struct {
	catalog Catalog
	repo    Repository
	log     *zap.Logger
	prod    bool

	// Seams for tests.
	now   func() time.Time
	newID func() string
}

// New builds a Handler. prod controls whether internal failure detail is
// suppressed from responses.
func New(catalog Catalog, repo Repository, log *zap.Logger, prod bool) *Handler {
	return &Handler{
		catalog: catalog,
		repo:    repo,
		log:     log,
		prod:    prod,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}
