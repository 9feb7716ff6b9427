package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stretchr/testify/require"

	"github.com/Cali99-droid/technical-test-smrtl/internal/swapi"
)

// fakeCatalog counts calls and returns canned results.
type fakeCatalog struct {
	person    map[string]interface{}
	personErr error
	page      *swapi.Page
	pageErr   error
	calls     int
}

func (f *fakeCatalog) GetPerson(ctx context.Context, id string) (map[string]interface{}, error) {
	f.calls++
	return f.person, f.personErr
}

func (f *fakeCatalog) ListPeople(ctx context.Context, page int) (*swapi.Page, error) {
	f.calls++
	return f.page, f.pageErr
}

func (f *fakeCatalog) SearchPeople(ctx context.Context, name string) (*swapi.Page, error) {
	f.calls++
	return f.page, f.pageErr
}

// fakeRepo records inputs and returns canned results.
type fakeRepo struct {
	createErr error
	created   map[string]interface{}
	getOut    map[string]interface{}
	getErr    error
	listOut   []map[string]interface{}
	listErr   error
	lastLimit int32
	calls     int
}

func (f *fakeRepo) Create(ctx context.Context, record map[string]interface{}) error {
	f.calls++
	f.created = record
	return f.createErr
}

func (f *fakeRepo) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	f.calls++
	return f.getOut, f.getErr
}

func (f *fakeRepo) List(ctx context.Context, limit int32) ([]map[string]interface{}, error) {
	f.calls++
	f.lastLimit = limit
	return f.listOut, f.listErr
}

func newTestHandler(catalog *fakeCatalog, repo *fakeRepo) *Handler {
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	if repo == nil {
		repo = &fakeRepo{}
	}
	h := New(catalog, repo, zap.NewNop(), false)
	h.now = func() time.Time {
		return time.Date(2026, 1, 8, 10, 30, 0, 0, time.UTC)
	}
	h.newID = func() string { return "test-id-001" }
	return h
}

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}
