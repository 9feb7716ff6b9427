// Package swapi is the client for the external character catalog. It
// fetches raw English records, runs them through the translator and
// reports failures as tagged apperr values.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Cali99-droid/technical-test-smrtl/internal/apperr"
	"github.com/Cali99-droid/technical-test-smrtl/internal/domain"
	"github.com/Cali99-droid/technical-test-smrtl/internal/translator"
)

// Client talks to the catalog's REST API.
type Client struct {
	http    *http.Client
	baseURL string
}

// Page is one page of translated catalog results.
type Page struct {
	Total   int
	Results []map[string]interface{}
}

// New builds a Client for the given catalog root. The timeout bounds each
// request; an exceeded timeout surfaces as an Unavailable failure.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// GetPerson fetches one catalog record by its numeric identifier and
// returns it translated. A catalog 404 maps to NotFound; a transport
// failure (including timeout) maps to Unavailable.
func (c *Client) GetPerson(ctx context.Context, id string) (map[string]interface{}, error) {
	raw, err := c.fetch(ctx, fmt.Sprintf("%s/people/%s/", c.baseURL, id),
		apperr.Newf(apperr.NotFound, "El personaje con ID %s no existe en el catálogo externo", id))
	if err != nil {
		return nil, err
	}

	var record map[string]interface{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "respuesta del catálogo no es JSON válido", err)
	}

	return c.translate(record), nil
}

// ListPeople fetches one page of catalog records, translated.
func (c *Client) ListPeople(ctx context.Context, page int) (*Page, error) {
	endpoint := fmt.Sprintf("%s/people/?page=%d", c.baseURL, page)
	return c.fetchPage(ctx, endpoint,
		apperr.Newf(apperr.NotFound, "La página %d no existe en el catálogo externo", page))
}

// SearchPeople fetches catalog records matching a name query, translated.
func (c *Client) SearchPeople(ctx context.Context, name string) (*Page, error) {
	endpoint := fmt.Sprintf("%s/people/?search=%s", c.baseURL, url.QueryEscape(name))
	return c.fetchPage(ctx, endpoint,
		apperr.Newf(apperr.NotFound, "No hay personajes que coincidan con %q", name))
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, notFound error) (*Page, error) {
	raw, err := c.fetch(ctx, endpoint, notFound)
	if err != nil {
		return nil, err
	}

	var body struct {
		Count   int           `json:"count"`
		Results []interface{} `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "respuesta del catálogo no es JSON válido", err)
	}

	results := translator.TranslateRecordList(body.Results)
	for _, record := range results {
		c.attachID(record)
	}

	return &Page{Total: body.Count, Results: results}, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, notFound error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "no se pudo construir la petición al catálogo", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "no se recibió respuesta del catálogo externo", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, notFound
	case resp.StatusCode != http.StatusOK:
		return nil, apperr.Newf(apperr.Unknown, "respuesta inesperada del catálogo externo: %d", resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, "no se pudo leer la respuesta del catálogo externo", err)
	}
	return buf, nil
}

// translate renders a raw record local and derives its numeric id from
// the resource URL.
func (c *Client) translate(record map[string]interface{}) map[string]interface{} {
	translated := translator.TranslateRecord(record)
	c.attachID(translated)
	return translated
}

func (c *Client) attachID(record map[string]interface{}) {
	rawURL, ok := record[domain.FieldURL].(string)
	if !ok {
		return
	}
	if id := translator.ExtractIDFromURL(rawURL); id != "" {
		record[domain.FieldID] = id
	}
}
