package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
	"github.com/rogerio-castellano/catalog-aggregator/internal/repo"
)

type stubCatalog struct {
	lastQuery catalog.ListQuery
	result    catalog.PageResult
	product   *models.Product
	err       error
}

func (s *stubCatalog) List(_ context.Context, q catalog.ListQuery) (catalog.PageResult, error) {
	s.lastQuery = q
	return s.result, s.err
}

func (s *stubCatalog) Get(_ context.Context, _, _ string) (*models.Product, error) {
	return s.product, s.err
}

type failingMetrics struct{}

func (failingMetrics) Record(context.Context, string, repo.Outcome, error) error { return nil }

func (failingMetrics) ProviderStats(context.Context) ([]repo.ProviderStats, error) {
	return nil, errors.New("redis down")
}

func newTestServer(svc CatalogService, metrics repo.MetricsRepository) *Server {
	if metrics == nil {
		metrics = repo.NewInMemoryMetricsRepository()
	}
	return NewServer(svc, metrics, 2, zap.NewNop())
}

func TestParseListQuery(t *testing.T) {
	s := newTestServer(&stubCatalog{}, nil)

	q, err := s.parseListQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, ListProductsQuery{N: 10, Page: 1}, q)

	q, err = s.parseListQuery(url.Values{
		"n":          {"3"},
		"page":       {"2"},
		"sort_by":    {"rating"},
		"sort_order": {"desc"},
	})
	require.NoError(t, err)
	assert.Equal(t, ListProductsQuery{N: 3, Page: 2, SortBy: "rating", SortOrder: "desc"}, q)
}

func TestParseListQuery_Errors(t *testing.T) {
	s := newTestServer(&stubCatalog{}, nil)

	tests := []struct {
		values url.Values
		want   string
	}{
		{url.Values{"n": {"11"}}, "'n' should not exceed 10"},
		{url.Values{"n": {"-1"}}, "'n' must be at least 1"},
		{url.Values{"page": {"x"}}, "'page' must be an integer"},
		{url.Values{"sort_by": {"id"}}, "'sort_by' must be one of: category company discount name price rating"},
		{url.Values{"sort_order": {"ASC"}}, "'sort_order' must be one of: asc desc"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := s.parseListQuery(tt.values)
			require.ErrorIs(t, err, ErrInvalidQuery)
			assert.Equal(t, tt.want, clientMessage(err))
		})
	}
}

func TestListCategoryProductsHandler_PassesQuery(t *testing.T) {
	svc := &stubCatalog{result: catalog.PageResult{
		Products: []models.Product{{ID: "Laptop_2_1", Name: "Zen"}},
		Total:    4,
	}}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories/Laptop/products?n=3&page=2&sort_by=price", nil)
	req = withURLParams(req, map[string]string{"category": "Laptop"})
	w := httptest.NewRecorder()
	s.ListCategoryProductsHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.ListQuery{Category: "Laptop", Page: 2, PageSize: 3, SortBy: "price"}, svc.lastQuery)
	assert.JSONEq(t, `{"products":[{"id":"Laptop_2_1","name":"Zen","category":"","price":0,"rating":0,"company":"","discount":0}],"total":4}`, w.Body.String())
}

func TestWriteServiceError(t *testing.T) {
	upstream := &provider.Error{Provider: "ecommerce1.com", Op: provider.OpFetchCategory, Status: 500, Err: provider.ErrProviderUnavailable}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid query", fmt.Errorf("%w: 'n' should not exceed 10", ErrInvalidQuery), http.StatusBadRequest, `{"error":"'n' should not exceed 10"}`},
		{"invalid page size", fmt.Errorf("%w: 11", catalog.ErrInvalidPageSize), http.StatusBadRequest, ""},
		{"invalid sort", catalog.ErrInvalidSortField, http.StatusBadRequest, ""},
		{"not found", catalog.ErrProductNotFound, http.StatusNotFound, `{"error":"Product not found"}`},
		{"provider", fmt.Errorf("aggregate: %w", upstream), http.StatusBadGateway, `{"error":"provider ecommerce1.com could not serve the request"}`},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&stubCatalog{}, nil)
			w := httptest.NewRecorder()

			s.writeServiceError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetCategoryProductHandler_NotFound(t *testing.T) {
	s := newTestServer(&stubCatalog{err: catalog.ErrProductNotFound}, nil)

	req := httptest.NewRequest(http.MethodGet, "/categories/Phone/products/42", nil)
	req = withURLParams(req, map[string]string{"category": "Phone", "id": "42"})
	w := httptest.NewRecorder()
	s.GetCategoryProductHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProviderMetricsHandler_RepositoryError(t *testing.T) {
	s := newTestServer(&stubCatalog{}, failingMetrics{})

	w := httptest.NewRecorder()
	s.GetProviderMetricsHandler(w, httptest.NewRequest(http.MethodGet, "/metrics/providers", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to fetch metrics"}`, w.Body.String())
}
