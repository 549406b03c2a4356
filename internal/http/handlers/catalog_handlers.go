package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
)

// ListCategoryProductsHandler godoc
// @Summary List products of a category across all providers
// @Description Merges every provider's listing, sorts it and returns one page. Ids are only valid within the response.
// @Tags products
// @Produce json
// @Param category path string true "Category name"
// @Param n query int false "Page size (1-10)" default(10)
// @Param page query int false "Page number" default(1)
// @Param sort_by query string false "Sort field" Enums(name, category, company, price, rating, discount)
// @Param sort_order query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /categories/{category}/products [get]
func (s *Server) ListCategoryProductsHandler(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	q, err := s.parseListQuery(r.URL.Query())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	result, err := s.catalog.List(r.Context(), catalog.ListQuery{
		Category:  category,
		Page:      q.Page,
		PageSize:  q.N,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	response := ProductsSearchResult{
		Products: make([]ProductResponse, len(result.Products)),
		Total:    result.Total,
	}
	for i, p := range result.Products {
		response.Products[i] = toProductResponse(p)
	}
	s.respond(w, http.StatusOK, response)
}

// GetCategoryProductHandler godoc
// @Summary Get a product by its provider id
// @Description Asks providers in configured order and returns the first match unchanged.
// @Tags products
// @Produce json
// @Param category path string true "Category name"
// @Param id path string true "Provider product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /categories/{category}/products/{id} [get]
func (s *Server) GetCategoryProductHandler(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	id := chi.URLParam(r, "id")

	product, err := s.catalog.Get(r.Context(), category, id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(*product))
}
