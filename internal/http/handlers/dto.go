package handlers

import (
	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
	"github.com/rogerio-castellano/catalog-aggregator/internal/repo"
)

// ListProductsQuery is the decoded query string of a category listing.
type ListProductsQuery struct {
	N         int    `query:"n" validate:"min=1,max=10"`
	Page      int    `query:"page" validate:"min=1"`
	SortBy    string `query:"sort_by" validate:"omitempty,sortfield"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type ProductResponse struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Company  string  `json:"company"`
	Discount float64 `json:"discount"`
}

type ProductsSearchResult struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProviderStatsResponse struct {
	Provider  string `json:"provider"`
	OK        int64  `json:"ok"`
	Misses    int64  `json:"misses"`
	Failures  int64  `json:"failures"`
	LastError string `json:"last_error,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Providers int    `json:"providers"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Rating:   p.Rating,
		Company:  p.Company,
		Discount: p.Discount,
	}
}

func toProviderStatsResponse(s repo.ProviderStats) ProviderStatsResponse {
	return ProviderStatsResponse{
		Provider:  s.Provider,
		OK:        s.OK,
		Misses:    s.Misses,
		Failures:  s.Failures,
		LastError: s.LastError,
	}
}
