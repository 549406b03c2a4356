package catalog

import (
	"fmt"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

// PageResult is one page of an aggregated listing plus the size of the whole listing.
type PageResult struct {
	Products []models.Product
	Total    int
}

// Paginate cuts the [ (page-1)*pageSize, page*pageSize ) window out of products and gives every
// product on the page a synthetic "{category}_{page}_{rank}" id. Pages past the end are empty.
func Paginate(products []models.Product, page, pageSize int, categoryLabel string) PageResult {
	total := len(products)
	if page < 1 || pageSize < 1 {
		return PageResult{Products: []models.Product{}, Total: total}
	}

	start := total
	if page-1 <= total/pageSize {
		start = clamp((page-1)*pageSize, 0, total)
	}
	end := clamp(start+pageSize, start, total)

	window := make([]models.Product, end-start)
	copy(window, products[start:end])
	for i := range window {
		window[i].ID = SyntheticID(categoryLabel, page, i+1)
	}

	return PageResult{Products: window, Total: total}
}

// SyntheticID is only meaningful within the response that carries it.
func SyntheticID(category string, page, rank int) string {
	return fmt.Sprintf("%s_%d_%d", category, page, rank)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
