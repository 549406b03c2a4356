// Package catalog merges, orders and pages products coming from several upstream providers.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

const (
	MaxPageSize     = 10
	DefaultPageSize = 10
	DefaultPage     = 1
)

// ListQuery describes one category listing request.
type ListQuery struct {
	Category  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Validate rejects bad paging or sorting before any provider is contacted.
func (q ListQuery) Validate() error {
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, q.PageSize)
	}
	if q.Page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, q.Page)
	}
	return ValidateSort(q.SortBy, q.SortOrder)
}

// Service runs the aggregate, sort and paginate pipeline and the lookup fallback.
type Service struct {
	aggregator *Aggregator
	resolver   *Resolver
	log        *zap.Logger
}

// NewService wires both paths to the same provider list.
func NewService(providers []ProviderClient, concurrency int, log *zap.Logger) *Service {
	return &Service{
		aggregator: NewAggregator(providers, concurrency, log),
		resolver:   NewResolver(providers, concurrency, log),
		log:        log.Named("catalog"),
	}
}

// List returns one page of the merged category listing.
func (s *Service) List(ctx context.Context, q ListQuery) (PageResult, error) {
	if err := q.Validate(); err != nil {
		return PageResult{}, err
	}

	products, err := s.aggregator.Aggregate(ctx, q.Category)
	if err != nil {
		return PageResult{}, err
	}

	sorted, err := Sort(products, q.SortBy, q.SortOrder)
	if err != nil {
		return PageResult{}, err
	}

	result := Paginate(sorted, q.Page, q.PageSize, q.Category)
	s.log.Debug("category listed",
		zap.String("category", q.Category),
		zap.Int("page", q.Page),
		zap.Int("page_size", q.PageSize),
		zap.Int("returned", len(result.Products)),
		zap.Int("total", result.Total))
	return result, nil
}

// Get returns a product by its provider id.
func (s *Service) Get(ctx context.Context, category, id string) (*models.Product, error) {
	return s.resolver.Resolve(ctx, category, id)
}
