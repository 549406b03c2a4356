package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
	"github.com/rogerio-castellano/catalog-aggregator/internal/repo"
)

// CatalogService is what the product handlers need from the catalog package.
type CatalogService interface {
	List(ctx context.Context, q catalog.ListQuery) (catalog.PageResult, error)
	Get(ctx context.Context, category, id string) (*models.Product, error)
}

var _ CatalogService = (*catalog.Service)(nil)

// Server holds the dependencies shared by every handler.
type Server struct {
	catalog       CatalogService
	metricsRepo   repo.MetricsRepository
	providerCount int
	validate      *validator.Validate
	log           *zap.Logger
}

func NewServer(svc CatalogService, metrics repo.MetricsRepository, providerCount int, log *zap.Logger) *Server {
	return &Server{
		catalog:       svc,
		metricsRepo:   metrics,
		providerCount: providerCount,
		validate:      newValidator(),
		log:           log.Named("http"),
	}
}
