package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
	"github.com/rogerio-castellano/catalog-aggregator/internal/repo"
)

// ProviderClient is one upstream catalog. FetchByID returns (nil, nil) when the product is absent.
type ProviderClient interface {
	Name() string
	FetchCategory(ctx context.Context, category string) ([]models.Product, error)
	FetchByID(ctx context.Context, category, id string) (*models.Product, error)
}

var _ ProviderClient = (*provider.Client)(nil)

// instrumentedClient records every call outcome in the metrics repository.
type instrumentedClient struct {
	next    ProviderClient
	metrics repo.MetricsRepository
	log     *zap.Logger
}

// Instrument wraps each client so its calls are counted per provider.
func Instrument(clients []ProviderClient, metrics repo.MetricsRepository, log *zap.Logger) []ProviderClient {
	out := make([]ProviderClient, len(clients))
	for i, c := range clients {
		out[i] = &instrumentedClient{next: c, metrics: metrics, log: log}
	}
	return out
}

func (c *instrumentedClient) Name() string {
	return c.next.Name()
}

func (c *instrumentedClient) FetchCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := c.next.FetchCategory(ctx, category)
	switch {
	case err == nil:
		c.record(ctx, repo.OutcomeOK, nil)
	case errors.Is(err, context.Canceled):
		// another provider already failed the request
	default:
		c.record(ctx, repo.OutcomeFailure, err)
	}
	return products, err
}

func (c *instrumentedClient) FetchByID(ctx context.Context, category, id string) (*models.Product, error) {
	p, err := c.next.FetchByID(ctx, category, id)
	switch {
	case err != nil && errors.Is(err, context.Canceled):
	case err != nil:
		c.record(ctx, repo.OutcomeFailure, err)
	case p == nil:
		c.record(ctx, repo.OutcomeMiss, nil)
	default:
		c.record(ctx, repo.OutcomeOK, nil)
	}
	return p, err
}

func (c *instrumentedClient) record(ctx context.Context, outcome repo.Outcome, cause error) {
	// the request context may be canceled by the time we get here
	if err := c.metrics.Record(context.WithoutCancel(ctx), c.Name(), outcome, cause); err != nil {
		c.log.Warn("failed to record provider outcome",
			zap.String("provider", c.Name()),
			zap.String("outcome", string(outcome)),
			zap.Error(err))
	}
}
