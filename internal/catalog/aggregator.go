package catalog

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

// Aggregator merges one category across every configured provider.
type Aggregator struct {
	providers   []ProviderClient
	concurrency int
	log         *zap.Logger
}

// NewAggregator keeps providers in the given order. concurrency < 1 is treated as 1.
func NewAggregator(providers []ProviderClient, concurrency int, log *zap.Logger) *Aggregator {
	return &Aggregator{
		providers:   providers,
		concurrency: max(concurrency, 1),
		log:         log.Named("aggregator"),
	}
}

// Aggregate returns the concatenation of every provider's products, in provider order and
// then upstream order. A single provider failure fails the whole call and cancels the rest.
func (a *Aggregator) Aggregate(ctx context.Context, category string) ([]models.Product, error) {
	results := make([][]models.Product, len(a.providers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, p := range a.providers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			products, err := p.FetchCategory(gctx, category)
			if err != nil {
				return err
			}
			results[i] = products
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.log.Warn("category aggregation failed",
			zap.String("category", category),
			zap.Error(err))
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]models.Product, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}
