package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

// Resolver finds a single product by asking providers in priority order.
type Resolver struct {
	providers   []ProviderClient
	concurrency int
	log         *zap.Logger
}

// NewResolver keeps providers in priority order. concurrency < 1 is treated as 1.
func NewResolver(providers []ProviderClient, concurrency int, log *zap.Logger) *Resolver {
	return &Resolver{
		providers:   providers,
		concurrency: max(concurrency, 1),
		log:         log.Named("resolver"),
	}
}

// Resolve returns the first hit in provider order, unchanged. Provider errors are logged and
// treated as a miss so the next provider gets a chance. ErrProductNotFound when nobody has it.
//
// Up to concurrency providers are queried at once; a lower priority hit never wins over a
// higher priority provider that is still answering.
func (r *Resolver) Resolve(ctx context.Context, category, id string) (*models.Product, error) {
	if r.concurrency == 1 {
		return r.resolveSequential(ctx, category, id)
	}

	ctx, cancel := context.WithCancel(ctx)

	slots := make([]chan *models.Product, len(r.providers))
	for i := range slots {
		slots[i] = make(chan *models.Product, 1)
	}

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	launched := make(chan struct{})
	// no provider call outlives Resolve
	defer func() {
		cancel()
		<-launched
		_ = g.Wait()
	}()

	go func() {
		defer close(launched)
		for i, p := range r.providers {
			g.Go(func() error {
				slots[i] <- r.fetch(ctx, p, category, id)
				return nil
			})
		}
	}()

	for i := range r.providers {
		select {
		case p := <-slots[i]:
			if p != nil {
				return p, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, ErrProductNotFound
}

func (r *Resolver) resolveSequential(ctx context.Context, category, id string) (*models.Product, error) {
	for _, p := range r.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if product := r.fetch(ctx, p, category, id); product != nil {
			return product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *Resolver) fetch(ctx context.Context, p ProviderClient, category, id string) *models.Product {
	if ctx.Err() != nil {
		return nil
	}
	product, err := p.FetchByID(ctx, category, id)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			r.log.Warn("provider lookup failed, trying next provider",
				zap.String("provider", p.Name()),
				zap.String("category", category),
				zap.String("id", id),
				zap.Error(err))
		}
		return nil
	}
	return product
}
