package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

type fakeProvider struct {
	name     string
	products []models.Product
	byID     map[string]models.Product
	err      error
	delay    time.Duration

	categoryCalls atomic.Int32
	idCalls       atomic.Int32
	inFlight      atomic.Int32
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) wait(ctx context.Context) error {
	if f.delay == 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeProvider) FetchCategory(ctx context.Context, _ string) ([]models.Product, error) {
	f.categoryCalls.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProvider) FetchByID(ctx context.Context, _, id string) (*models.Product, error) {
	f.idCalls.Add(1)
	f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: id, Category: "Laptop", Price: price, Company: "X"}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func clients(fakes ...*fakeProvider) []ProviderClient {
	out := make([]ProviderClient, len(fakes))
	for i, f := range fakes {
		out[i] = f
	}
	return out
}

func list(products ...models.Product) []models.Product {
	return products
}
