package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
)

// ErrNoProviders is returned when a source yields an empty provider list.
var ErrNoProviders = errors.New("no providers configured")

// ProviderRepository yields the provider list in priority order. It is read once at startup.
type ProviderRepository interface {
	GetAll(ctx context.Context) ([]provider.Provider, error)
}

// StaticProviderRepository serves providers taken from configuration.
type StaticProviderRepository struct {
	providers []provider.Provider
}

func NewStaticProviderRepository(providers []provider.Provider) *StaticProviderRepository {
	return &StaticProviderRepository{providers: providers}
}

// GetAll implements ProviderRepository.
func (r *StaticProviderRepository) GetAll(_ context.Context) ([]provider.Provider, error) {
	return normalizeAll(r.providers)
}

func normalizeAll(in []provider.Provider) ([]provider.Provider, error) {
	if len(in) == 0 {
		return nil, ErrNoProviders
	}
	out := make([]provider.Provider, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, p := range in {
		n, err := p.Normalize()
		if err != nil {
			return nil, err
		}
		if seen[n.Name] {
			return nil, errors.New("duplicate provider name: " + n.Name)
		}
		seen[n.Name] = true
		out = append(out, n)
	}
	return out, nil
}
