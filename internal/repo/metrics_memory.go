package repo

import (
	"context"
	"sync"
)

type InMemoryMetricsRepository struct {
	mu    sync.Mutex
	stats map[string]*ProviderStats
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{stats: make(map[string]*ProviderStats)}
}

// Record implements MetricsRepository.
func (r *InMemoryMetricsRepository) Record(_ context.Context, provider string, outcome Outcome, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[provider]
	if !ok {
		s = &ProviderStats{Provider: provider}
		r.stats[provider] = s
	}

	switch outcome {
	case OutcomeOK:
		s.OK++
	case OutcomeMiss:
		s.Misses++
	case OutcomeFailure:
		s.Failures++
		if cause != nil {
			s.LastError = cause.Error()
		}
	}
	return nil
}

// ProviderStats implements MetricsRepository.
func (r *InMemoryMetricsRepository) ProviderStats(_ context.Context) ([]ProviderStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ProviderStats, 0, len(r.stats))
	for _, s := range r.stats {
		out = append(out, *s)
	}
	sortStats(out)
	return out, nil
}

// Clear drops every counter.
func (r *InMemoryMetricsRepository) Clear() {
	r.mu.Lock()
	r.stats = make(map[string]*ProviderStats)
	r.mu.Unlock()
}
