package repo

import (
	"context"
	"sort"
)

// Outcome is the result of one provider call as seen by the aggregator.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeMiss    Outcome = "miss"
	OutcomeFailure Outcome = "failure"
)

// ProviderStats counts call outcomes for one provider.
type ProviderStats struct {
	Provider  string `json:"provider"`
	OK        int64  `json:"ok"`
	Misses    int64  `json:"misses"`
	Failures  int64  `json:"failures"`
	LastError string `json:"last_error,omitempty"`
}

// MetricsRepository records provider call outcomes and reports them per provider.
type MetricsRepository interface {
	Record(ctx context.Context, provider string, outcome Outcome, cause error) error
	ProviderStats(ctx context.Context) ([]ProviderStats, error)
}

func sortStats(stats []ProviderStats) {
	sort.Slice(stats, func(i, j int) bool { return stats[i].Provider < stats[j].Provider })
}
