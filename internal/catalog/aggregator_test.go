package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
)

func TestAggregator_ConcatenatesInProviderOrder(t *testing.T) {
	for _, concurrency := range []int{0, 1, 4} {
		a := &fakeProvider{name: "a", products: list(product("a1", 1), product("a2", 2)), delay: 20 * time.Millisecond}
		b := &fakeProvider{name: "b", products: list(product("b1", 3))}
		c := &fakeProvider{name: "c"}

		agg := NewAggregator(clients(a, b, c), concurrency, zap.NewNop())
		got, err := agg.Aggregate(context.Background(), "Laptop")

		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "a2", "b1"}, ids(got), "concurrency %d", concurrency)
		assert.EqualValues(t, 1, a.categoryCalls.Load())
		assert.EqualValues(t, 1, b.categoryCalls.Load())
		assert.EqualValues(t, 1, c.categoryCalls.Load())
	}
}

func TestAggregator_FailFast(t *testing.T) {
	failure := &provider.Error{Provider: "b", Op: provider.OpFetchCategory, Status: 500, Err: provider.ErrProviderUnavailable}

	for _, concurrency := range []int{1, 3} {
		a := &fakeProvider{name: "a", products: list(product("a1", 1))}
		b := &fakeProvider{name: "b", err: failure}
		c := &fakeProvider{name: "c", products: list(product("c1", 1))}

		agg := NewAggregator(clients(a, b, c), concurrency, zap.NewNop())
		got, err := agg.Aggregate(context.Background(), "Laptop")

		assert.Nil(t, got, "no partial results with concurrency %d", concurrency)
		assert.ErrorIs(t, err, provider.ErrProviderUnavailable)
		assert.ErrorIs(t, err, failure)
	}
}

func TestAggregator_FailureCancelsSlowProviders(t *testing.T) {
	slow := &fakeProvider{name: "slow", products: list(product("s1", 1)), delay: 5 * time.Second}
	broken := &fakeProvider{name: "broken", err: provider.ErrMalformedRecord}

	agg := NewAggregator(clients(slow, broken), 2, zap.NewNop())

	start := time.Now()
	_, err := agg.Aggregate(context.Background(), "Laptop")

	assert.ErrorIs(t, err, provider.ErrMalformedRecord)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAggregator_SequentialStopsAtFirstFailure(t *testing.T) {
	a := &fakeProvider{name: "a", err: provider.ErrProviderUnavailable}
	b := &fakeProvider{name: "b", products: list(product("b1", 1))}

	_, err := NewAggregator(clients(a, b), 1, zap.NewNop()).Aggregate(context.Background(), "Laptop")

	assert.ErrorIs(t, err, provider.ErrProviderUnavailable)
	assert.EqualValues(t, 0, b.categoryCalls.Load())
}
