package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedRand always returns the same draw and records the bounds it was asked for.
type fixedRand struct {
	value int
	seen  []int
}

func (r *fixedRand) IntN(n int) int {
	r.seen = append(r.seen, n)
	return r.value % n
}

func weighted(weights ...int) []domain.Quote {
	quotes := make([]domain.Quote, len(weights))
	for i, w := range weights {
		quotes[i] = domain.NewQuote("quote text number", "Source")
		quotes[i].ID = int64(i + 1)
		quotes[i].Weight = w
	}

	return quotes
}

func TestNewSelectionEngine_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewSelectionEngine(SelectionEngineConfig{})
	})
}

func TestSelectionEngine_Pick_EmptyCorpus(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Quote{}, nil)

	engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Logger: discardLogger()})

	q, found, err := engine.Pick(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, q)
}

func TestSelectionEngine_Pick_IncrementsWatchCount(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	quotes := weighted(5)
	quotes[0].WatchCount = 41

	repo.EXPECT().ListAll(mock.Anything).Return(quotes, nil)
	repo.EXPECT().IncrementCounter(mock.Anything, int64(1), domain.CounterWatches, int64(1)).Return(42, nil)

	engine := NewSelectionEngine(SelectionEngineConfig{
		Repository: repo,
		Random:     &fixedRand{},
		Logger:     discardLogger(),
	})

	q, found, err := engine.Pick(context.Background())

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, int64(42), q.WatchCount)
}

func TestSelectionEngine_Pick_AllZeroWeightsStillReturnsQuote(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return(weighted(0, 0, 0), nil)
	repo.EXPECT().IncrementCounter(mock.Anything, int64(3), domain.CounterWatches, int64(1)).Return(1, nil)

	rnd := &fixedRand{value: 2}
	engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Random: rnd, Logger: discardLogger()})

	q, found, err := engine.Pick(context.Background())

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(3), q.ID)
	assert.Equal(t, []int{3}, rnd.seen, "uniform draw over all quotes")
}

func TestSelectionEngine_Pick_ZeroWeightNeverChosen(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return(weighted(50, 0), nil)
	repo.EXPECT().IncrementCounter(mock.Anything, int64(1), domain.CounterWatches, int64(1)).Return(1, nil)

	engine := NewSelectionEngine(SelectionEngineConfig{
		Repository: repo,
		Random:     NewLockedRand(7),
		Logger:     discardLogger(),
	})

	for range 1000 {
		q, found, err := engine.Pick(context.Background())
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, int64(1), q.ID)
	}
}

func TestSelectionEngine_Pick_FollowsWeights(t *testing.T) {
	const trials = 10000

	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return(weighted(10, 10, 80), nil)

	counts := map[int64]int{}
	repo.EXPECT().IncrementCounter(mock.Anything, mock.Anything, domain.CounterWatches, int64(1)).
		RunAndReturn(func(_ context.Context, id int64, _ domain.Counter, _ int64) (int64, error) {
			counts[id]++
			return int64(counts[id]), nil
		})

	engine := NewSelectionEngine(SelectionEngineConfig{
		Repository: repo,
		Random:     NewLockedRand(20240601),
		Logger:     discardLogger(),
	})

	for range trials {
		_, found, err := engine.Pick(context.Background())
		require.NoError(t, err)
		require.True(t, found)
	}

	expected := map[int64]float64{1: 0.1 * trials, 2: 0.1 * trials, 3: 0.8 * trials}

	chiSquare := 0.0
	for id, want := range expected {
		diff := float64(counts[id]) - want
		chiSquare += diff * diff / want
	}

	// 13.82 is the 0.999 quantile of chi-square with two degrees of freedom.
	assert.Less(t, chiSquare, 13.82, "observed %v", counts)
}

func TestSelectionEngine_Pick_NegativeWeightLogged(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	repo := mocks.NewMockQuoteRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return(weighted(-5, 10), nil)
	repo.EXPECT().IncrementCounter(mock.Anything, int64(2), domain.CounterWatches, int64(1)).Return(1, nil)

	rnd := &fixedRand{value: 3}
	engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Random: rnd, Logger: logger})

	q, found, err := engine.Pick(context.Background())

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), q.ID)
	assert.Equal(t, []int{10}, rnd.seen, "negative weight samples as zero")
	assert.Contains(t, buf.String(), "quote weight out of range")
	assert.Contains(t, buf.String(), "weight=-5 out of range, corrected to 0")
}

func TestSelectionEngine_Pick_Errors(t *testing.T) {
	storeErr := domain.NewUnavailableError("quote-repository", "list all")

	t.Run("listing fails", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().ListAll(mock.Anything).Return(nil, storeErr)

		engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Logger: discardLogger()})

		_, found, err := engine.Pick(context.Background())

		require.Error(t, err)
		assert.False(t, found)
		assert.True(t, domain.IsUnavailable(err))
	})

	t.Run("picked quote vanished", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().ListAll(mock.Anything).Return(weighted(1), nil)
		repo.EXPECT().IncrementCounter(mock.Anything, int64(1), domain.CounterWatches, int64(1)).
			Return(0, domain.NewNotFoundError("quote", 1))

		engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Logger: discardLogger()})

		_, _, err := engine.Pick(context.Background())

		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("context canceled", func(t *testing.T) {
		repo := mocks.NewMockQuoteRepository(t)
		repo.EXPECT().ListAll(mock.Anything).Return(nil, context.Canceled)

		engine := NewSelectionEngine(SelectionEngineConfig{Repository: repo, Logger: discardLogger()})

		_, _, err := engine.Pick(context.Background())

		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestLockedRand_Deterministic(t *testing.T) {
	a, b := NewLockedRand(42), NewLockedRand(42)

	for range 100 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}

	assert.NotNil(t, NewLockedRand(0))
}
