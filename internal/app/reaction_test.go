package app

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/mocks"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
)

func TestNewReactionProcessor_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewReactionProcessor(ReactionProcessorConfig{})
	})
}

func TestReactionProcessor_Apply(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name     string
		call     func(*ReactionProcessor) (*domain.Quote, error)
		reaction domain.Reaction
		stored   *domain.Quote
		storeErr error
		wantErr  error
		result   string
	}{
		{
			name:     "like",
			call:     func(p *ReactionProcessor) (*domain.Quote, error) { return p.Like(context.Background(), 7) },
			reaction: domain.ReactionLike,
			stored:   &domain.Quote{ID: 7, Weight: 11, LikeCount: 1, UpdatedAt: at},
			result:   metrics.ResultOK,
		},
		{
			name:     "dislike",
			call:     func(p *ReactionProcessor) (*domain.Quote, error) { return p.Dislike(context.Background(), 7) },
			reaction: domain.ReactionDislike,
			stored:   &domain.Quote{ID: 7, Weight: 9, DislikeCount: 1, UpdatedAt: at},
			result:   metrics.ResultOK,
		},
		{
			name:     "unknown quote",
			call:     func(p *ReactionProcessor) (*domain.Quote, error) { return p.Like(context.Background(), 7) },
			reaction: domain.ReactionLike,
			storeErr: domain.NewNotFoundError("quote", 7),
			wantErr:  domain.ErrNotFound,
			result:   metrics.ResultNotFound,
		},
		{
			name:     "store unavailable",
			call:     func(p *ReactionProcessor) (*domain.Quote, error) { return p.Dislike(context.Background(), 7) },
			reaction: domain.ReactionDislike,
			storeErr: domain.NewUnavailableError("quote-repository", "apply dislike"),
			wantErr:  domain.ErrUnavailable,
			result:   metrics.ResultError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockQuoteRepository(t)
			repo.EXPECT().ApplyReaction(mock.Anything, int64(7), tt.reaction, at).
				Return(tt.stored, tt.storeErr).Once()

			reg := prometheus.NewRegistry()
			p := NewReactionProcessor(ReactionProcessorConfig{
				Repository: repo,
				Metrics:    metrics.New(reg),
				Logger:     discardLogger(),
				Now:        func() time.Time { return at },
			})

			got, err := tt.call(p)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.stored, got)
			}

			expected := fmt.Sprintf(`
# HELP quote_reactions_total Likes and dislikes by outcome.
# TYPE quote_reactions_total counter
quote_reactions_total{kind=%q,result=%q} 1
`, tt.reaction, tt.result)
			require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "quote_reactions_total"))
		})
	}
}

func TestReactionProcessor_Apply_RejectsUnknownKind(t *testing.T) {
	repo := mocks.NewMockQuoteRepository(t)
	p := NewReactionProcessor(ReactionProcessorConfig{Repository: repo, Logger: discardLogger()})

	_, err := p.Apply(context.Background(), 1, domain.Reaction("meh"))

	require.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "ApplyReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
