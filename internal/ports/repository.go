// Package ports declares the contracts the application layer depends on.
// Adapters implement them; app services never see a concrete store.
//
// Every method takes a context first and reports failures with the domain
// error taxonomy: domain.ErrNotFound for unknown ids and domain.ErrUnavailable
// for I/O trouble.
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteReader covers the pure reads of the quote store. Reads have no side
// effects, so callers may retry them.
type QuoteReader interface {
	// ListAll returns every quote ordered by id.
	ListAll(ctx context.Context) ([]domain.Quote, error)

	// GetByID returns domain.ErrNotFound when no quote has the id.
	GetByID(ctx context.Context, id int64) (*domain.Quote, error)

	// ListPage returns up to limit quotes with an id greater than afterID.
	ListPage(ctx context.Context, afterID int64, limit int) ([]domain.Quote, error)

	// TopByLikes orders by likes, weight and watches, all descending.
	TopByLikes(ctx context.Context, limit int) ([]domain.Quote, error)

	// Recent orders by creation time descending.
	Recent(ctx context.Context, limit int) ([]domain.Quote, error)

	// Totals aggregates counters over the whole corpus. Sums are 0 when empty.
	Totals(ctx context.Context) (domain.Totals, error)

	// SourceTypeBreakdown groups by source type. Labels are left to the caller.
	SourceTypeBreakdown(ctx context.Context) ([]domain.SourceTypeStats, error)

	// TopSources groups by source and orders by summed likes descending, then
	// by source ascending.
	TopSources(ctx context.Context, limit int) ([]domain.SourceStats, error)

	// CountBySource counts quotes whose source matches case-insensitively.
	CountBySource(ctx context.Context, source string) (int64, error)

	// ExistsText reports whether a quote with the same text and source exists,
	// compared case-insensitively.
	ExistsText(ctx context.Context, text, source string) (bool, error)
}

// QuoteWriter covers mutations. Each method is one atomic statement and must
// never be retried by callers.
type QuoteWriter interface {
	// IncrementCounter adds delta to a counter and returns its new value.
	// Returns domain.ErrNotFound when the quote does not exist.
	IncrementCounter(ctx context.Context, id int64, counter domain.Counter, delta int64) (int64, error)

	// ApplyReaction bumps the reaction counter, moves the weight by one step
	// clamped into [domain.MinWeight, domain.MaxWeight] and stamps updatedAt,
	// all in a single write. The stored quote is returned.
	ApplyReaction(ctx context.Context, id int64, reaction domain.Reaction, at time.Time) (*domain.Quote, error)

	// Create inserts q and returns it with its assigned id and timestamps.
	Create(ctx context.Context, q domain.Quote) (*domain.Quote, error)
}

// QuoteRepository is the durable quote store.
type QuoteRepository interface {
	QuoteReader
	QuoteWriter
}
