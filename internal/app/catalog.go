package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Listing limits.
const (
	DefaultTopQuotes = 10
	DefaultPageSize  = 20
	MaxPageSize      = 100
)

// CatalogService manages the quote collection: creation, lookup and listings.
type CatalogService struct {
	repo      ports.QuoteRepository
	topQuotes int
	logger    *slog.Logger
}

// CatalogServiceConfig contains the catalog dependencies.
type CatalogServiceConfig struct {
	Repository ports.QuoteRepository
	TopQuotes  int
	Logger     *slog.Logger
}

// NewCatalogService creates a catalog service. It panics without a repository.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Repository == nil {
		panic("app: catalog service requires a quote repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{
		repo:      cfg.Repository,
		topQuotes: cmp.Or(cfg.TopQuotes, DefaultTopQuotes),
		logger:    logger.With(slog.String("component", "app.CatalogService")),
	}
}

// CreateQuoteInput is the caller-supplied part of a new quote.
type CreateQuoteInput struct {
	Text       string
	Source     string
	SourceType domain.SourceType
	Weight     int
}

// Validate checks the field rules that need no repository access.
// Text and source are trimmed in place.
func (in *CreateQuoteInput) Validate() error {
	in.Text = strings.TrimSpace(in.Text)
	in.Source = strings.TrimSpace(in.Source)

	switch n := utf8.RuneCountInString(in.Text); {
	case n == 0:
		return domain.NewValidationError("text", "must not be empty")
	case n < domain.MinTextLength:
		return domain.NewValidationErrorWithValue("text",
			fmt.Sprintf("must be at least %d characters", domain.MinTextLength), n)
	}

	switch n := utf8.RuneCountInString(in.Source); {
	case n == 0:
		return domain.NewValidationError("source", "must not be empty")
	case n < domain.MinSourceLength:
		return domain.NewValidationErrorWithValue("source",
			fmt.Sprintf("must be at least %d characters", domain.MinSourceLength), n)
	case n > domain.MaxSourceLength:
		return domain.NewValidationErrorWithValue("source",
			fmt.Sprintf("must be at most %d characters", domain.MaxSourceLength), n)
	}

	if in.SourceType == "" {
		in.SourceType = domain.SourcePerson
	}

	if !in.SourceType.Valid() {
		return domain.NewValidationErrorWithValue("source_type", "unknown source type", string(in.SourceType))
	}

	if in.Weight != domain.ClampWeight(in.Weight) {
		return domain.NewValidationErrorWithValue("weight",
			fmt.Sprintf("must be between %d and %d", domain.MinWeight, domain.MaxWeight), in.Weight)
	}

	return nil
}

// Create validates and stores a new quote. A quote repeating the text and
// source of an existing one is a conflict; a source may hold at most
// domain.MaxQuotesPerSource quotes.
func (s *CatalogService) Create(ctx context.Context, in CreateQuoteInput) (*domain.Quote, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, perSource, err := Parallel2(ctx,
		func(ctx context.Context) (bool, error) { return s.repo.ExistsText(ctx, in.Text, in.Source) },
		func(ctx context.Context) (int64, error) { return s.repo.CountBySource(ctx, in.Source) },
	)
	if err != nil {
		return nil, fmt.Errorf("checking catalog rules: %w", err)
	}

	if exists {
		return nil, domain.NewConflictError("quote", "the same text already exists for this source")
	}

	if perSource >= domain.MaxQuotesPerSource {
		return nil, domain.NewValidationErrorWithValue("source",
			fmt.Sprintf("a source may hold at most %d quotes", domain.MaxQuotesPerSource), in.Source)
	}

	q := domain.NewQuote(in.Text, in.Source)
	q.SourceType = in.SourceType
	q.Weight = in.Weight

	created, err := s.repo.Create(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	logger.InfoContext(ctx, "quote created",
		slog.Int64("quote_id", created.ID),
		slog.String("source", created.Source),
		slog.Int("weight", created.Weight),
	)

	return created, nil
}

// Get returns one quote by id.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote %d: %w", id, err)
	}

	return q, nil
}

// Top returns the most liked quotes, breaking ties by weight then watches.
func (s *CatalogService) Top(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.repo.TopByLikes(ctx, s.topQuotes)
	if err != nil {
		return nil, fmt.Errorf("listing top quotes: %w", err)
	}

	return quotes, nil
}

// Page is one slice of the id-ordered quote listing.
type Page struct {
	Quotes  []domain.Quote
	HasMore bool
}

// List returns up to limit quotes after afterID in id order. Limits outside
// (0, MaxPageSize] fall back to DefaultPageSize or MaxPageSize.
func (s *CatalogService) List(ctx context.Context, afterID int64, limit int) (*Page, error) {
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	quotes, err := s.repo.ListPage(ctx, afterID, limit+1)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	page := &Page{Quotes: quotes}
	if len(quotes) > limit {
		page.Quotes = quotes[:limit]
		page.HasMore = true
	}

	return page, nil
}
