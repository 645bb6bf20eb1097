package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const repositoryName = "quote-repository"

var _ ports.QuoteRepository = (*Store)(nil)

// ListAll implements ports.QuoteReader.
func (s *Store) ListAll(ctx context.Context) ([]domain.Quote, error) {
	return s.queryQuotes(ctx, "list all", `SELECT `+quoteColumns+` FROM quotes ORDER BY id`)
}

// GetByID implements ports.QuoteReader.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Quote, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx,
		s.dialect.rebind(`SELECT `+quoteColumns+` FROM quotes WHERE id = ?`), id)

	q, err := scanQuote(row)
	if err != nil {
		return nil, mapError("get", id, err)
	}

	return &q, nil
}

// ListPage implements ports.QuoteReader.
func (s *Store) ListPage(ctx context.Context, afterID int64, limit int) ([]domain.Quote, error) {
	return s.queryQuotes(ctx, "list page",
		`SELECT `+quoteColumns+` FROM quotes WHERE id > ? ORDER BY id LIMIT ?`, afterID, limit)
}

// TopByLikes implements ports.QuoteReader.
func (s *Store) TopByLikes(ctx context.Context, limit int) ([]domain.Quote, error) {
	return s.queryQuotes(ctx, "top by likes",
		`SELECT `+quoteColumns+` FROM quotes
		 ORDER BY like_count DESC, weight DESC, watch_count DESC, id ASC LIMIT ?`, limit)
}

// Recent implements ports.QuoteReader.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.Quote, error) {
	return s.queryQuotes(ctx, "recent",
		`SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

// Totals implements ports.QuoteReader.
func (s *Store) Totals(ctx context.Context) (domain.Totals, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var t domain.Totals

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       CAST(COALESCE(SUM(watch_count), 0) AS BIGINT),
		       CAST(COALESCE(SUM(like_count), 0) AS BIGINT),
		       CAST(COALESCE(SUM(dislike_count), 0) AS BIGINT),
		       CAST(COALESCE(AVG(weight), 0) AS DOUBLE PRECISION)
		FROM quotes`).Scan(&t.Quotes, &t.Watches, &t.Likes, &t.Dislikes, &t.AvgWeight)
	if err != nil {
		return domain.Totals{}, mapError("totals", 0, err)
	}

	return t, nil
}

// SourceTypeBreakdown implements ports.QuoteReader.
func (s *Store) SourceTypeBreakdown(ctx context.Context) ([]domain.SourceTypeStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT source_type,
		       COUNT(*) AS cnt,
		       CAST(COALESCE(SUM(like_count), 0) AS BIGINT),
		       CAST(COALESCE(SUM(watch_count), 0) AS BIGINT)
		FROM quotes
		GROUP BY source_type
		ORDER BY cnt DESC, source_type ASC`)
	if err != nil {
		return nil, mapError("source type breakdown", 0, err)
	}
	defer rows.Close()

	groups := make([]domain.SourceTypeStats, 0, len(domain.SourceTypes()))

	for rows.Next() {
		var (
			g  domain.SourceTypeStats
			st string
		)

		if err := rows.Scan(&st, &g.Count, &g.Likes, &g.Watches); err != nil {
			return nil, mapError("source type breakdown", 0, err)
		}

		g.SourceType = domain.SourceType(st)
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("source type breakdown", 0, err)
	}

	return groups, nil
}

// TopSources implements ports.QuoteReader.
func (s *Store) TopSources(ctx context.Context, limit int) ([]domain.SourceStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`
		SELECT source,
		       COUNT(*),
		       CAST(COALESCE(SUM(like_count), 0) AS BIGINT) AS likes
		FROM quotes
		GROUP BY source
		ORDER BY likes DESC, source ASC
		LIMIT ?`), limit)
	if err != nil {
		return nil, mapError("top sources", 0, err)
	}
	defer rows.Close()

	sources := make([]domain.SourceStats, 0, limit)

	for rows.Next() {
		var src domain.SourceStats
		if err := rows.Scan(&src.Source, &src.Count, &src.Likes); err != nil {
			return nil, mapError("top sources", 0, err)
		}

		sources = append(sources, src)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("top sources", 0, err)
	}

	return sources, nil
}

// CountBySource implements ports.QuoteReader.
func (s *Store) CountBySource(ctx context.Context, source string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64

	err := s.db.QueryRowContext(ctx,
		s.dialect.rebind(`SELECT COUNT(*) FROM quotes WHERE LOWER(source) = LOWER(?)`), source).Scan(&n)
	if err != nil {
		return 0, mapError("count by source", 0, err)
	}

	return n, nil
}

// ExistsText implements ports.QuoteReader.
func (s *Store) ExistsText(ctx context.Context, text, source string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64

	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`
		SELECT COUNT(*) FROM quotes
		WHERE LOWER(quote_text) = LOWER(?) AND LOWER(source) = LOWER(?)`), text, source).Scan(&n)
	if err != nil {
		return false, mapError("exists text", 0, err)
	}

	return n > 0, nil
}

// IncrementCounter implements ports.QuoteWriter. The counter column comes
// from a closed set, never from input.
func (s *Store) IncrementCounter(ctx context.Context, id int64, counter domain.Counter, delta int64) (int64, error) {
	if !counter.Valid() {
		return 0, domain.NewValidationErrorWithValue("counter", "unknown counter", string(counter))
	}

	if delta < 0 {
		return 0, domain.NewValidationErrorWithValue("delta", "counters never decrease", delta)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	col := string(counter)
	query := s.dialect.rebind(`UPDATE quotes SET ` + col + ` = ` + col + ` + ? WHERE id = ? RETURNING ` + col)

	var value int64
	if err := s.db.QueryRowContext(ctx, query, delta, id).Scan(&value); err != nil {
		return 0, mapError("increment "+col, id, err)
	}

	return value, nil
}

// ApplyReaction implements ports.QuoteWriter with one UPDATE that bumps the
// reaction counter, moves the clamped weight and stamps updated_at.
func (s *Store) ApplyReaction(ctx context.Context, id int64, reaction domain.Reaction, at time.Time) (*domain.Quote, error) {
	if reaction != domain.ReactionLike && reaction != domain.ReactionDislike {
		return nil, domain.NewValidationErrorWithValue("kind", "unknown reaction", string(reaction))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	col := string(reaction.Counter())
	weight := s.dialect.clampWeight(fmt.Sprintf("weight + (%d)", reaction.WeightDelta()))

	query := s.dialect.rebind(`UPDATE quotes
		SET ` + col + ` = ` + col + ` + 1,
		    weight = ` + weight + `,
		    updated_at = ?
		WHERE id = ?
		RETURNING ` + quoteColumns)

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, at.UTC(), id))
	if err != nil {
		return nil, mapError("apply "+string(reaction), id, err)
	}

	return &q, nil
}

// Create implements ports.QuoteWriter. Missing timestamps are set to now.
func (s *Store) Create(ctx context.Context, q domain.Quote) (*domain.Quote, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}

	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = q.CreatedAt
	}

	if q.SourceType == "" {
		q.SourceType = domain.SourcePerson
	}

	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()

	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`
		INSERT INTO quotes (quote_text, source, source_type, weight, watch_count, like_count, dislike_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		q.Text, q.Source, string(q.SourceType), q.Weight,
		q.WatchCount, q.LikeCount, q.DislikeCount, q.CreatedAt, q.UpdatedAt,
	).Scan(&q.ID)
	if err != nil {
		return nil, mapError("create", 0, err)
	}

	return &q, nil
}

func (s *Store) queryQuotes(ctx context.Context, op, query string, args ...any) ([]domain.Quote, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, mapError(op, 0, err)
	}

	quotes, err := scanQuotes(rows)
	if err != nil {
		return nil, mapError(op, 0, err)
	}

	return quotes, nil
}

// mapError translates driver errors into the domain taxonomy.
func mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.NewNotFoundError("quote", id)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewUnavailableError(repositoryName, op+": timed out")
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(repositoryName, op), err)
	}
}
