package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

const quoteColumns = `id, quote_text, source, source_type, weight, watch_count, like_count, dislike_count, created_at, updated_at`

// timeScanner reads timestamps stored natively (Postgres) or as text (SQLite).
type timeScanner struct{ t *time.Time }

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// Scan implements sql.Scanner.
func (ts timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
	case time.Time:
		*ts.t = v.UTC()
	case int64:
		*ts.t = time.Unix(v, 0).UTC()
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into time", src)
	}

	return nil
}

func (ts timeScanner) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("sqlstore: unrecognised timestamp %q", s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (domain.Quote, error) {
	var (
		q          domain.Quote
		sourceType string
	)

	err := row.Scan(
		&q.ID,
		&q.Text,
		&q.Source,
		&sourceType,
		&q.Weight,
		&q.WatchCount,
		&q.LikeCount,
		&q.DislikeCount,
		timeScanner{&q.CreatedAt},
		timeScanner{&q.UpdatedAt},
	)
	q.SourceType = domain.SourceType(sourceType)

	return q, err
}

func scanQuotes(rows *sql.Rows) ([]domain.Quote, error) {
	defer rows.Close()

	quotes := make([]domain.Quote, 0)

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}
