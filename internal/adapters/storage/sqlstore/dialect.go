package sqlstore

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// Driver selects the SQL backend.
type Driver string

// Supported drivers.
const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type dialect struct {
	driver Driver

	// sqlDriver is the database/sql driver name registered by the import.
	sqlDriver string

	// least and greatest are the multi-argument scalar min and max functions.
	least    string
	greatest string

	numbered bool
	schema   []string
}

var sqliteDialect = dialect{
	driver:    DriverSQLite,
	sqlDriver: "sqlite",
	least:     "MIN",
	greatest:  "MAX",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			quote_text    TEXT     NOT NULL,
			source        TEXT     NOT NULL,
			source_type   TEXT     NOT NULL DEFAULT 'person',
			weight        INTEGER  NOT NULL DEFAULT 1,
			watch_count   INTEGER  NOT NULL DEFAULT 0 CHECK (watch_count >= 0),
			like_count    INTEGER  NOT NULL DEFAULT 0 CHECK (like_count >= 0),
			dislike_count INTEGER  NOT NULL DEFAULT 0 CHECK (dislike_count >= 0),
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
	},
}

var postgresDialect = dialect{
	driver:    DriverPostgres,
	sqlDriver: "pgx",
	least:     "LEAST",
	greatest:  "GREATEST",
	numbered:  true,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id            BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			quote_text    TEXT        NOT NULL,
			source        VARCHAR(100) NOT NULL,
			source_type   VARCHAR(16) NOT NULL DEFAULT 'person',
			weight        INTEGER     NOT NULL DEFAULT 1,
			watch_count   BIGINT      NOT NULL DEFAULT 0 CHECK (watch_count >= 0),
			like_count    BIGINT      NOT NULL DEFAULT 0 CHECK (like_count >= 0),
			dislike_count BIGINT      NOT NULL DEFAULT 0 CHECK (dislike_count >= 0),
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
	},
}

// Indexes shared by both dialects.
var commonIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_quotes_weight ON quotes (weight)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_likes ON quotes (like_count)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_source ON quotes (source)`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes (created_at)`,
}

func dialectFor(d Driver) (dialect, bool) {
	switch d {
	case DriverSQLite:
		return sqliteDialect, true
	case DriverPostgres:
		return postgresDialect, true
	default:
		return dialect{}, false
	}
}

// rebind rewrites ? placeholders into $1, $2... for numbered dialects.
// Queries in this package never contain literal question marks.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder

	b.Grow(len(query) + 8)

	n := 0

	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}

		n++

		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

// clampWeight wraps a weight expression so the stored value stays in range.
func (d dialect) clampWeight(expr string) string {
	return d.least + "(" + d.greatest + "(" + expr + ", " + strconv.Itoa(domain.MinWeight) + "), " +
		strconv.Itoa(domain.MaxWeight) + ")"
}
