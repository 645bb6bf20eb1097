// Package seed fills an empty quote corpus from a YAML file.
//
//	quotes:
//	  - text: "May the Force be with you."
//	    source: Star Wars
//	    source_type: movie
//	    weight: 10
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// Entry is one quote in the seed file.
type Entry struct {
	Text       string `koanf:"text"`
	Source     string `koanf:"source"`
	SourceType string `koanf:"source_type"`

	// Weight defaults to domain.DefaultWeight when omitted.
	Weight *int `koanf:"weight"`
}

// Input converts the entry into a catalog create request.
func (e Entry) Input() app.CreateQuoteInput {
	weight := domain.DefaultWeight
	if e.Weight != nil {
		weight = *e.Weight
	}

	return app.CreateQuoteInput{
		Text:       e.Text,
		Source:     e.Source,
		SourceType: domain.SourceType(e.SourceType),
		Weight:     weight,
	}
}

// Load reads the entries of a seed file.
func Load(path string) ([]Entry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	var entries []Entry
	if err := k.Unmarshal("quotes", &entries); err != nil {
		return nil, fmt.Errorf("decoding seed quotes: %w", err)
	}

	return entries, nil
}

// Result counts what Apply did.
type Result struct {
	Inserted int
	Rejected int

	// Skipped is true when the corpus already held quotes.
	Skipped bool
}

// Apply creates every entry through the catalog when the corpus is empty.
// Entries breaking a catalog rule are logged and rejected; any other error
// stops the run.
func Apply(ctx context.Context, reader ports.QuoteReader, catalog *app.CatalogService, entries []Entry, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	totals, err := reader.Totals(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("counting quotes: %w", err)
	}

	if totals.Quotes > 0 {
		logger.InfoContext(ctx, "corpus not empty, seed skipped", slog.Int64("quotes", totals.Quotes))
		return Result{Skipped: true}, nil
	}

	var res Result

	for i, e := range entries {
		_, err := catalog.Create(ctx, e.Input())

		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
			res.Rejected++
			logger.WarnContext(ctx, "seed quote rejected",
				slog.Int("index", i),
				slog.String("source", e.Source),
				slog.Any("error", err),
			)
		default:
			return res, fmt.Errorf("seeding quote %d: %w", i, err)
		}
	}

	logger.InfoContext(ctx, "corpus seeded",
		slog.Int("inserted", res.Inserted),
		slog.Int("rejected", res.Rejected),
	)

	return res, nil
}

// FromFile loads path and applies it. An empty path does nothing.
func FromFile(ctx context.Context, reader ports.QuoteReader, catalog *app.CatalogService, path string, logger *slog.Logger) (Result, error) {
	if path == "" {
		return Result{Skipped: true}, nil
	}

	entries, err := Load(path)
	if err != nil {
		return Result{}, err
	}

	return Apply(ctx, reader, catalog, entries, logger)
}
