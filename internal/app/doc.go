// Package app contains the application services of the quote engine.
// They orchestrate domain rules over the repository port:
//
//   - SelectionEngine draws a quote with probability proportional to its weight
//     and counts the view.
//   - ReactionProcessor applies likes and dislikes as single atomic updates.
//   - StatsAggregator assembles the dashboard summary from concurrent reads.
//   - CatalogService creates, looks up and lists quotes.
//
// HTTP specifics belong in adapters; SQL lives behind ports.QuoteRepository.
package app
