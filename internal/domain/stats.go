package domain

// Totals summarizes the whole corpus. Every field is zero for an empty corpus.
type Totals struct {
	Quotes    int64
	Watches   int64
	Likes     int64
	Dislikes  int64
	AvgWeight float64
}

// SourceTypeStats aggregates quotes sharing a source type.
type SourceTypeStats struct {
	SourceType SourceType
	Label      string
	Count      int64
	Likes      int64
	Watches    int64
}

// SourceStats aggregates quotes sharing a source name.
type SourceStats struct {
	Source string
	Count  int64
	Likes  int64
}

// Summary is the dashboard view of the corpus.
type Summary struct {
	Totals       Totals
	BySourceType []SourceTypeStats
	TopSources   []SourceStats
	Recent       []Quote

	// Degraded is set when at least one section could not be loaded and was
	// left empty.
	Degraded bool
}
