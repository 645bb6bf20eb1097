package domain

import (
	"math"
	"time"
)

// Weight bounds. Every stored quote keeps its weight inside [MinWeight, MaxWeight].
const (
	MinWeight     = 0
	MaxWeight     = 100
	DefaultWeight = 1
)

// Field limits enforced when a quote is created.
const (
	MinTextLength      = 10
	MinSourceLength    = 2
	MaxSourceLength    = 100
	MaxQuotesPerSource = 3
	DefaultShortText   = 100
)

// SourceType classifies where a quote comes from.
type SourceType string

// Known source types.
const (
	SourceMovie  SourceType = "movie"
	SourceBook   SourceType = "book"
	SourceSeries SourceType = "series"
	SourcePerson SourceType = "person"
)

// UnknownSourceLabel is used for stored source types outside the known set.
const UnknownSourceLabel = "Unknown"

var sourceLabels = map[SourceType]string{
	SourceMovie:  "Movie",
	SourceBook:   "Book",
	SourceSeries: "Series",
	SourcePerson: "Famous person",
}

// Label returns the human readable name of the source type.
func (s SourceType) Label() string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}

	return UnknownSourceLabel
}

// Valid reports whether s is one of the known source types.
func (s SourceType) Valid() bool {
	_, ok := sourceLabels[s]
	return ok
}

// SourceTypes lists the known source types in display order.
func SourceTypes() []SourceType {
	return []SourceType{SourceMovie, SourceBook, SourceSeries, SourcePerson}
}

// Quote is a short text with its popularity weight and engagement counters.
type Quote struct {
	ID         int64
	Text       string
	Source     string
	SourceType SourceType

	// Weight biases random selection. Likes raise it and dislikes lower it.
	Weight int

	WatchCount   int64
	LikeCount    int64
	DislikeCount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuote builds an unsaved quote with default weight, source type and
// zeroed counters.
func NewQuote(text, source string) Quote {
	return Quote{
		Text:       text,
		Source:     source,
		SourceType: SourcePerson,
		Weight:     DefaultWeight,
	}
}

// TotalReactions is the number of likes and dislikes combined.
func (q *Quote) TotalReactions() int64 {
	return q.LikeCount + q.DislikeCount
}

// LikePercentage is the share of likes among all reactions, rounded to one
// decimal place. A quote without reactions reports 0.
func (q *Quote) LikePercentage() float64 {
	total := q.TotalReactions()
	if total == 0 {
		return 0
	}

	pct := float64(q.LikeCount) / float64(total) * 100

	return math.Round(pct*10) / 10
}

// PopularityScore combines all engagement signals into a single ranking value.
func (q *Quote) PopularityScore() float64 {
	return float64(q.LikeCount)*3 +
		float64(q.WatchCount)*0.1 +
		float64(q.Weight)*0.5 -
		float64(q.DislikeCount)
}

// ShortText truncates the text to at most maxLen runes, marking the cut with "...".
func (q *Quote) ShortText(maxLen int) string {
	runes := []rune(q.Text)
	if len(runes) <= maxLen {
		return q.Text
	}

	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// ClampWeight forces w into [MinWeight, MaxWeight].
func ClampWeight(w int) int {
	return min(max(w, MinWeight), MaxWeight)
}

// SamplingWeight is the non-negative weight used by random selection.
// The second result is false when the stored weight is outside
// [MinWeight, MaxWeight].
func (q *Quote) SamplingWeight() (int, bool) {
	return max(q.Weight, 0), q.Weight == ClampWeight(q.Weight)
}
