package dto

import (
	"time"

	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteResponse is a quote with its derived engagement figures.
type QuoteResponse struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	ShortText       string    `json:"shortText"`
	Source          string    `json:"source"`
	SourceType      string    `json:"sourceType"`
	SourceTypeLabel string    `json:"sourceTypeLabel"`
	Weight          int       `json:"weight"`
	WatchCount      int64     `json:"watchCount"`
	LikeCount       int64     `json:"likeCount"`
	DislikeCount    int64     `json:"dislikeCount"`
	TotalReactions  int64     `json:"totalReactions"`
	LikePercentage  float64   `json:"likePercentage"`
	PopularityScore float64   `json:"popularityScore"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		Text:            q.Text,
		ShortText:       q.ShortText(domain.DefaultShortText),
		Source:          q.Source,
		SourceType:      string(q.SourceType),
		SourceTypeLabel: q.SourceType.Label(),
		Weight:          q.Weight,
		WatchCount:      q.WatchCount,
		LikeCount:       q.LikeCount,
		DislikeCount:    q.DislikeCount,
		TotalReactions:  q.TotalReactions(),
		LikePercentage:  q.LikePercentage(),
		PopularityScore: q.PopularityScore(),
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// NewQuoteResponses converts a slice, never returning nil.
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = NewQuoteResponse(&quotes[i])
	}

	return out
}

// RandomQuoteResponse is the result of a pick. Quote is null and Empty true
// when there is nothing to show.
type RandomQuoteResponse struct {
	Quote *QuoteResponse `json:"quote"`
	Empty bool           `json:"empty"`
}

// CreateQuoteRequest is the body of POST /quotes. The catalog applies the
// length, uniqueness and per-source rules after these tag checks.
type CreateQuoteRequest struct {
	Text       string `json:"text"       validate:"required,notblank"`
	Source     string `json:"source"     validate:"required,notblank,max=100"`
	SourceType string `json:"sourceType" validate:"omitempty,oneof=movie book series person"`

	// Weight defaults to 1 when absent.
	Weight *int `json:"weight" validate:"omitempty,gte=0,lte=100"`
}

// Input converts the request for the catalog.
func (r *CreateQuoteRequest) Input() app.CreateQuoteInput {
	weight := domain.DefaultWeight
	if r.Weight != nil {
		weight = *r.Weight
	}

	return app.CreateQuoteInput{
		Text:       r.Text,
		Source:     r.Source,
		SourceType: domain.SourceType(r.SourceType),
		Weight:     weight,
	}
}

// SummaryResponse is the statistics dashboard.
type SummaryResponse struct {
	Totals       TotalsResponse            `json:"totals"`
	BySourceType []SourceTypeStatsResponse `json:"bySourceType"`
	TopSources   []SourceStatsResponse     `json:"topSources"`
	Recent       []QuoteResponse           `json:"recent"`
	Degraded     bool                      `json:"degraded"`
}

// TotalsResponse summarizes the whole corpus.
type TotalsResponse struct {
	Quotes    int64   `json:"quotes"`
	Watches   int64   `json:"watches"`
	Likes     int64   `json:"likes"`
	Dislikes  int64   `json:"dislikes"`
	AvgWeight float64 `json:"avgWeight"`
}

// SourceTypeStatsResponse is one source type group.
type SourceTypeStatsResponse struct {
	SourceType string `json:"sourceType"`
	Label      string `json:"label"`
	Count      int64  `json:"count"`
	Likes      int64  `json:"likes"`
	Watches    int64  `json:"watches"`
}

// SourceStatsResponse is one source group.
type SourceStatsResponse struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
	Likes  int64  `json:"likes"`
}

// NewSummaryResponse converts a domain summary.
func NewSummaryResponse(s *domain.Summary) SummaryResponse {
	resp := SummaryResponse{
		Totals: TotalsResponse{
			Quotes:    s.Totals.Quotes,
			Watches:   s.Totals.Watches,
			Likes:     s.Totals.Likes,
			Dislikes:  s.Totals.Dislikes,
			AvgWeight: s.Totals.AvgWeight,
		},
		BySourceType: make([]SourceTypeStatsResponse, len(s.BySourceType)),
		TopSources:   make([]SourceStatsResponse, len(s.TopSources)),
		Recent:       NewQuoteResponses(s.Recent),
		Degraded:     s.Degraded,
	}

	for i, g := range s.BySourceType {
		resp.BySourceType[i] = SourceTypeStatsResponse{
			SourceType: string(g.SourceType),
			Label:      g.Label,
			Count:      g.Count,
			Likes:      g.Likes,
			Watches:    g.Watches,
		}
	}

	for i, g := range s.TopSources {
		resp.TopSources[i] = SourceStatsResponse{Source: g.Source, Count: g.Count, Likes: g.Likes}
	}

	return resp
}
