package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page size bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned when a cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// PaginationRequest carries the query parameters of a listing.
type PaginationRequest struct {
	// Cursor is the nextCursor of a previous page. Empty starts at the beginning.
	Cursor string `form:"cursor" json:"cursor"`
	Limit  int    `form:"limit"  json:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// GetLimit applies the defaults to Limit.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// AfterID is the id the next page starts after. Zero means the first page.
func (p *PaginationRequest) AfterID() (int64, error) {
	if p.Cursor == "" {
		return 0, nil
	}

	cur, err := DecodeCursor(p.Cursor)
	if err != nil {
		return 0, err
	}

	return cur.AfterID, nil
}

// Cursor is the position encoded into nextCursor.
type Cursor struct {
	AfterID int64 `json:"after"`
}

// EncodeCursor returns the opaque form of c.
func EncodeCursor(c Cursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a value produced by EncodeCursor.
func DecodeCursor(encoded string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.AfterID < 0 {
		return Cursor{}, ErrInvalidCursor
	}

	return c, nil
}

// PaginatedResponse is one page of a listing.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPaginatedResponse builds a page. When hasMore is set the cursor points
// after the id of the last item.
func NewPaginatedResponse[T any](items []T, hasMore bool, idOf func(T) int64) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	resp := &PaginatedResponse[T]{Items: items, HasMore: hasMore}
	if hasMore && len(items) > 0 {
		resp.NextCursor = EncodeCursor(Cursor{AfterID: idOf(items[len(items)-1])})
	}

	return resp
}
