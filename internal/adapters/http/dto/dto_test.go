package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("getting quote 4: %w", domain.NewNotFoundError("quote", 4)),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "conflict",
			err:        domain.NewConflictError("quote", "duplicate"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
		},
		{
			name:        "validation with field",
			err:         domain.NewValidationError("kind", "must be one of: like, dislike"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantDetails: map[string]string{"kind": "must be one of: like, dislike"},
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("quote-repository", "circuit open"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("driver exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
			assert.NotContains(t, resp.Error.Message, "driver exploded")
		})
	}

	status, resp := MapDomainError(nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestHTTPStatusFromCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromCode(ErrorCodeNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromCode(ErrorCodeBadRequest))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatusFromCode(ErrorCodeTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode("SOMETHING_ELSE"))
}

func newContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	return c, w
}

func TestHandleError_IncludesTraceID(t *testing.T) {
	c, w := newContext(t)

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	c.Request = c.Request.WithContext(trace.ContextWithSpanContext(context.Background(), sc))

	HandleError(c, domain.NewNotFoundError("quote", 1))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", resp.TraceID)
}

func TestRespondWithBindingError(t *testing.T) {
	type body struct {
		Source string `json:"source" validate:"required,min=2"`
	}

	c, w := newContext(t)
	RespondWithBindingError(c, Validate(&body{Source: "x"}))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, map[string]string{"source": "must be at least 2 characters"}, resp.Error.Details)

	c, w = newContext(t)
	RespondWithBindingError(c, fmt.Errorf("%w: unexpected EOF", ErrBinding))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrorCodeBadRequest)
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		fields  []string
	}{
		{name: "valid", body: `{"text":"A long enough quote","source":"Seneca","weight":4}`},
		{name: "malformed", body: `{"text":`, wantErr: ErrBinding},
		{name: "blank text", body: `{"text":"   ","source":"Seneca"}`, wantErr: ErrValidation, fields: []string{"text"}},
		{name: "bad weight", body: `{"text":"A long enough quote","source":"Seneca","weight":101}`, wantErr: ErrValidation, fields: []string{"weight"}},
		{name: "bad type", body: `{"text":"A long enough quote","source":"Seneca","sourceType":"song"}`, wantErr: ErrValidation, fields: []string{"sourceType"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req CreateQuoteRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)

			details := ValidationErrors(err)
			for _, f := range tt.fields {
				assert.Contains(t, details, f)
			}
		})
	}
}

func TestCreateQuoteRequest_Input(t *testing.T) {
	req := CreateQuoteRequest{Text: "Know thyself, always.", Source: "Socrates"}
	in := req.Input()

	assert.Equal(t, domain.DefaultWeight, in.Weight)
	assert.Equal(t, domain.SourceType(""), in.SourceType)

	w := 0
	req.Weight = &w
	req.SourceType = "book"
	in = req.Input()

	assert.Equal(t, 0, in.Weight)
	assert.Equal(t, domain.SourceBook, in.SourceType)
}

func TestPagination(t *testing.T) {
	assert.Equal(t, DefaultLimit, (&PaginationRequest{}).GetLimit())
	assert.Equal(t, MaxLimit, (&PaginationRequest{Limit: 1000}).GetLimit())
	assert.Equal(t, 7, (&PaginationRequest{Limit: 7}).GetLimit())

	after, err := (&PaginationRequest{}).AfterID()
	require.NoError(t, err)
	assert.Zero(t, after)

	after, err = (&PaginationRequest{Cursor: EncodeCursor(Cursor{AfterID: 42})}).AfterID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), after)

	_, err = (&PaginationRequest{Cursor: "not base64!"}).AfterID()
	require.ErrorIs(t, err, ErrInvalidCursor)

	_, err = DecodeCursor(EncodeCursor(Cursor{AfterID: -1}))
	require.ErrorIs(t, err, ErrInvalidCursor)
}

func TestNewPaginatedResponse(t *testing.T) {
	id := func(q QuoteResponse) int64 { return q.ID }

	page := NewPaginatedResponse([]QuoteResponse{{ID: 1}, {ID: 5}}, true, id)
	assert.True(t, page.HasMore)

	cur, err := DecodeCursor(page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cur.AfterID)

	last := NewPaginatedResponse([]QuoteResponse{{ID: 9}}, false, id)
	assert.Empty(t, last.NextCursor)

	empty := NewPaginatedResponse[QuoteResponse](nil, false, id)
	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"hasMore":false}`, string(raw))
}

func TestNewQuoteResponse(t *testing.T) {
	q := &domain.Quote{
		ID:           3,
		Text:         strings.Repeat("a", 150),
		Source:       "Somewhere",
		SourceType:   domain.SourceType("podcast"),
		Weight:       10,
		LikeCount:    1,
		DislikeCount: 2,
		CreatedAt:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := NewQuoteResponse(q)

	assert.Equal(t, domain.UnknownSourceLabel, resp.SourceTypeLabel)
	assert.Len(t, []rune(resp.ShortText), domain.DefaultShortText)
	assert.True(t, strings.HasSuffix(resp.ShortText, "..."))
	assert.Equal(t, int64(3), resp.TotalReactions)
	assert.InDelta(t, 33.3, resp.LikePercentage, 0.001)
}

func TestNewSummaryResponse(t *testing.T) {
	resp := NewSummaryResponse(&domain.Summary{
		Totals:       domain.Totals{Quotes: 1, AvgWeight: 2.5},
		BySourceType: []domain.SourceTypeStats{{SourceType: domain.SourceMovie, Label: "Movie", Count: 1}},
		TopSources:   []domain.SourceStats{{Source: "Alien", Count: 1}},
	})

	assert.InDelta(t, 2.5, resp.Totals.AvgWeight, 0.0001)
	assert.Equal(t, "movie", resp.BySourceType[0].SourceType)
	assert.Equal(t, "Alien", resp.TopSources[0].Source)
	assert.NotNil(t, resp.Recent)
	assert.Empty(t, resp.Recent)
}
