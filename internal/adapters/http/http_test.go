package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testAPI struct {
	engine  *gin.Engine
	catalog *app.CatalogService
	store   *sqlstore.Store
}

// newTestAPI wires the full router against a temporary SQLite database.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctx := context.Background()

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver: sqlstore.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "quotes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := discardLogger()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	catalog := app.NewCatalogService(app.CatalogServiceConfig{Repository: store, Logger: logger})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:         logger,
		AppConfig:      &config.AppConfig{Name: "quote-service"},
		RequestTimeout: 5 * time.Second,
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"), reg),
		QuoteHandler: handlers.NewQuoteHandler(
			app.NewSelectionEngine(app.SelectionEngineConfig{Repository: store, Random: app.NewLockedRand(1), Metrics: m, Logger: logger}),
			app.NewReactionProcessor(app.ReactionProcessorConfig{Repository: store, Metrics: m, Logger: logger}),
			catalog,
		),
		StatsHandler: handlers.NewStatsHandler(app.NewStatsAggregator(app.StatsAggregatorConfig{Repository: store, Metrics: m, Logger: logger})),
	})

	return &testAPI{engine: engine, catalog: catalog, store: store}
}

func (a *testAPI) add(t *testing.T, text, source string, weight int) int64 {
	t.Helper()

	q, err := a.catalog.Create(context.Background(), app.CreateQuoteInput{Text: text, Source: source, SourceType: domain.SourceMovie, Weight: weight})
	require.NoError(t, err)

	return q.ID
}

func (a *testAPI) do(t *testing.T, method, target, body string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}

	return w
}

func TestAPI_EmptyCorpus(t *testing.T) {
	api := newTestAPI(t)

	var pick dto.RandomQuoteResponse
	w := api.do(t, http.MethodGet, "/api/v1/quotes/random", "", &pick)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, pick.Empty)
	assert.Nil(t, pick.Quote)

	var summary dto.SummaryResponse
	w = api.do(t, http.MethodGet, "/api/v1/stats/summary", "", &summary)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.TotalsResponse{}, summary.Totals)
	assert.Empty(t, summary.BySourceType)
	assert.Empty(t, summary.Recent)
	assert.False(t, summary.Degraded)
}

func TestAPI_PickSkipsZeroWeight(t *testing.T) {
	api := newTestAPI(t)
	heavy := api.add(t, "I'll be back, count on it.", "The Terminator", 50)
	api.add(t, "Nobody should ever see this one.", "Forgotten Film", 0)

	for range 50 {
		var pick dto.RandomQuoteResponse
		w := api.do(t, http.MethodGet, "/api/v1/quotes/random", "", &pick)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, pick.Quote)
		require.Equal(t, heavy, pick.Quote.ID)
	}

	q, err := api.store.GetByID(context.Background(), heavy)
	require.NoError(t, err)
	assert.Equal(t, int64(50), q.WatchCount)
}

func TestAPI_ReactionsClampWeight(t *testing.T) {
	api := newTestAPI(t)
	id := api.add(t, "Here's looking at you, kid.", "Casablanca", 99)

	var q dto.QuoteResponse
	for range 3 {
		w := api.do(t, http.MethodPost, "/api/v1/quotes/"+itoa(id)+"/react?kind=like", "", &q)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 100, q.Weight)
	assert.Equal(t, int64(3), q.LikeCount)
	assert.InDelta(t, 100.0, q.LikePercentage, 0.001)

	w := api.do(t, http.MethodPost, "/api/v1/quotes/"+itoa(id)+"/dislike", "", &q)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 99, q.Weight)
	assert.Equal(t, int64(4), q.TotalReactions)
}

func TestAPI_ReactionErrors(t *testing.T) {
	api := newTestAPI(t)
	id := api.add(t, "You talking to me? You talking to me?", "Taxi Driver", 5)

	var errResp dto.ErrorResponse

	w := api.do(t, http.MethodPost, "/api/v1/quotes/9999/like", "", &errResp)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeNotFound, errResp.Error.Code)

	w = api.do(t, http.MethodPost, "/api/v1/quotes/"+itoa(id)+"/react?kind=meh", "", &errResp)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidation, errResp.Error.Code)

	q, err := api.store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Weight)
	assert.Zero(t, q.TotalReactions())
}

func TestAPI_ConcurrentPicks(t *testing.T) {
	api := newTestAPI(t)
	id := api.add(t, "Frankly, my dear, I don't give a damn.", "Gone with the Wind", 3)

	const n = 40

	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", nil)
			w := httptest.NewRecorder()
			api.engine.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
	wg.Wait()

	q, err := api.store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(n), q.WatchCount)
}

func TestAPI_CreateListAndTop(t *testing.T) {
	api := newTestAPI(t)

	var created dto.QuoteResponse
	w := api.do(t, http.MethodPost, "/api/v1/quotes",
		`{"text":"To infinity and beyond!","source":"Toy Story","sourceType":"movie","weight":7}`, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Movie", created.SourceTypeLabel)

	var errResp dto.ErrorResponse
	w = api.do(t, http.MethodPost, "/api/v1/quotes",
		`{"text":"to infinity and beyond!","source":"toy story"}`, &errResp)
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, text := range []string{"You've got a friend in me.", "Reach for the sky, partner."} {
		w = api.do(t, http.MethodPost, "/api/v1/quotes", `{"text":"`+text+`","source":"Toy Story"}`, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = api.do(t, http.MethodPost, "/api/v1/quotes", `{"text":"One quote too many here.","source":"Toy Story"}`, &errResp)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errResp.Error.Details, "source")

	var page dto.PaginatedResponse[dto.QuoteResponse]
	w = api.do(t, http.MethodGet, "/api/v1/quotes?limit=2", "", &page)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, page.Items, 2)
	require.True(t, page.HasMore)

	var rest dto.PaginatedResponse[dto.QuoteResponse]
	w = api.do(t, http.MethodGet, "/api/v1/quotes?limit=2&cursor="+page.NextCursor, "", &rest)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, rest.Items, 1)
	assert.False(t, rest.HasMore)
	assert.Greater(t, rest.Items[0].ID, page.Items[1].ID)

	w = api.do(t, http.MethodPost, "/api/v1/quotes/"+itoa(rest.Items[0].ID)+"/like", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var top struct {
		Items []dto.QuoteResponse `json:"items"`
	}
	w = api.do(t, http.MethodGet, "/api/v1/quotes/top", "", &top)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, top.Items, 3)
	assert.Equal(t, rest.Items[0].ID, top.Items[0].ID)
}

func TestAPI_OpsEndpoints(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/-/ready", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)

	api.do(t, http.MethodGet, "/api/v1/quotes/random", "", nil)

	w = api.do(t, http.MethodGet, "/-/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `quote_picks_total{result="empty"} 1`)

	require.NoError(t, api.store.Close())

	w = api.do(t, http.MethodGet, "/-/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPI_RequestHeaders(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-77")

	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)

	assert.Equal(t, "req-77", w.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderCorrelationID))
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		RequestTimeout: time.Second,
		MaxRequestSize: 64,
	}
}

func TestServer_Addr(t *testing.T) {
	cfg := testServerConfig()
	cfg.Host = "::1"
	cfg.Port = 8080

	assert.Equal(t, "[::1]:8080", NewServer(cfg, discardLogger()).Addr())
}

func TestServer_StartShutdown(t *testing.T) {
	srv := NewServer(testServerConfig(), discardLogger())
	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, open := <-errCh
	assert.False(t, open)
}

func TestServer_MaxBodySize(t *testing.T) {
	srv := NewServer(testServerConfig(), discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, "%d", len(body))
	})

	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(make([]byte, 32))))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(make([]byte, 128))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
