package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteHandler serves the quote endpoints.
type QuoteHandler struct {
	selection *app.SelectionEngine
	reactions *app.ReactionProcessor
	catalog   *app.CatalogService
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(selection *app.SelectionEngine, reactions *app.ReactionProcessor, catalog *app.CatalogService) *QuoteHandler {
	return &QuoteHandler{
		selection: selection,
		reactions: reactions,
		catalog:   catalog,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random.
// An empty corpus is a 200 with a null quote.
//
// @Summary Pick a weighted random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.RandomQuoteResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, found, err := h.selection.Pick(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !found {
		c.JSON(http.StatusOK, dto.RandomQuoteResponse{Empty: true})
		return
	}

	resp := dto.NewQuoteResponse(quote)
	c.JSON(http.StatusOK, dto.RandomQuoteResponse{Quote: &resp})
}

// React handles POST /api/v1/quotes/:id/react?kind=like|dislike.
//
// @Summary Like or dislike a quote
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Param kind query string true "like or dislike"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/react [post]
func (h *QuoteHandler) React(c *gin.Context) {
	reaction, err := domain.ParseReaction(c.Query("kind"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	h.react(c, reaction)
}

// Like handles POST /api/v1/quotes/:id/like.
func (h *QuoteHandler) Like(c *gin.Context) {
	h.react(c, domain.ReactionLike)
}

// Dislike handles POST /api/v1/quotes/:id/dislike.
func (h *QuoteHandler) Dislike(c *gin.Context) {
	h.react(c, domain.ReactionDislike)
}

func (h *QuoteHandler) react(c *gin.Context, reaction domain.Reaction) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.reactions.Apply(c.Request.Context(), id, reaction)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuote handles GET /api/v1/quotes/:id.
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// ListQuotes handles GET /api/v1/quotes?cursor=&limit=.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	afterID, err := req.AfterID()
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	page, err := h.catalog.List(c.Request.Context(), afterID, req.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(
		dto.NewQuoteResponses(page.Quotes),
		page.HasMore,
		func(q dto.QuoteResponse) int64 { return q.ID },
	))
}

// TopQuotes handles GET /api/v1/quotes/top.
func (h *QuoteHandler) TopQuotes(c *gin.Context) {
	quotes, err := h.catalog.Top(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.NewQuoteResponses(quotes)})
}

// CreateQuote handles POST /api/v1/quotes.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "New quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	quote, err := h.catalog.Create(c.Request.Context(), req.Input())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/quotes/"+strconv.FormatInt(quote.ID, 10))
	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes mounts the quote routes under rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/top", h.TopQuotes)
	quotes.GET("/:id", h.GetQuote)
	quotes.POST("/:id/react", h.React)
	quotes.POST("/:id/like", h.Like)
	quotes.POST("/:id/dislike", h.Dislike)
}

// quoteID parses the :id parameter, writing a 400 when it is not a positive integer.
func quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "quote id must be a positive integer")
		return 0, false
	}

	return id, true
}
