package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
)

// StatsHandler serves the statistics dashboard.
type StatsHandler struct {
	stats *app.StatsAggregator
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(stats *app.StatsAggregator) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary handles GET /api/v1/stats/summary. A partially loaded summary is
// still a 200 with degraded set.
//
// @Summary Corpus statistics
// @Tags stats
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// RegisterStatsRoutes mounts the stats routes under rg.
func (h *StatsHandler) RegisterStatsRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats/summary", h.Summary)
}
