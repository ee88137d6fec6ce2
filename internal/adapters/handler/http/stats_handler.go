package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucapasini/tracely/internal/adapters/handler/http/middleware"
	"github.com/lucapasini/tracely/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
	r.GET("/insights", h.GetInsights)
}

// GetStats serves the aggregated dashboard payload. The period query
// parameter picks the reporting window (day, week, month, year);
// anything else falls back to week. An optional as_of date pins the
// reference instant, mainly useful for clients replaying past days.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := parseAsOf(c.Query("as_of"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of format, expected YYYY-MM-DD"})
		return
	}

	input := services.StatsInput{
		UserID:          userID,
		Period:          c.Query("period"),
		Now:             now,
		IncludeInsights: c.Query("include_insights") == "true",
	}

	stats, err := h.svc.GetComprehensiveStats(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetInsights(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := parseAsOf(c.Query("as_of"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of format, expected YYYY-MM-DD"})
		return
	}

	insights, err := h.svc.GetProductivityInsights(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

func parseAsOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}

	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}

	// End of the requested day, so its records are all in range.
	return day.UTC().AddDate(0, 0, 1).Add(-time.Millisecond), nil
}
