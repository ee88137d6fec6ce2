package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucapasini/tracely/internal/adapters/handler/http/middleware"
	"github.com/lucapasini/tracely/internal/core/domain"
	"github.com/lucapasini/tracely/internal/core/services"
)

// JournalHandler exposes the daily progress entries. Saving is an
// upsert keyed on the entry's calendar day.
type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{
		svc: svc,
	}
}

type activityLogRequest struct {
	Activity string `json:"activity"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
}

type saveEntryRequest struct {
	EntryDate                string               `json:"entry_date" binding:"required"`
	Activities               []activityLogRequest `json:"activities"`
	JournalEntry             string               `json:"journal_entry"`
	SleepHours               float64              `json:"sleep_hours"`
	Mood                     string               `json:"mood"`
	HealthFeeling            string               `json:"health_feeling"`
	ProductivitySatisfaction string               `json:"productivity_satisfaction"`
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.POST("", h.Save)
		entries.GET("", h.List)
		entries.GET("/:id", h.Get)
		entries.DELETE("/:id", h.Delete)
	}
}

func (h *JournalHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry_date format, expected YYYY-MM-DD"})
		return
	}

	activities := make([]domain.ActivityLog, 0, len(req.Activities))
	for _, a := range req.Activities {
		activities = append(activities, domain.ActivityLog{
			Activity: a.Activity,
			Hours:    a.Hours,
			Minutes:  a.Minutes,
		})
	}

	input := services.SaveEntryInput{
		UserID:                   userID,
		EntryDate:                entryDate,
		Activities:               activities,
		JournalEntry:             req.JournalEntry,
		SleepHours:               req.SleepHours,
		Mood:                     req.Mood,
		HealthFeeling:            req.HealthFeeling,
		ProductivitySatisfaction: req.ProductivitySatisfaction,
	}

	entry, err := h.svc.Save(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
			return
		}

		entry, err := h.svc.GetByDate(c.Request.Context(), userID, day)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, entry)
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *JournalHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	entry, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JournalHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound), errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
	case errors.Is(err, domain.ErrEntryConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEntryInvalidDate),
		errors.Is(err, domain.ErrEntryInvalidSleep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
