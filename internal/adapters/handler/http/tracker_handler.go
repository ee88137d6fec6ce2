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

// TrackerHandler exposes activities and the time sessions recorded
// against them.
type TrackerHandler struct {
	svc *services.TrackerService
}

func NewTrackerHandler(svc *services.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		svc: svc,
	}
}

type activityRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type startSessionRequest struct {
	ActivityID string     `json:"activity_id" binding:"required"`
	StartTime  *time.Time `json:"start_time"`
}

type stopSessionRequest struct {
	EndTime *time.Time `json:"end_time"`
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	activities := router.Group("/activities")
	{
		activities.POST("", h.CreateActivity)
		activities.GET("", h.ListActivities)
		activities.PUT("/:id", h.RenameActivity)
		activities.DELETE("/:id", h.DeleteActivity)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("/start", h.StartSession)
		sessions.POST("/:id/stop", h.StopSession)
		sessions.GET("", h.ListSessions)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}

func (h *TrackerHandler) CreateActivity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateActivityInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	activity, err := h.svc.CreateActivity(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

func (h *TrackerHandler) ListActivities(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.ListActivities(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *TrackerHandler) RenameActivity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.svc.RenameActivity(c.Request.Context(), c.Param("id"), userID, req.Title, req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (h *TrackerHandler) DeleteActivity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.DeleteActivity(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) StartSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime := time.Now().UTC()
	if req.StartTime != nil {
		startTime = req.StartTime.UTC()
	}

	session, err := h.svc.StartSession(c.Request.Context(), userID, req.ActivityID, startTime)
	if err != nil {
		if errors.Is(err, services.ErrSessionAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *TrackerHandler) StopSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req stopSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endTime := time.Now().UTC()
	if req.EndTime != nil {
		endTime = req.EndTime.UTC()
	}

	session, err := h.svc.StopSession(c.Request.Context(), c.Param("id"), userID, endTime)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *TrackerHandler) ListSessions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.ListSessions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *TrackerHandler) DeleteSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	if err := h.svc.DeleteSession(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrActivityTitleEmpty),
		errors.Is(err, domain.ErrActivityTitleTooLong),
		errors.Is(err, domain.ErrSessionAlreadyStopped),
		errors.Is(err, domain.ErrSessionStopBeforeStart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
