package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/lucapasini/tracely/internal/adapters/handler/http"
	"github.com/lucapasini/tracely/internal/adapters/handler/http/middleware"
	"github.com/lucapasini/tracely/internal/adapters/repository"
	"github.com/lucapasini/tracely/internal/core/services"
)

const e2eUserID = "e2e-tester-1"

type createResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(userID string) {}

// setupRouter wires handlers against in-memory repositories, with a
// stub auth middleware injecting a fixed user.
func setupRouter() *gin.Engine {
	goalRepo := repository.NewInMemoryGoalRepository()
	todoRepo := repository.NewInMemoryTodoRepository()

	goalHandler := adapterHTTP.NewGoalHandler(services.NewGoalService(goalRepo))
	todoHandler := adapterHTTP.NewTodoHandler(services.NewTodoService(todoRepo, noopEnqueuer{}))

	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, e2eUserID)
		c.Next()
	})
	goalHandler.RegisterRoutes(api)
	todoHandler.RegisterRoutes(api)

	return router
}

func doJSON(router *gin.Engine, method, path, payload string) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != "" {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_GoalLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	var goalID string

	t.Run("1. Create Goal", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/goals", `{
			"title": "Read 12 books",
			"max_progress": 12
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp createResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		goalID = resp.ID
	})

	t.Run("2. Update Goal", func(t *testing.T) {
		require.NotEmpty(t, goalID, "Create step failed, cannot update")

		w := doJSON(router, http.MethodPut, "/api/v1/goals/"+goalID, `{
			"title": "Read 20 books",
			"max_progress": 20
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("3. Set Progress", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/v1/goals/"+goalID+"/progress", `{"progress": 5}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"progress":5`)
	})

	t.Run("4. Reaching Max Completes Goal", func(t *testing.T) {
		w := doJSON(router, http.MethodPatch, "/api/v1/goals/"+goalID+"/progress", `{"progress": 20}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_completed":true`)
	})

	t.Run("5. Delete Goal", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/v1/goals/"+goalID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("6. Verify Delete", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/goals", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), goalID)
	})

	t.Run("7. Validation Error", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/goals", `{"description": "no title"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEndToEnd_TodoLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	var todoID string

	t.Run("1. Create Todo", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/todos", `{
			"title": "Ship the release",
			"priority": "high"
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp createResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		todoID = resp.ID
	})

	t.Run("2. Complete Todo", func(t *testing.T) {
		require.NotEmpty(t, todoID)

		w := doJSON(router, http.MethodPost, "/api/v1/todos/"+todoID+"/complete", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_completed":true`)
	})

	t.Run("3. Complete Twice Fails", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/todos/"+todoID+"/complete", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("4. Reopen Todo", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/todos/"+todoID+"/reopen", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_completed":false`)
	})

	t.Run("5. Invalid Priority", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/todos", `{
			"title": "Bad priority",
			"priority": "urgent"
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
