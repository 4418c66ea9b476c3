package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/engine/task/infra/memory"
	"github.com/remindly/remindly/engine/task/router"
	"github.com/remindly/remindly/engine/task/uc"
)

func setupRouter(factory *uc.Factory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	router.RegisterRoutes(r, factory)
	return r
}

func seedTask(t *testing.T, factory *uc.Factory, summary, priority, category string) *task.Task {
	t.Helper()
	created, err := factory.CreateTask(&uc.CreateTaskInput{
		Summary:  summary,
		Priority: priority,
		Category: category,
	}).Execute(context.Background())
	require.NoError(t, err)
	return created
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListTasks(t *testing.T) {
	t.Run("Should return tasks ranked by priority", func(t *testing.T) {
		repo := memory.NewRepository()
		factory := uc.NewFactory(repo)
		seedTask(t, factory, "low task", "Low", "Work")
		seedTask(t, factory, "high task", "High", "Work")
		r := setupRouter(factory)
		w := doRequest(r, http.MethodGet, "/tasks")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "success", body["message"])
		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 2)
		first, ok := data[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "high task", first["summary"])
	})

	t.Run("Should return an empty list for an empty store", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory)
		w := doRequest(r, http.MethodGet, "/tasks")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCompleteTask(t *testing.T) {
	t.Run("Should mark a task completed without removing it", func(t *testing.T) {
		repo := memory.NewRepository()
		factory := uc.NewFactory(repo)
		created := seedTask(t, factory, "finish me", "Medium", "Work")
		r := setupRouter(factory)
		w := doRequest(r, http.MethodDelete, "/tasks/"+created.ID.String())
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		assert.Equal(t, "Task marked as completed", body["message"])
		assert.Equal(t, created.ID.String(), body["id"])
		all, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, task.StatusCompleted, all[0].Status)
	})

	t.Run("Should fail for an unknown task", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory)
		w := doRequest(r, http.MethodDelete, "/tasks/"+core.MustNewID().String())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeEnvelope(t, w)
		assert.Contains(t, body, "error")
	})

	t.Run("Should fail for a malformed id", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory)
		w := doRequest(r, http.MethodDelete, "/tasks/not-an-id")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListCategories(t *testing.T) {
	t.Run("Should return distinct categories", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		seedTask(t, factory, "a", "Medium", "Finance")
		seedTask(t, factory, "b", "Medium", "Work")
		seedTask(t, factory, "c", "Medium", "Finance")
		r := setupRouter(factory)
		w := doRequest(r, http.MethodGet, "/tasks/categories")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		data, ok := body["data"].([]any)
		require.True(t, ok)
		assert.ElementsMatch(t, []any{"Finance", "Work"}, data)
	})
}

func TestListByCategory(t *testing.T) {
	t.Run("Should return only tasks in the category", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		seedTask(t, factory, "budget review", "High", "Finance")
		seedTask(t, factory, "gym", "Low", "Health")
		r := setupRouter(factory)
		w := doRequest(r, http.MethodGet, "/tasks/category/Finance")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeEnvelope(t, w)
		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 1)
		entry, ok := data[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "budget review", entry["summary"])
	})
}
