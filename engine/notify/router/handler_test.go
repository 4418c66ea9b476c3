package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remindly/remindly/engine/integration/push"
	"github.com/remindly/remindly/engine/notify/router"
	"github.com/remindly/remindly/engine/task/infra/memory"
	"github.com/remindly/remindly/engine/task/uc"
)

func setupRouter(factory *uc.Factory, sender *push.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	router.RegisterRoutes(r, factory, sender)
	return r
}

func TestCheck(t *testing.T) {
	t.Run("Should return notifications for deadlines within 24 hours", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		deadline := time.Now().Add(3 * time.Hour).Format(time.RFC3339)
		_, err := factory.CreateTask(&uc.CreateTaskInput{
			Summary:  "Submit report",
			Deadline: deadline,
			Priority: "High",
		}).Execute(context.Background())
		require.NoError(t, err)
		r := setupRouter(factory, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/check", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Message string `json:"message"`
			Data    []struct {
				Summary        string `json:"summary"`
				Urgency        string `json:"urgency"`
				HoursRemaining int    `json:"hoursRemaining"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Message)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Submit report", body.Data[0].Summary)
		assert.Equal(t, "warning", body.Data[0].Urgency)
	})

	t.Run("Should return an empty list when nothing is due", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/check", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})
}

func TestSubscribe(t *testing.T) {
	newSender := func(t *testing.T) *push.Sender {
		t.Helper()
		sender, err := push.NewSender(&push.Config{
			VAPIDPublicKey:  "BNc1rW5XyEqJVBOOYkyVzEzvfuIOWCUxYzrAE9-2WuxGTsalQ57lFvGYfl3M-DWiSrMjbYLPrlB8ej9JO3wmvTk",
			VAPIDPrivateKey: "p0GHzfVYiJok1KBnX2bkAHy9svLlPuvFDLdVrRSIX5w",
			Subject:         "mailto:test@example.com",
		})
		require.NoError(t, err)
		return sender
	}

	t.Run("Should register a subscription", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		sender := newSender(t)
		r := setupRouter(factory, sender)
		payload := `{"endpoint":"https://push.example.com/sub/1","keys":{"p256dh":"key","auth":"auth"}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/subscribe", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, sender.SubscriberCount())
	})

	t.Run("Should reject a subscription without an endpoint", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory, newSender(t))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/subscribe", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should report push as unconfigured when disabled", func(t *testing.T) {
		factory := uc.NewFactory(memory.NewRepository())
		r := setupRouter(factory, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/subscribe", strings.NewReader(`{"endpoint":"https://x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Push notifications are not configured")
	})
}
