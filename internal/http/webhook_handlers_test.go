package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/config"
	statsmodels "slh-ecosystem-backend/internal/features/stats/models"
)

const testToken = "12345:test-token"

type fakeDispatcher struct {
	updates []*tgbotapi.Update
}

func (f *fakeDispatcher) HandleUpdate(_ context.Context, update *tgbotapi.Update) {
	f.updates = append(f.updates, update)
}

type fakeStats struct {
	stats *statsmodels.Stats
}

func (f *fakeStats) Collect(context.Context) *statsmodels.Stats {
	if f.stats != nil {
		return f.stats
	}
	return &statsmodels.Stats{}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Origin = "http://localhost:3000"
	cfg.Server.MaxBodyBytes = 1024
	cfg.Telegram.BotToken = testToken
	cfg.SiteURL = "https://slh.example.test/"
	return cfg
}

func testRouter(deps Dependencies) (*fakeDispatcher, http.Handler) {
	dispatcher := &fakeDispatcher{}
	deps.Dispatcher = dispatcher
	if deps.Cfg == nil {
		deps.Cfg = testConfig()
	}
	if deps.Stats == nil {
		deps.Stats = &fakeStats{}
	}
	return dispatcher, NewRouter(deps)
}

func postWebhook(router http.Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/"+token, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRejectsWrongToken(t *testing.T) {
	dispatcher, router := testRouter(Dependencies{})

	rec := postWebhook(router, "wrong-token", `{"update_id":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, dispatcher.updates, "updates with a bad token never reach the dispatcher")
}

func TestWebhookRejectsOversizedBody(t *testing.T) {
	dispatcher, router := testRouter(Dependencies{})

	rec := postWebhook(router, testToken, `{"text":"`+strings.Repeat("a", 2048)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, dispatcher.updates)
}

func TestWebhookRejectsMalformedJSON(t *testing.T) {
	dispatcher, router := testRouter(Dependencies{})

	rec := postWebhook(router, testToken, `{"update_id":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dispatcher.updates)
}

func TestWebhookDispatchesValidUpdate(t *testing.T) {
	dispatcher, router := testRouter(Dependencies{})

	body := `{"update_id":42,"message":{"message_id":1,"chat":{"id":12345,"type":"private"},"text":"/start"}}`
	rec := postWebhook(router, testToken, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.updates, 1)
	assert.Equal(t, 42, dispatcher.updates[0].UpdateID)
	require.NotNil(t, dispatcher.updates[0].Message)
	assert.Equal(t, int64(12345), dispatcher.updates[0].Message.Chat.ID)
}

func TestHealthReportsComponents(t *testing.T) {
	_, router := testRouter(Dependencies{
		StorageHealth:  func(context.Context) error { return nil },
		RedisHealth:    func(context.Context) error { return assert.AnError },
		TelegramHealth: func() bool { return true },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "a degraded backend never fails the probe")

	var payload struct {
		Status     string          `json:"status"`
		Components map[string]bool `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "degraded", payload.Status)
	assert.True(t, payload.Components["database"])
	assert.False(t, payload.Components["redis"])
	assert.True(t, payload.Components["telegram"])
}

func TestHealthSkipsUnconfiguredComponents(t *testing.T) {
	_, router := testRouter(Dependencies{
		StorageHealth: func(context.Context) error { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload struct {
		Status     string          `json:"status"`
		Components map[string]bool `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload.Status)
	assert.NotContains(t, payload.Components, "redis")
	assert.NotContains(t, payload.Components, "telegram")
}

func TestStatsEndpointRendersAggregates(t *testing.T) {
	_, router := testRouter(Dependencies{
		Stats: &fakeStats{stats: &statsmodels.Stats{TotalUsers: 3, TotalRevenue: 15000}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload statsmodels.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, int64(3), payload.TotalUsers)
	assert.Equal(t, float64(15000), payload.TotalRevenue)
}

func TestRootRedirectsToSite(t *testing.T) {
	_, router := testRouter(Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://slh.example.test/", rec.Header().Get("Location"))
}
