package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ersonp/vgame-horizon/internal/application/handlers"
	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/mocks"
	"github.com/ersonp/vgame-horizon/internal/domain/services"
)

const kirbyDetails = `{"directors": [{"name": "Masahiro Sakurai", "known_for": ["Super Smash Bros."]}]}`

func releaseDate(year int, month time.Month, day int) *int64 {
	v := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return &v
}

type fixture struct {
	catalog *mocks.Catalog
	llm     *mocks.LLMClient
	history *mocks.LookupLog
	server  *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog: &mocks.Catalog{
			Games: []entities.Game{
				{ID: 1, Name: "Kirby Air Riders", FirstReleaseDate: releaseDate(2025, time.November, 20)},
			},
			Results: []entities.Game{{ID: 2, Name: "Kirby and the Forgotten Land"}},
		},
		llm:     &mocks.LLMClient{Response: kirbyDetails},
		history: &mocks.LookupLog{},
	}

	releases := services.NewReleaseService(f.catalog, nil, nil, nil)
	details := services.NewDetailService(f.llm, services.DetailOptions{}, nil)
	srv := NewServer(":0", Deps{
		Releases: handlers.NewReleasesHandler(releases, entities.PlatformSwitch),
		Details:  handlers.NewDetailsHandler(details, f.history, nil),
		History:  handlers.NewHistoryHandler(f.history),
		Services: Services{Catalog: true, LLM: true, History: true},
	}, nil)

	f.server = httptest.NewServer(srv.Handler())
	t.Cleanup(f.server.Close)
	return f
}

func (f *fixture) get(t *testing.T, path string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(f.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	var body healthResponse
	resp := f.get(t, "/health", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Services.LLM)
}

func TestServer_Games(t *testing.T) {
	f := newFixture(t)

	var body handlers.GamesView
	resp := f.get(t, "/api/games?year=2025&month=11&limit=5&translate=false", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, 2025, body.Year)
	assert.Equal(t, 11, body.Month)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Kirby Air Riders", body.Games[0].Name)
	assert.Equal(t, 5, f.catalog.LastQuery.Limit)
}

func TestServer_Games_BadRequest(t *testing.T) {
	f := newFixture(t)

	for _, query := range []string{"month=13", "month=abc", "limit=0", "limit=101", "translate=maybe", "platform=saturn"} {
		t.Run(query, func(t *testing.T) {
			var body ErrorResponse
			resp := f.get(t, "/api/games?year=2025&"+query, &body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Bad Request", body.Error)
		})
	}
}

func TestServer_Search(t *testing.T) {
	f := newFixture(t)

	var body handlers.SearchView
	resp := f.get(t, "/api/search?q=kirby&translate=false", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "kirby", f.catalog.LastKeyword)

	resp = f.get(t, "/api/search", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Detail(t *testing.T) {
	f := newFixture(t)

	var body handlers.DetailView
	path := "/api/games/" + url.PathEscape("卡比驾驶") + "/detail?fallback_name=" + url.QueryEscape("Kirby Air Riders")
	resp := f.get(t, path, &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "卡比驾驶", body.Name)
	require.Len(t, body.Directors, 1)
	assert.Equal(t, "Masahiro Sakurai", body.Directors[0].Name)
	require.Len(t, f.history.Lookups, 1)
	assert.Equal(t, "Kirby Air Riders", f.history.Lookups[0].Fallback)

	var history handlers.HistoryView
	resp = f.get(t, "/api/history?limit=10", &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, history.Total)
}

func TestServer_Detail_EmptyShape(t *testing.T) {
	f := newFixture(t)
	f.llm.Response = ""
	f.llm.Err = errors.New("timeout")

	var body map[string]any
	resp := f.get(t, "/api/games/Unknown%20Game/detail", &body)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Unknown Game", body["name"])
	assert.Equal(t, []any{}, body["directors"])
	assert.Nil(t, body["series"])
}

func TestServer_Unavailable(t *testing.T) {
	srv := httptest.NewServer(NewServer(":0", Deps{}, nil).Handler())
	t.Cleanup(srv.Close)

	for _, path := range []string{"/api/games", "/api/search?q=zelda", "/api/games/Zelda/detail", "/api/history"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		})
	}
}

func TestServer_NotFound(t *testing.T) {
	f := newFixture(t)

	var body ErrorResponse
	resp := f.get(t, "/api/unknown", &body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body.Message, "/api/unknown")
}

func TestCORS(t *testing.T) {
	f := newFixture(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, f.server.URL+"/api/games", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
	assert.Zero(t, f.catalog.LastQuery.Year, "preflight does not reach the handler")
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := WithLogging(zap.New(core), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/brew", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
}

func TestServer_Run_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- NewServer(addr, Deps{}, nil).Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
