// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/xkcdbot/internal/api"
	"github.com/taibuivan/xkcdbot/internal/core/comic"
)

const latestRecord = `{"num":3000,"title":"Latest","safe_title":"Latest","img":"https://imgs.xkcd.com/comics/latest.png","alt":"","transcript":"","news":"","link":"","day":"14","month":"10","year":"2024"}`

func newTestServer(checkSession func() error) *api.Server {
	fetcher := comic.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte(latestRecord), nil
	})
	service := comic.NewService(fetcher, "https://xkcd.com")
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckSession: checkSession})

	return api.NewServer("0", slog.New(slog.NewTextHandler(io.Discard, nil)), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comic:     comic.NewHandler(service),
	})
}

func get(server *api.Server, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

/*
TestServer_Probes checks liveness and both readiness outcomes.
*/
func TestServer_Probes(t *testing.T) {
	tests := []struct {
		name       string
		session    func() error
		target     string
		wantStatus int
		wantBody   string
	}{
		{"liveness", nil, "/health", http.StatusOK, `{"data":{"status":"ok"}}`},
		{"ready", func() error { return nil }, "/ready", http.StatusOK, `{"data":{"status":"ready","checks":[{"name":"discord","ok":true}]}}`},
		{"not_ready", func() error { return errors.New("discord session not ready") }, "/ready", http.StatusServiceUnavailable,
			`{"error":"Service not ready","code":"SERVICE_UNAVAILABLE","details":[{"field":"discord","message":"discord session not ready"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(newTestServer(tt.session), tt.target)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

/*
TestServer_ComicPreview reaches the mounted preview routes.
*/
func TestServer_ComicPreview(t *testing.T) {
	server := newTestServer(nil)

	recorder := get(server, "/api/v1/comics/latest?mode=plain")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"content":"https://imgs.xkcd.com/comics/latest.png"`)

	recorder = get(server, "/api/v1/comics/unknown/path")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
