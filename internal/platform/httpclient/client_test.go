// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/httpclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httpclient.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.New(time.Second, "xkcdbot-test").WithHTTPClient(server.Client())
	return client, server
}

/*
TestClient_Fetch covers success and every status class.
*/
func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantStatus int
	}{
		{name: "ok", statusCode: http.StatusOK, body: `{"num":1}`},
		{name: "not_found", statusCode: http.StatusNotFound, wantStatus: http.StatusNotFound},
		{name: "server_error", statusCode: http.StatusInternalServerError, wantStatus: http.StatusInternalServerError},
		{name: "not_modified", statusCode: http.StatusNotModified, wantStatus: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "xkcdbot-test", r.Header.Get(constants.HeaderUserAgent))
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})

			body, err := client.Fetch(context.Background(), server.URL+"/info.0.json")

			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(body))
				return
			}

			require.Error(t, err)
			assert.Nil(t, body)
			assert.True(t, apperr.IsCode(err, apperr.CodeTransport))

			var statusErr *httpclient.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
		})
	}
}

/*
TestClient_Fetch_NetworkError maps connection failures to TRANSPORT_FAILURE.
*/
func TestClient_Fetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := httpclient.New(time.Second, "")
	_, err := client.Fetch(context.Background(), url+"/info.0.json")

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeTransport))
}

/*
TestClient_Fetch_Timeout verifies the fixed client timeout is enforced.
*/
func TestClient_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := httpclient.New(50*time.Millisecond, "")
	_, err := client.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeTransport))
}

/*
TestClient_Fetch_BodyTooLarge rejects oversized documents.
*/
func TestClient_Fetch_BodyTooLarge(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", constants.MaxRecordBytes+1)))
	})

	_, err := client.Fetch(context.Background(), server.URL)
	assert.True(t, apperr.IsCode(err, apperr.CodeTransport))
}
