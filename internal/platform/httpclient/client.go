// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package httpclient provides the single-shot GET transport used to reach the
comic archive.

Core Responsibilities:

  - One attempt: no retries and no backoff. A failed GET is terminal.
  - Bounded: a fixed client timeout and a capped response body.
  - Typed: every failure is an [apperr.AppError] with code TRANSPORT_FAILURE.

The caller blocks on [Client.Fetch]; chat entry points run it on the
per-event goroutine so the gateway reader is never stalled.
*/
package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/ctxutil"
)

// StatusError records a non-success HTTP response from the archive.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// NotFound reports whether the archive answered 404.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client is a thin, concurrency-safe wrapper over [http.Client].
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a [Client] with a fixed timeout.
func New(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultFetchTimeout
	}
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// WithHTTPClient swaps the underlying [http.Client]. Tests use it to point at
// an httptest server's client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.http = httpClient
	return c
}

/*
Fetch performs one GET against url and returns the response body.

Parameters:
  - ctx: context.Context (cancellation only; the timeout is fixed on the client)
  - url: string (absolute archive URL)

Returns:
  - []byte: the body of a 2xx response
  - error: apperr TRANSPORT_FAILURE for network errors and non-2xx statuses
*/
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := ctxutil.GetLogger(ctx)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.TransportFailure(fmt.Errorf("create request: %w", err))
	}
	request.Header.Set(constants.HeaderUserAgent, c.userAgent)
	request.Header.Set(constants.HeaderAccept, "application/json")

	startTime := time.Now()
	response, err := c.http.Do(request)
	if err != nil {
		logger.DebugContext(ctx, "archive_request_failed", slog.String("url", url), slog.Any("error", err))
		return nil, apperr.TransportFailure(fmt.Errorf("execute request: %w", err))
	}
	defer response.Body.Close()

	logger.DebugContext(ctx, "archive_request_finished",
		slog.String("url", url),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 4<<10))
		return nil, apperr.TransportFailure(&StatusError{URL: url, StatusCode: response.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, constants.MaxRecordBytes+1))
	if err != nil {
		return nil, apperr.TransportFailure(fmt.Errorf("read response: %w", err))
	}
	if len(body) > constants.MaxRecordBytes {
		return nil, apperr.TransportFailure(fmt.Errorf("response exceeds %d bytes", constants.MaxRecordBytes))
	}

	return body, nil
}
