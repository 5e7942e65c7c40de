// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/httpclient"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	return data
}

// fakeArchive serves info.0.json documents by path and counts hits.
type fakeArchive struct {
	mu     sync.Mutex
	routes map[string][]byte
	status map[string]int
	hits   map[string]int
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{
		routes: make(map[string][]byte),
		status: make(map[string]int),
		hits:   make(map[string]int),
	}
}

func (a *fakeArchive) serve(path string, body []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes[path] = body
}

func (a *fakeArchive) fail(path string, status int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status[path] = status
}

func (a *fakeArchive) hitCount(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hits[path]
}

func (a *fakeArchive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.hits[r.URL.Path]++
	status, failing := a.status[r.URL.Path]
	body, found := a.routes[r.URL.Path]
	a.mu.Unlock()

	switch {
	case failing:
		w.WriteHeader(status)
	case found:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	default:
		http.NotFound(w, r)
	}
}

// newTestService wires a real transport client to an httptest archive.
func newTestService(t *testing.T, archive *fakeArchive) (*comic.Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(archive)
	t.Cleanup(server.Close)

	client := httpclient.New(time.Second, "xkcdbot-test").WithHTTPClient(server.Client())
	return comic.NewService(client, server.URL), server
}
