package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/model"
)

// languagesServer is a fake GitHub API that records the requests it receives.
type languagesServer struct {
	*httptest.Server

	mu            sync.Mutex
	hits          int
	paths         []string
	authorization string
}

// newLanguagesServer starts a server answering every request with status and body.
func newLanguagesServer(t *testing.T, status int, body string) *languagesServer {
	t.Helper()

	s := &languagesServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits++
		s.paths = append(s.paths, r.URL.Path)
		s.authorization = r.Header.Get("Authorization")
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

// requests returns the number of requests and the last path and Authorization header.
func (s *languagesServer) requests() (int, string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := ""
	if len(s.paths) > 0 {
		last = s.paths[len(s.paths)-1]
	}
	return s.hits, last, s.authorization
}

// envFrom returns a LookupFunc backed by a map instead of the process environment.
func envFrom(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// emptyConfigFile writes an empty configuration file so tests never pick up
// a .langreport from the working or home directory.
func emptyConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".langreport")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// writeDocument writes content to a README.md in a fresh directory.
func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// readDocument returns the content of path.
func readDocument(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	return string(data)
}

// writeFile replaces the content of path.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}

// newTestRun returns an empty run for octocat/hello.
func newTestRun() *model.Run {
	return model.NewRun("octocat/hello")
}
