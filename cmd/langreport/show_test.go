package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/model"
	"github.com/nao1215/langreport/internal/report"
)

// runShow executes the show command and returns stdout and the error.
func runShow(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newShowCmd(envFrom(env))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", emptyConfigFile(t)}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// TestRunShowCmd tests the show command output formats.
func TestRunShowCmd(t *testing.T) {
	t.Parallel()

	env := map[string]string{"GITHUB_REPOSITORY": "octocat/hello"}

	t.Run("markdown by default", func(t *testing.T) {
		t.Parallel()

		server := newLanguagesServer(t, http.StatusOK, languagesPayload)

		out, err := runShow(t, env, "--api-url", server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "|") {
			t.Errorf("expected markdown table, got %q", out)
		}
		if strings.Contains(out, config.DefaultStartMarker) {
			t.Errorf("expected body without markers, got %q", out)
		}
	})

	t.Run("chart flag adds mermaid block", func(t *testing.T) {
		t.Parallel()

		server := newLanguagesServer(t, http.StatusOK, languagesPayload)

		out, err := runShow(t, env, "--api-url", server.URL, "--chart")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "```mermaid") {
			t.Errorf("expected mermaid block, got %q", out)
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		server := newLanguagesServer(t, http.StatusOK, languagesPayload)

		out, err := runShow(t, env, "--api-url", server.URL, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got model.Report
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if got.Repository != "octocat/hello" || got.TotalBytes != 100 {
			t.Errorf("unexpected report %+v", got)
		}
		if len(got.Rows) != 2 || got.Rows[0].Language != "Python" {
			t.Errorf("expected Python first, got %+v", got.Rows)
		}
	})

	t.Run("simple output", func(t *testing.T) {
		t.Parallel()

		server := newLanguagesServer(t, http.StatusOK, `{}`)

		out, err := runShow(t, env, "--api-url", server.URL, "--simple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "LANGUAGES: octocat/hello") || !strings.Contains(out, report.NoDataMessage) {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("json and simple are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		server := newLanguagesServer(t, http.StatusOK, languagesPayload)

		if _, err := runShow(t, env, "--api-url", server.URL, "--json", "--simple"); err == nil {
			t.Error("expected error for conflicting flags")
		}
		if hits, _, _ := server.requests(); hits != 0 {
			t.Errorf("expected no requests, got %d", hits)
		}
	})

	t.Run("missing repository is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := runShow(t, map[string]string{})

		var cfgErr *config.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected *config.ConfigurationError, got %v", err)
		}
	})
}
