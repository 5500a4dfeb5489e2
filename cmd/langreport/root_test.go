package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "langreport" {
			t.Errorf("expected use 'langreport', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		found := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			found[sub.Name()] = true
		}
		for _, name := range []string{"update", "show", "init", "version"} {
			if !found[name] {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestExecuteMissingRepository tests that a run without a repository prints
// a diagnostic and reports exit status 1.
func TestExecuteMissingRepository(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"update", "--config", emptyConfigFile(t), "--file", writeDocument(t, "# Hello\n")})

	if code := execute(cmd, &stderr); code != 1 {
		t.Errorf("expected exit status 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "configuration error: repository not set") {
		t.Errorf("expected diagnostic on stderr, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}
}

// TestExecuteExitStatus runs the binary's Execute in a child process and
// checks the real exit status.
func TestExecuteExitStatus(t *testing.T) {
	if os.Getenv("LANGREPORT_EXECUTE_CHILD") == "1" {
		os.Args = []string{"langreport", "update", "--config", os.Getenv("LANGREPORT_EXECUTE_CONFIG")}
		Execute()
		return
	}

	child := exec.Command(os.Args[0], "-test.run=^TestExecuteExitStatus$")
	child.Env = append(os.Environ(),
		"LANGREPORT_EXECUTE_CHILD=1",
		"LANGREPORT_EXECUTE_CONFIG="+emptyConfigFile(t),
		"GITHUB_REPOSITORY=",
	)
	var stderr bytes.Buffer
	child.Stderr = &stderr

	err := child.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected non-zero exit, got %v (stderr %q)", err, stderr.String())
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("expected exit status 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "repository not set") {
		t.Errorf("expected diagnostic on stderr, got %q", stderr.String())
	}
}
