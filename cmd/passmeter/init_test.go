package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passmeter/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != configFileName {
			t.Errorf("expected default %q, got %q", configFileName, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a loadable config file", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), "sub", ".passmeter")

		cmd := NewInitCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"-o", outputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Created configuration file") {
			t.Errorf("unexpected output: %q", out.String())
		}

		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("expected config file to be created: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permission 0600, got %o", perm)
		}

		f, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("template does not load: %v", err)
		}
		if f.Server.MaxBodyBytes != config.DefaultMaxBodySize {
			t.Errorf("expected maxBodyBytes %d, got %d", config.DefaultMaxBodySize, f.Server.MaxBodyBytes)
		}
		if f.Audit.BatchSize != config.DefaultBatchSize {
			t.Errorf("expected batchSize %d, got %d", config.DefaultBatchSize, f.Audit.BatchSize)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), ".passmeter")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected error for existing file")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath) //nolint:gosec // test file
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "existing" {
			t.Error("existing file was modified")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), ".passmeter")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"-o", outputPath, "-f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		content, err := os.ReadFile(outputPath) //nolint:gosec // test file
		if err != nil {
			t.Fatal(err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})
}
