package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/passmeter/internal/config"
	"github.com/nao1215/passmeter/internal/database"
	"github.com/nao1215/passmeter/internal/model"
)

func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()
	if cmd.Use != "audit <file>" {
		t.Errorf("unexpected Use: got %q", cmd.Use)
	}

	batch := cmd.Flags().Lookup("batch")
	if batch == nil {
		t.Fatal("expected batch flag")
	}
	if batch.Shorthand != "b" {
		t.Errorf("expected shorthand 'b', got %q", batch.Shorthand)
	}
	if batch.DefValue != "10" {
		t.Errorf("expected default '10', got %q", batch.DefValue)
	}

	for _, name := range []string{"source", "no-save", "db-dir", "json", "markdown", "output", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q to exist", name)
		}
	}
}

func TestSourceLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"-", "stdin"},
		{"passwords.txt", "passwords.txt"},
		{filepath.Join("data", "lists", "staff.txt"), "staff.txt"},
	}
	for _, tt := range tests {
		if got := sourceLabel(tt.path); got != tt.want {
			t.Errorf("sourceLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func writeList(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passwords.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAuditCmd(t *testing.T) {
	t.Parallel()

	t.Run("saves to history and prints JSON", func(t *testing.T) {
		t.Parallel()
		dbDir := t.TempDir()
		list := writeList(t, "password", "qwerty2024", "Tr0ub4dor&3xK9!mZ")

		out, err := runRoot(t, "", "audit", "--json", "--db-dir", dbDir, "-b", "2", list)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var summary model.AuditSummary
		if err := json.Unmarshal([]byte(out), &summary); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if summary.Total != 3 {
			t.Errorf("expected 3 passwords, got %d", summary.Total)
		}
		if summary.ID == 0 {
			t.Error("expected the saved run ID in the report")
		}
		if summary.Source != "passwords.txt" {
			t.Errorf("expected source passwords.txt, got %q", summary.Source)
		}
		for _, pw := range []string{"qwerty2024", "Tr0ub4dor"} {
			if strings.Contains(out, pw) {
				t.Errorf("audit report leaked %q", pw)
			}
		}

		db, err := database.Open(dbDir, database.DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		defer db.Close()
		records, err := db.ListAudits(t.Context(), "passwords.txt")
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 || records[0].ID != summary.ID {
			t.Errorf("expected one stored run with ID %d, got %+v", summary.ID, records)
		}
	})

	t.Run("no-save leaves no database", func(t *testing.T) {
		t.Parallel()
		dbDir := t.TempDir()
		list := writeList(t, "abc", "letmein")

		out, err := runRoot(t, "", "audit", "--no-save", "--db-dir", dbDir, list)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "PASSWORD AUDIT REPORT") {
			t.Errorf("expected audit report, got %q", out)
		}
		if _, err := os.Stat(filepath.Join(dbDir, database.FileName)); !os.IsNotExist(err) {
			t.Error("expected no database file")
		}
	})

	t.Run("reads stdin with a custom source", func(t *testing.T) {
		t.Parallel()
		dbDir := t.TempDir()

		out, err := runRoot(t, "abc\nletmein\n", "audit", "--json", "--db-dir", dbDir, "-s", "team", "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var summary model.AuditSummary
		if err := json.Unmarshal([]byte(out), &summary); err != nil {
			t.Fatal(err)
		}
		if summary.Source != "team" || summary.Total != 2 {
			t.Errorf("unexpected summary: source=%q total=%d", summary.Source, summary.Total)
		}
	})

	t.Run("empty list fails", func(t *testing.T) {
		t.Parallel()
		list := writeList(t, "")
		_, err := runRoot(t, "", "audit", "--no-save", list)
		if err == nil {
			t.Fatal("expected error for empty list")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		_, err := runRoot(t, "", "audit", "--no-save", filepath.Join(t.TempDir(), "missing.txt"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("invalid batch size fails", func(t *testing.T) {
		t.Parallel()
		list := writeList(t, "abc")
		_, err := runRoot(t, "", "audit", "--no-save", "-b", "0", list)
		if err == nil {
			t.Fatal("expected error for batch size 0")
		}
	})

	t.Run("requires exactly one file", func(t *testing.T) {
		t.Parallel()
		_, err := runRoot(t, "", "audit")
		if err == nil {
			t.Fatal("expected error without arguments")
		}
	})
}

func TestAuditCmdUsesConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	weakPath := filepath.Join(dir, "weak.txt")
	if err := os.WriteFile(weakPath, []byte("Zebra#Lantern42\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, config.DefaultConfigFile)
	cfgYAML := "references:\n  weakPasswordsFile: weak.txt\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0600); err != nil {
		t.Fatal(err)
	}
	list := writeList(t, "Zebra#Lantern42")

	out, err := runRoot(t, "", "audit", "--json", "--no-save", "-c", cfgPath, list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var summary model.AuditSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.KnownWeakCount != 1 {
		t.Errorf("expected the configured weak password to be known, got %d", summary.KnownWeakCount)
	}
}

func TestAuditCmdMissingConfigFile(t *testing.T) {
	t.Parallel()

	list := writeList(t, "abc")
	_, err := runRoot(t, "", "audit", "--no-save", "-c", filepath.Join(t.TempDir(), "nope.yaml"), list)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
