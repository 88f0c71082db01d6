package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	if v := getVersion(); v == "" {
		t.Error("expected non-empty version")
	}
}

func TestGetCommitAndDate(t *testing.T) {
	t.Parallel()

	if c := getCommit(); c == "" || len(c) > 7 && c != "unknown" {
		t.Errorf("unexpected commit %q", c)
	}
	if d := getDate(); d == "" {
		t.Error("expected non-empty date")
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"passmeter version ", "commit:", "built:"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
}

func TestBuildSettingUnknownKey(t *testing.T) {
	t.Parallel()

	if got := buildSetting("no.such.key"); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}
