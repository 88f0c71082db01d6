package audit

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/passmeter/internal/meter"
	"github.com/nao1215/passmeter/internal/model"
)

func TestNewProcessor(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		p := NewProcessor(nil)
		if p.Concurrency() != DefaultConcurrency {
			t.Errorf("concurrency = %d, want %d", p.Concurrency(), DefaultConcurrency)
		}
		if p.meter == nil || p.logger == nil {
			t.Error("expected default meter and logger")
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()
		if got := NewProcessor(nil, WithConcurrency(-3)).Concurrency(); got != DefaultConcurrency {
			t.Errorf("concurrency = %d", got)
		}
		if got := NewProcessor(nil, WithConcurrency(3)).Concurrency(); got != 3 {
			t.Errorf("concurrency = %d, want 3", got)
		}
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	candidates := []string{"password", "qwertyuiop", "Tr0ub4dor&3xyzLONG99", "admin2024"}
	p := NewProcessor(meter.New(), WithConcurrency(2))

	summary, err := p.Process(context.Background(), "list.txt", candidates)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if summary.Total != 4 {
		t.Errorf("Total = %d, want 4", summary.Total)
	}
	if summary.Source != "list.txt" {
		t.Errorf("Source = %q", summary.Source)
	}
	if summary.Digest != Digest(candidates) {
		t.Error("digest mismatch")
	}
	if summary.KnownWeakCount != 2 {
		t.Errorf("KnownWeakCount = %d, want 2", summary.KnownWeakCount)
	}
	if summary.TierCounts[model.TierVeryStrong] != 1 {
		t.Errorf("very-strong = %d, want 1", summary.TierCounts[model.TierVeryStrong])
	}
	if summary.MaxScore != 87 {
		t.Errorf("MaxScore = %d, want 87", summary.MaxScore)
	}
	if summary.PatternCounts[model.PatternKeyboard] != 9 {
		t.Errorf("keyboard count = %d, want 9", summary.PatternCounts[model.PatternKeyboard])
	}
}

func TestProcessNoCandidates(t *testing.T) {
	t.Parallel()

	_, err := NewProcessor(nil).Process(context.Background(), "empty", nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestProcessCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProcessor(nil).Process(ctx, "list", []string{"a", "b", "c"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestProcessWithCallback(t *testing.T) {
	t.Parallel()

	candidates := []string{"aaa", "bbb", "ccc", "ddd", "eee"}
	var (
		mu      sync.Mutex
		indexes []int
	)
	err := NewProcessor(nil, WithConcurrency(3)).ProcessWithCallback(context.Background(), candidates,
		func(a model.Assessment, index int) {
			mu.Lock()
			defer mu.Unlock()
			if a.Password != candidates[index] {
				t.Errorf("index %d got assessment for %q", index, a.Password)
			}
			indexes = append(indexes, index)
		})
	if err != nil {
		t.Fatalf("ProcessWithCallback error: %v", err)
	}

	slices.Sort(indexes)
	if !slices.Equal(indexes, []int{0, 1, 2, 3, 4}) {
		t.Errorf("indexes = %v", indexes)
	}
}

func TestReadCandidates(t *testing.T) {
	t.Parallel()

	input := "password\r\n\n  spaced  \nlast"
	got, err := ReadCandidates(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"password", "  spaced  ", "last"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDigest(t *testing.T) {
	t.Parallel()

	a := Digest([]string{"one", "two"})
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64", len(a))
	}
	if a != Digest([]string{"one", "two"}) {
		t.Error("digest is not deterministic")
	}
	if a == Digest([]string{"onetwo"}) || a == Digest([]string{"two", "one"}) {
		t.Error("different lists must have different digests")
	}
}
