package entropy

import (
	"math"
	"slices"
	"testing"

	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

func TestCharacterSets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		want     []model.CharacterSet
		space    int
	}{
		{"", []model.CharacterSet{}, 0},
		{"abc", []model.CharacterSet{model.CharacterSetLowercase}, 26},
		{"!a1B", []model.CharacterSet{
			model.CharacterSetLowercase,
			model.CharacterSetUppercase,
			model.CharacterSetNumbers,
			model.CharacterSetSymbols,
		}, 94},
		{"123", []model.CharacterSet{model.CharacterSetNumbers}, 10},
		{"é", []model.CharacterSet{model.CharacterSetSymbols}, 32},
		{"Ab", []model.CharacterSet{model.CharacterSetLowercase, model.CharacterSetUppercase}, 52},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			if got := CharacterSets(tc.password); !slices.Equal(got, tc.want) {
				t.Errorf("CharacterSets(%q) = %v, want %v", tc.password, got, tc.want)
			}
			if got := CharacterSpace(tc.password); got != tc.space {
				t.Errorf("CharacterSpace(%q) = %d, want %d", tc.password, got, tc.space)
			}
		})
	}
}

func TestBase(t *testing.T) {
	t.Parallel()

	if got := Base(""); got != 0 {
		t.Errorf("Base(\"\") = %v", got)
	}
	want := 8 * math.Log2(26)
	if got := Base("password"); math.Abs(got-want) > 1e-9 {
		t.Errorf("Base(password) = %v, want %v", got, want)
	}
	// rune count, not bytes
	if got, want := Base("éé"), 2*math.Log2(32); math.Abs(got-want) > 1e-9 {
		t.Errorf("Base(éé) = %v, want %v", got, want)
	}
}

func TestRepetitionPenalty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		want     float64
	}{
		{"", 0},
		{"abcdefghij", 0.15},
		{"password", 0.375},
		{"aaaa", 0.8},
		{"aA", 0.75},
	}

	for _, tc := range testCases {
		if got := RepetitionPenalty(tc.password); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RepetitionPenalty(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestPatternPenalty(t *testing.T) {
	t.Parallel()

	tables := reference.Default()
	testCases := []struct {
		password string
		want     float64
	}{
		{"", 0},
		{"password", 0.4},
		{"qwertyuiop", 0.8},
		{"Tr0ub4dor&3xyzLONG99", 0.075},
		{"zq1984", 0.5},
		{"xy2024zq", 0.5},
		{"usertest", 0.6},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			got := PatternPenalty(tc.password, tables)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("PatternPenalty(%q) = %v, want %v", tc.password, got, tc.want)
			}
			if got < 0 || got > 0.8 {
				t.Errorf("PatternPenalty(%q) = %v out of [0, 0.8]", tc.password, got)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		want     float64
	}{
		{"", 0},
		{"password", 9.9},
		{"qwertyuiop", 0},
		{"aaaa", 0.8},
		{"Tr0ub4dor&3xyzLONG99", 97.0},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			if got := Estimate(tc.password, nil); got != tc.want {
				t.Errorf("Estimate(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestEstimateUsesCustomTables(t *testing.T) {
	t.Parallel()

	plain := Estimate("zqmvkrtw", reference.New(nil, nil, nil))
	walked := Estimate("zqmvkrtw", reference.New(nil, nil, []string{"zqmv"}))
	if walked >= plain {
		t.Errorf("custom keyboard pattern should lower entropy: %v >= %v", walked, plain)
	}
}
