// Package entropy estimates the effective entropy of a password.
//
// The estimate starts from length × log2(character space) and is reduced by
// two penalties: one for the most repeated character and one for predictable
// patterns such as keyboard walks, sequences, credential words and years.
// It is a heuristic, not a rigorous model.
package entropy

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/passmeter/internal/detect"
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

// Character space contributed by each class.
const (
	LowercaseSpace = 26
	UppercaseSpace = 26
	NumberSpace    = 10
	SymbolSpace    = 32
)

// Penalty limits and multipliers.
const (
	maxPenalty          = 0.8
	repetitionWeight    = 1.5
	repetitionDamping   = 1.2
	patternDamping      = 1.3
	keyboardWeight      = 0.6
	sequenceWeight      = 0.5
	longNumberPenalty   = 0.3
	yearPatternPenalty  = 0.2
	roundingDecimalBase = 10
)

// wordPenalties are checked in order as case-insensitive substrings.
var wordPenalties = []struct {
	word    string
	penalty float64
}{
	{"password", 0.4},
	{"admin", 0.4},
	{"user", 0.3},
	{"test", 0.3},
	{"login", 0.3},
}

// classes describes each character class in enumeration order.
// Symbols are anything outside ASCII letters and digits.
var classes = []struct {
	set   model.CharacterSet
	space int
	match func(r rune) bool
}{
	{model.CharacterSetLowercase, LowercaseSpace, func(r rune) bool { return r >= 'a' && r <= 'z' }},
	{model.CharacterSetUppercase, UppercaseSpace, func(r rune) bool { return r >= 'A' && r <= 'Z' }},
	{model.CharacterSetNumbers, NumberSpace, func(r rune) bool { return r >= '0' && r <= '9' }},
	{model.CharacterSetSymbols, SymbolSpace, isSymbol},
}

func isSymbol(r rune) bool {
	return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
}

func containsClass(password string, match func(rune) bool) bool {
	return strings.IndexFunc(password, match) >= 0
}

// CharacterSets returns the classes present in password in enumeration order.
func CharacterSets(password string) []model.CharacterSet {
	sets := make([]model.CharacterSet, 0, len(classes))
	for _, c := range classes {
		if containsClass(password, c.match) {
			sets = append(sets, c.set)
		}
	}
	return sets
}

// CharacterSpace returns the sum of the spaces of the classes present.
func CharacterSpace(password string) int {
	space := 0
	for _, c := range classes {
		if containsClass(password, c.match) {
			space += c.space
		}
	}
	return space
}

// Base returns length × log2(character space), or 0 for an empty password.
func Base(password string) float64 {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(CharacterSpace(password)))
}

// RepetitionPenalty returns min(0.8, count of the most frequent character /
// length × 1.5). The comparison is case-sensitive.
func RepetitionPenalty(password string) float64 {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return 0
	}
	counts := make(map[rune]int, n)
	maxCount := 0
	for _, r := range password {
		counts[r]++
		maxCount = max(maxCount, counts[r])
	}
	return math.Min(maxPenalty, float64(maxCount)/float64(n)*repetitionWeight)
}

// PatternPenalty returns the summed pattern penalty clamped to [0, 0.8].
//
// Every keyboard entry contained in the password adds its share of the
// length × 0.6, the longest sequence adds its share × 0.5, and credential
// words and number patterns add fixed amounts.
func PatternPenalty(password string, tables *reference.Tables) float64 {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return 0
	}
	if tables == nil {
		tables = reference.Default()
	}
	length := float64(n)
	lower := strings.ToLower(password)
	sum := 0.0

	for p := range tables.KeyboardPatterns() {
		if strings.Contains(lower, p) {
			sum += float64(utf8.RuneCountInString(p)) / length * keyboardWeight
		}
	}

	if longest := detect.LongestSequence(password); longest > 0 {
		sum += float64(longest) / length * sequenceWeight
	}

	for _, w := range wordPenalties {
		if strings.Contains(lower, w.word) {
			sum += w.penalty
		}
	}

	if detect.HasLongNumber(password) {
		sum += longNumberPenalty
	}
	if detect.Has20Year(password) {
		sum += yearPatternPenalty
	}
	if detect.Has19Year(password) {
		sum += yearPatternPenalty
	}

	return math.Min(maxPenalty, sum)
}

// Estimate returns the penalized entropy in bits, rounded to one decimal
// and never negative.
func Estimate(password string, tables *reference.Tables) float64 {
	if password == "" {
		return 0
	}
	adjusted := Base(password) *
		(1 - RepetitionPenalty(password)*repetitionDamping) *
		(1 - PatternPenalty(password, tables)*patternDamping)
	return math.Max(0, math.Round(adjusted*roundingDecimalBase)/roundingDecimalBase)
}
