// Package scoring turns the analysis signals into a bounded 0 to 100 score
// and its tier.
//
// Some weaknesses are counted more than once: a password containing
// "password" is penalized by the dictionary check, by the common-word
// pattern and by a dedicated substring penalty. The resulting scores are
// part of the observable behaviour and are kept exactly.
package scoring

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/passmeter/internal/detect"
	"github.com/nao1215/passmeter/internal/entropy"
	"github.com/nao1215/passmeter/internal/model"
)

// Input holds everything the scorer looks at.
type Input struct {
	Password   string
	Entropy    float64
	Patterns   []model.PatternMatch
	Dictionary model.DictionaryResult
}

// Adjustment is one bonus or penalty applied to the score.
type Adjustment struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// Breakdown records how a score was computed. It has no influence on the
// result.
type Breakdown struct {
	Adjustments []Adjustment `json:"adjustments"`
	Raw         int          `json:"raw"`
	Final       model.Score  `json:"final"`
}

// LogValue implements slog.LogValuer.
func (b Breakdown) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(b.Adjustments)+2)
	for _, a := range b.Adjustments {
		attrs = append(attrs, slog.Int(a.Reason, a.Points))
	}
	attrs = append(attrs, slog.Int("raw", b.Raw), slog.Int("final", int(b.Final)))
	return slog.GroupValue(attrs...)
}

type threshold struct {
	min    float64
	points int
}

var (
	entropyBonuses = []threshold{{80, 45}, {60, 35}, {40, 25}, {25, 15}, {15, 8}}
	lengthBonuses  = []threshold{{16, 25}, {12, 20}, {10, 15}, {8, 10}, {6, 5}}
)

// Penalty and bonus amounts.
const (
	VarietyPointsPerClass = 8
	KnownWeakPenalty      = 50
	CommonWordPenalty     = 20
	PerPatternPenalty     = 15
	LongNumberPenalty     = 15
	Year20Penalty         = 10
)

// substringPenalties apply to the lowercased password.
var substringPenalties = []struct {
	word   string
	points int
}{
	{"password", 30},
	{"admin", 25},
	{"user", 20},
}

func bonusFor(value float64, table []threshold) int {
	for _, th := range table {
		if value >= th.min {
			return th.points
		}
	}
	return 0
}

// Calculate computes the strength and a trace of how it was reached.
func Calculate(in Input) (model.Strength, Breakdown) {
	var b Breakdown
	score := 0
	add := func(reason string, points int) {
		if points == 0 {
			return
		}
		score += points
		b.Adjustments = append(b.Adjustments, Adjustment{Reason: reason, Points: points})
	}

	add("entropy", bonusFor(in.Entropy, entropyBonuses))
	add("length", bonusFor(float64(utf8.RuneCountInString(in.Password)), lengthBonuses))
	add("variety", len(entropy.CharacterSets(in.Password))*VarietyPointsPerClass)

	if in.Dictionary.IsKnownWeakPassword {
		add("known_weak_password", -KnownWeakPenalty)
	}
	if in.Dictionary.ContainsCommonWord {
		add("common_word", -CommonWordPenalty)
	}
	add("patterns", -len(in.Patterns)*PerPatternPenalty)

	lower := strings.ToLower(in.Password)
	for _, p := range substringPenalties {
		if strings.Contains(lower, p.word) {
			add("contains_"+p.word, -p.points)
		}
	}
	if detect.HasLongNumber(in.Password) {
		add("long_number", -LongNumberPenalty)
	}
	if detect.Has20Year(in.Password) {
		add("year_20xx", -Year20Penalty)
	}

	strength := model.NewStrength(score)
	b.Raw = score
	b.Final = strength.Score
	return strength, b
}
