package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinScore and MaxScore bound every Score.
const (
	MinScore = 0
	MaxScore = 100
)

// Score is the composite strength score. Values produced by NewScore are
// always within [MinScore, MaxScore].
type Score int

// NewScore clamps raw to the valid score range.
func NewScore(raw int) Score {
	switch {
	case raw < MinScore:
		return MinScore
	case raw > MaxScore:
		return MaxScore
	default:
		return Score(raw)
	}
}

// Tier is the human-facing strength label derived from a Score.
// Tiers are ordered, so they can be compared with < and >.
type Tier int

const (
	// TierVeryWeak is assigned to scores below 25.
	TierVeryWeak Tier = iota
	// TierWeak is assigned to scores from 25 to 39.
	TierWeak
	// TierFair is assigned to scores from 40 to 54.
	TierFair
	// TierGood is assigned to scores from 55 to 69.
	TierGood
	// TierStrong is assigned to scores from 70 to 84.
	TierStrong
	// TierVeryStrong is assigned to scores of 85 and above.
	TierVeryStrong
)

// Tiers lists every tier from weakest to strongest.
var Tiers = []Tier{TierVeryWeak, TierWeak, TierFair, TierGood, TierStrong, TierVeryStrong}

// tierThresholds holds the lowest score for each tier, strongest first.
var tierThresholds = []struct {
	min  Score
	tier Tier
}{
	{85, TierVeryStrong},
	{70, TierStrong},
	{55, TierGood},
	{40, TierFair},
	{25, TierWeak},
}

// TierForScore maps a score to its tier using fixed thresholds.
func TierForScore(score Score) Tier {
	for _, th := range tierThresholds {
		if score >= th.min {
			return th.tier
		}
	}
	return TierVeryWeak
}

// String returns the hyphenated tier name, e.g. "very-strong".
func (t Tier) String() string {
	switch t {
	case TierVeryWeak:
		return "very-weak"
	case TierWeak:
		return "weak"
	case TierFair:
		return "fair"
	case TierGood:
		return "good"
	case TierStrong:
		return "strong"
	case TierVeryStrong:
		return "very-strong"
	default:
		return "unknown"
	}
}

// Label returns the display form of the tier, e.g. "Very Strong".
func (t Tier) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(t.String(), "-", " "))
}

// ParseTier converts a hyphenated tier name back to a Tier.
func ParseTier(name string) (Tier, error) {
	for _, t := range Tiers {
		if t.String() == name {
			return t, nil
		}
	}
	return TierVeryWeak, fmt.Errorf("unknown tier %q", name)
}

// MarshalText implements encoding.TextMarshaler.
// It also makes Tier usable as a JSON map key.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Strength is the scorer's verdict: a bounded score, its tier and the tier's label.
type Strength struct {
	Score Score  `json:"score"`
	Tier  Tier   `json:"level"`
	Label string `json:"text"`
}

// NewStrength builds a Strength from a raw (possibly out of range) score.
func NewStrength(raw int) Strength {
	score := NewScore(raw)
	tier := TierForScore(score)
	return Strength{
		Score: score,
		Tier:  tier,
		Label: tier.Label(),
	}
}
