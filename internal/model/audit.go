package model

import (
	"math"
	"time"
)

// Audit comparison directions.
const (
	DirectionImproved  = "improved"
	DirectionWorsened  = "worsened"
	DirectionUnchanged = "unchanged"
)

// AuditSummary aggregates the assessments of a password list.
// It never contains the passwords themselves, so it is safe to store and share.
type AuditSummary struct {
	// ID is the history database identifier. Zero until the summary is saved.
	ID int64 `json:"id,omitempty"`

	// Source is a label for the audited list, usually its file name.
	Source string `json:"source"`

	// Digest is the hex SHA3-256 digest of the audited list.
	Digest string `json:"digest"`

	// StartedAt is when the audit began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the audit took.
	Duration time.Duration `json:"duration"`

	// Total is the number of passwords analyzed.
	Total int `json:"total"`

	// TierCounts maps each tier to the number of passwords in it.
	TierCounts map[Tier]int `json:"tier_counts"`

	// PatternCounts maps each pattern type to the number of matches across the list.
	PatternCounts map[PatternType]int `json:"pattern_counts"`

	// KnownWeakCount is the number of passwords found in the weak-password table.
	KnownWeakCount int `json:"known_weak_count"`

	// CommonWordCount is the number of passwords containing a common word.
	CommonWordCount int `json:"common_word_count"`

	// MinScore and MaxScore are the extreme scores seen.
	MinScore Score `json:"min_score"`
	MaxScore Score `json:"max_score"`

	// AverageScore and AverageEntropy are means over the list, rounded to one decimal.
	AverageScore   float64 `json:"average_score"`
	AverageEntropy float64 `json:"average_entropy"`

	scoreSum   int
	entropySum float64
}

// NewAuditSummary returns an empty summary for the given source.
func NewAuditSummary(source, digest string) *AuditSummary {
	return &AuditSummary{
		Source:        source,
		Digest:        digest,
		StartedAt:     time.Now(),
		TierCounts:    make(map[Tier]int, len(Tiers)),
		PatternCounts: make(map[PatternType]int, len(PatternTypes)),
	}
}

// Add folds one assessment into the summary. It is not safe for concurrent use.
func (s *AuditSummary) Add(a Assessment) {
	score := a.Strength.Score
	if s.Total == 0 || score < s.MinScore {
		s.MinScore = score
	}
	if s.Total == 0 || score > s.MaxScore {
		s.MaxScore = score
	}

	s.Total++
	s.TierCounts[a.Strength.Tier]++
	for _, p := range a.Patterns {
		s.PatternCounts[p.Type]++
	}
	if a.Dictionary.IsKnownWeakPassword {
		s.KnownWeakCount++
	}
	if a.Dictionary.ContainsCommonWord {
		s.CommonWordCount++
	}

	s.scoreSum += int(score)
	s.entropySum += a.Entropy
	s.AverageScore = round1(float64(s.scoreSum) / float64(s.Total))
	s.AverageEntropy = round1(s.entropySum / float64(s.Total))
}

// Finish records the elapsed time since StartedAt.
func (s *AuditSummary) Finish() {
	s.Duration = time.Since(s.StartedAt)
}

// WeakShare returns the fraction of passwords rated weak or very weak.
func (s *AuditSummary) WeakShare() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.TierCounts[TierVeryWeak]+s.TierCounts[TierWeak]) / float64(s.Total)
}

// AuditDiff describes how a password list changed between two audits.
type AuditDiff struct {
	Source   string        `json:"source"`
	Previous *AuditSummary `json:"previous"`
	Current  *AuditSummary `json:"current"`

	// Direction is DirectionImproved, DirectionWorsened or DirectionUnchanged,
	// judged by the average score.
	Direction string `json:"direction"`

	// TierDeltas maps each tier to current minus previous count.
	TierDeltas map[Tier]int `json:"tier_deltas"`

	AverageScoreDelta   float64 `json:"average_score_delta"`
	AverageEntropyDelta float64 `json:"average_entropy_delta"`
	KnownWeakDelta      int     `json:"known_weak_delta"`
	TotalDelta          int     `json:"total_delta"`

	// SameList is true when both audits were run over byte-identical lists.
	SameList bool `json:"same_list"`
}

// CompareAudits computes the difference between two audits of the same source.
func CompareAudits(previous, current *AuditSummary) *AuditDiff {
	diff := &AuditDiff{
		Source:              current.Source,
		Previous:            previous,
		Current:             current,
		TierDeltas:          make(map[Tier]int, len(Tiers)),
		AverageScoreDelta:   round1(current.AverageScore - previous.AverageScore),
		AverageEntropyDelta: round1(current.AverageEntropy - previous.AverageEntropy),
		KnownWeakDelta:      current.KnownWeakCount - previous.KnownWeakCount,
		TotalDelta:          current.Total - previous.Total,
		SameList:            previous.Digest != "" && previous.Digest == current.Digest,
	}

	for _, t := range Tiers {
		diff.TierDeltas[t] = current.TierCounts[t] - previous.TierCounts[t]
	}

	switch {
	case diff.AverageScoreDelta > 0:
		diff.Direction = DirectionImproved
	case diff.AverageScoreDelta < 0:
		diff.Direction = DirectionWorsened
	default:
		diff.Direction = DirectionUnchanged
	}

	return diff
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
