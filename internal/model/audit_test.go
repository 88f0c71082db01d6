package model

import (
	"encoding/json"
	"testing"
)

func assessmentWith(score int, entropy float64, weak bool, patterns ...PatternType) Assessment {
	a := Assessment{
		Entropy:  entropy,
		Strength: NewStrength(score),
	}
	a.Dictionary.IsKnownWeakPassword = weak
	for _, p := range patterns {
		a.Patterns = append(a.Patterns, PatternMatch{Type: p})
	}
	return a
}

func TestAuditSummaryAdd(t *testing.T) {
	t.Parallel()

	s := NewAuditSummary("list.txt", "abc")
	s.Add(assessmentWith(0, 9.9, true, PatternCommonWord))
	s.Add(assessmentWith(87, 97.0, false, PatternSequence))
	s.Add(assessmentWith(40, 30.1, false, PatternKeyboard, PatternKeyboard))

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.MinScore != 0 || s.MaxScore != 87 {
		t.Errorf("Min/Max = %d/%d, want 0/87", s.MinScore, s.MaxScore)
	}
	if s.AverageScore != 42.3 {
		t.Errorf("AverageScore = %v, want 42.3", s.AverageScore)
	}
	if s.AverageEntropy != 45.7 {
		t.Errorf("AverageEntropy = %v, want 45.7", s.AverageEntropy)
	}
	if s.KnownWeakCount != 1 {
		t.Errorf("KnownWeakCount = %d, want 1", s.KnownWeakCount)
	}
	if s.PatternCounts[PatternKeyboard] != 2 {
		t.Errorf("keyboard count = %d, want 2", s.PatternCounts[PatternKeyboard])
	}
	if s.TierCounts[TierVeryWeak] != 1 || s.TierCounts[TierVeryStrong] != 1 || s.TierCounts[TierFair] != 1 {
		t.Errorf("unexpected tier counts: %v", s.TierCounts)
	}
	if got := s.WeakShare(); got < 0.33 || got > 0.34 {
		t.Errorf("WeakShare() = %v, want 1/3", got)
	}
}

func TestAuditSummaryJSONUsesTierNames(t *testing.T) {
	t.Parallel()

	s := NewAuditSummary("list.txt", "")
	s.Add(assessmentWith(90, 80, false))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded AuditSummary
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.TierCounts[TierVeryStrong] != 1 {
		t.Errorf("decoded tier counts = %v", decoded.TierCounts)
	}
}

func TestCompareAudits(t *testing.T) {
	t.Parallel()

	prev := NewAuditSummary("list.txt", "d1")
	prev.Add(assessmentWith(10, 5, true))
	prev.Add(assessmentWith(30, 20, false))

	cur := NewAuditSummary("list.txt", "d2")
	cur.Add(assessmentWith(60, 50, false))
	cur.Add(assessmentWith(90, 90, false))

	diff := CompareAudits(prev, cur)
	if diff.Direction != DirectionImproved {
		t.Errorf("Direction = %q, want %q", diff.Direction, DirectionImproved)
	}
	if diff.AverageScoreDelta != 55 {
		t.Errorf("AverageScoreDelta = %v, want 55", diff.AverageScoreDelta)
	}
	if diff.KnownWeakDelta != -1 {
		t.Errorf("KnownWeakDelta = %d, want -1", diff.KnownWeakDelta)
	}
	if diff.TierDeltas[TierVeryWeak] != -1 || diff.TierDeltas[TierVeryStrong] != 1 {
		t.Errorf("unexpected tier deltas: %v", diff.TierDeltas)
	}
	if diff.SameList {
		t.Error("SameList should be false for different digests")
	}

	if back := CompareAudits(cur, prev); back.Direction != DirectionWorsened {
		t.Errorf("reverse Direction = %q, want %q", back.Direction, DirectionWorsened)
	}
	if same := CompareAudits(cur, cur); same.Direction != DirectionUnchanged || !same.SameList {
		t.Errorf("self comparison = %q same=%v", same.Direction, same.SameList)
	}
}
