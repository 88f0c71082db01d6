package detect

import (
	"fmt"
	"strings"

	"github.com/nao1215/passmeter/internal/model"
)

// minSequenceLength is the shortest run reported as a sequence.
const minSequenceLength = 3

// FindSequences returns runs of at least three consecutive code points in
// the lowercased password.
//
// For every start position, the ascending run and then the descending run
// beginning there are extended greedily and emitted when long enough. Runs
// overlap: "abcd" yields "abcd" and "bcd".
func FindSequences(password string) []string {
	runes := []rune(strings.ToLower(password))
	var sequences []string
	for i := 0; i < len(runes)-2; i++ {
		if end := runEnd(runes, i, 1); end-i >= minSequenceLength {
			sequences = append(sequences, string(runes[i:end]))
		}
		if end := runEnd(runes, i, -1); end-i >= minSequenceLength {
			sequences = append(sequences, string(runes[i:end]))
		}
	}
	return sequences
}

// runEnd returns the exclusive end of the run starting at i where each rune
// differs from the previous one by step.
func runEnd(runes []rune, i int, step rune) int {
	j := i + 1
	for j < len(runes) && runes[j] == runes[j-1]+step {
		j++
	}
	return j
}

// LongestSequence returns the rune length of the longest sequence, or 0.
func LongestSequence(password string) int {
	longest := 0
	for _, s := range FindSequences(password) {
		longest = max(longest, len([]rune(s)))
	}
	return longest
}

// SequenceDetector reports ascending and descending character runs.
type SequenceDetector struct{}

// NewSequenceDetector creates a SequenceDetector.
func NewSequenceDetector() *SequenceDetector {
	return &SequenceDetector{}
}

// Name returns the detector name.
func (d *SequenceDetector) Name() string { return "sequence" }

// Type returns model.PatternSequence.
func (d *SequenceDetector) Type() model.PatternType { return model.PatternSequence }

// Detect reports every run returned by FindSequences.
func (d *SequenceDetector) Detect(password string) []model.PatternMatch {
	sequences := FindSequences(password)
	matches := make([]model.PatternMatch, 0, len(sequences))
	for _, s := range sequences {
		matches = append(matches, model.PatternMatch{
			Type:        model.PatternSequence,
			Pattern:     s,
			Description: fmt.Sprintf("Sequential pattern \"%s\" detected", s),
		})
	}
	return matches
}
