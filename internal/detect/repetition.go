package detect

import (
	"fmt"
	"slices"

	"github.com/nao1215/passmeter/internal/model"
)

// minBlockLength is the shortest block considered for repetition.
const minBlockLength = 2

// FindRepetitions returns substrings made of a block of two or more
// characters immediately repeated at least once, scanning left to right
// without overlap.
//
// At each position the longest block that repeats is chosen, then the match
// is extended by as many whole repeats as follow. Blocks never span a line
// terminator. This is the leftmost-greedy behaviour of the backtracking
// expression (.{2,})\1+, which RE2 cannot express.
func FindRepetitions(password string) []string {
	runes := []rune(password)
	n := len(runes)
	var repetitions []string

	i := 0
	for i+2*minBlockLength <= n {
		end := repetitionEnd(runes, i)
		if end < 0 {
			i++
			continue
		}
		repetitions = append(repetitions, string(runes[i:end]))
		i = end
	}
	return repetitions
}

// repetitionEnd returns the exclusive end of the repetition starting at i,
// or -1 when no block starting at i repeats.
func repetitionEnd(runes []rune, i int) int {
	n := len(runes)
	for size := (n - i) / 2; size >= minBlockLength; size-- {
		block := runes[i : i+size]
		if slices.ContainsFunc(block, isLineTerminator) {
			continue
		}
		end := i + size
		for end+size <= n && slices.Equal(runes[end:end+size], block) {
			end += size
		}
		if end > i+size {
			return end
		}
	}
	return -1
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// RepetitionDetector reports repeated blocks.
type RepetitionDetector struct{}

// NewRepetitionDetector creates a RepetitionDetector.
func NewRepetitionDetector() *RepetitionDetector {
	return &RepetitionDetector{}
}

// Name returns the detector name.
func (d *RepetitionDetector) Name() string { return "repetition" }

// Type returns model.PatternRepetition.
func (d *RepetitionDetector) Type() model.PatternType { return model.PatternRepetition }

// Detect reports every substring returned by FindRepetitions.
func (d *RepetitionDetector) Detect(password string) []model.PatternMatch {
	repetitions := FindRepetitions(password)
	matches := make([]model.PatternMatch, 0, len(repetitions))
	for _, r := range repetitions {
		matches = append(matches, model.PatternMatch{
			Type:        model.PatternRepetition,
			Pattern:     r,
			Description: fmt.Sprintf("Repeated pattern \"%s\" detected", r),
		})
	}
	return matches
}
