package model

// PatternType tags the detector that produced a PatternMatch.
type PatternType string

// Pattern types in detection order.
const (
	PatternKeyboard       PatternType = "keyboard"
	PatternSequence       PatternType = "sequence"
	PatternRepetition     PatternType = "repetition"
	PatternDate           PatternType = "date"
	PatternCommonWord     PatternType = "common_word"
	PatternNumberSequence PatternType = "number_sequence"
	PatternYear           PatternType = "year_pattern"
)

// PatternTypes lists every pattern type in detection order.
var PatternTypes = []PatternType{
	PatternKeyboard,
	PatternSequence,
	PatternRepetition,
	PatternDate,
	PatternCommonWord,
	PatternNumberSequence,
	PatternYear,
}

// PatternMatch is one weakness signal found in a password.
// Matches are never merged or deduplicated: the number of matches is itself
// an input to scoring.
type PatternMatch struct {
	// Type identifies the detector that produced the match.
	Type PatternType `json:"type"`

	// Pattern is the matched text, or a fixed token such as "4+ digits"
	// for detectors that do not report a substring.
	Pattern string `json:"pattern"`

	// Description is a human-readable sentence describing the match.
	Description string `json:"description"`
}

// DistinctPatternTypes returns the pattern types present in matches, in the
// order they first appear.
func DistinctPatternTypes(matches []PatternMatch) []PatternType {
	seen := make(map[PatternType]bool, len(matches))
	types := make([]PatternType, 0, len(matches))
	for _, m := range matches {
		if seen[m.Type] {
			continue
		}
		seen[m.Type] = true
		types = append(types, m.Type)
	}
	return types
}
