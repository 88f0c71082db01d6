package model

// CharacterSet is one of the four character classes.
type CharacterSet string

// Character classes in their fixed enumeration order.
const (
	CharacterSetLowercase CharacterSet = "lowercase"
	CharacterSetUppercase CharacterSet = "uppercase"
	CharacterSetNumbers   CharacterSet = "numbers"
	CharacterSetSymbols   CharacterSet = "symbols"
)

// DictionaryResult holds the outcome of the dictionary lookups.
type DictionaryResult struct {
	// IsKnownWeakPassword is true when the whole password, lowercased, is in
	// the weak-password table.
	IsKnownWeakPassword bool `json:"common_password"`

	// ContainsCommonWord is true when MatchedWords is non-empty.
	ContainsCommonWord bool `json:"contains_common_word"`

	// MatchedWords lists the common words found as substrings, in table order.
	MatchedWords []string `json:"common_words"`
}

// FeedbackItem is an advisory message shown next to the score.
type FeedbackItem struct {
	Severity Severity `json:"type"`
	Icon     string   `json:"icon"`
	Message  string   `json:"message"`
}

// NewFeedbackItem creates a FeedbackItem with the icon of its severity.
func NewFeedbackItem(severity Severity, message string) FeedbackItem {
	return FeedbackItem{
		Severity: severity,
		Icon:     severity.Icon(),
		Message:  message,
	}
}

// Assessment is the full result of analyzing one password.
type Assessment struct {
	// Password is the analyzed input. It is kept only so that a caller can
	// display it, and is never serialized.
	Password string `json:"-"`

	// Length is the number of characters (runes) in the password.
	Length int `json:"length"`

	// Entropy is the penalized entropy estimate in bits, rounded to one decimal.
	Entropy float64 `json:"entropy"`

	// CharacterSets lists the character classes present, in enumeration order.
	CharacterSets []CharacterSet `json:"character_sets"`

	// Patterns lists every detected pattern in detection order.
	Patterns []PatternMatch `json:"patterns"`

	// Dictionary holds the weak-password and common-word lookups.
	Dictionary DictionaryResult `json:"dictionary_checks"`

	// Strength is the bounded score and its tier.
	Strength Strength `json:"strength"`

	// CrackTime is a coarse human-readable estimate such as "3 hours".
	CrackTime string `json:"crack_time"`

	// Feedback lists advisory messages in a fixed order.
	Feedback []FeedbackItem `json:"feedback"`

	// Recommendations are general suggestions derived from Feedback.
	Recommendations []string `json:"recommendations"`
}

// HasPatterns reports whether any pattern was detected.
func (a *Assessment) HasPatterns() bool {
	return len(a.Patterns) > 0
}

// PatternsOfType returns the matches of the given type in detection order.
func (a *Assessment) PatternsOfType(t PatternType) []PatternMatch {
	var matches []PatternMatch
	for _, p := range a.Patterns {
		if p.Type == t {
			matches = append(matches, p)
		}
	}
	return matches
}

// MaskedPassword returns the password with every character replaced by '*'.
func (a *Assessment) MaskedPassword() string {
	masked := make([]rune, a.Length)
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked)
}
