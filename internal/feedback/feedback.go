// Package feedback produces the advisory messages and general
// recommendations shown next to a score.
package feedback

import (
	"fmt"
	"strings"

	"github.com/nao1215/passmeter/internal/model"
)

// Messages that do not depend on the password.
const (
	MsgEmpty          = "Enter a password to see detailed analysis"
	MsgTooShort       = "Password is too short. Use at least 8 characters."
	MsgConsiderLonger = "Consider using 12+ characters for better security."
	MsgGoodLength     = "Good password length."
	MsgMixClasses     = "Use a mix of uppercase, lowercase, numbers, and symbols."
	MsgGoodVariety    = "Good variety. Consider adding more character types."
	MsgExcellentMix   = "Excellent character variety."
	MsgKnownWeak      = "This is a very common password. Choose something unique."
	MsgNoPatterns     = "No common patterns detected."
	MsgHighEntropy    = "High randomness - excellent entropy."
	MsgModerate       = "Moderate randomness - consider more variation."
	MsgLowEntropy     = "Low randomness - very predictable."
)

// Thresholds used by Generate.
const (
	MinLength         = 8
	RecommendedLength = 12
	GoodClassCount    = 3
	HighEntropy       = 50
	ModerateEntropy   = 25
)

// Generate returns the feedback for an analyzed password in a fixed order:
// length, character variety, known weak password, common words, patterns
// and entropy. It reads Length, CharacterSets, Dictionary, Patterns and
// Entropy from a.
func Generate(a model.Assessment) []model.FeedbackItem {
	items := make([]model.FeedbackItem, 0, 6)

	switch {
	case a.Length < MinLength:
		items = append(items, model.NewFeedbackItem(model.SeverityNegative, MsgTooShort))
	case a.Length < RecommendedLength:
		items = append(items, model.NewFeedbackItem(model.SeverityWarning, MsgConsiderLonger))
	default:
		items = append(items, model.NewFeedbackItem(model.SeverityPositive, MsgGoodLength))
	}

	switch n := len(a.CharacterSets); {
	case n < GoodClassCount:
		items = append(items, model.NewFeedbackItem(model.SeverityNegative, MsgMixClasses))
	case n == GoodClassCount:
		items = append(items, model.NewFeedbackItem(model.SeverityWarning, MsgGoodVariety))
	default:
		items = append(items, model.NewFeedbackItem(model.SeverityPositive, MsgExcellentMix))
	}

	if a.Dictionary.IsKnownWeakPassword {
		items = append(items, model.NewFeedbackItem(model.SeverityNegative, MsgKnownWeak))
	}
	if a.Dictionary.ContainsCommonWord {
		items = append(items, model.NewFeedbackItem(model.SeverityWarning,
			"Contains common words: "+strings.Join(a.Dictionary.MatchedWords, ", ")))
	}

	if len(a.Patterns) > 0 {
		items = append(items, model.NewFeedbackItem(model.SeverityNegative, avoidPatterns(a.Patterns)))
	} else if a.Length >= MinLength {
		items = append(items, model.NewFeedbackItem(model.SeverityPositive, MsgNoPatterns))
	}

	switch {
	case a.Entropy >= HighEntropy:
		items = append(items, model.NewFeedbackItem(model.SeverityPositive, MsgHighEntropy))
	case a.Entropy >= ModerateEntropy:
		items = append(items, model.NewFeedbackItem(model.SeverityWarning, MsgModerate))
	default:
		items = append(items, model.NewFeedbackItem(model.SeverityNegative, MsgLowEntropy))
	}

	return items
}

func avoidPatterns(matches []model.PatternMatch) string {
	types := model.DistinctPatternTypes(matches)
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return fmt.Sprintf("Avoid %s patterns.", strings.Join(names, ", "))
}

// Empty returns the single neutral item shown before anything is typed.
func Empty() []model.FeedbackItem {
	return []model.FeedbackItem{model.NewFeedbackItem(model.SeverityNeutral, MsgEmpty)}
}
