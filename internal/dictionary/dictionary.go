// Package dictionary checks passwords against the reference word tables.
package dictionary

import (
	"strings"

	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

// Check reports whether the lowercased password is a known weak password
// and which common words it contains as substrings. Matched words are
// listed in table order. A nil tables uses the defaults.
func Check(password string, tables *reference.Tables) model.DictionaryResult {
	if tables == nil {
		tables = reference.Default()
	}
	lower := strings.ToLower(password)

	result := model.DictionaryResult{
		IsKnownWeakPassword: tables.WeakPasswords.Contains(lower),
		MatchedWords:        []string{},
	}
	if matched := tables.CommonWords.Substrings(lower); matched != nil {
		result.MatchedWords = matched
	}
	result.ContainsCommonWord = len(result.MatchedWords) > 0
	return result
}
