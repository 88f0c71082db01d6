package detect

import (
	"fmt"
	"strings"

	"github.com/nao1215/passmeter/internal/model"
)

// CommonWordPatterns are the words reported by CommonWordDetector, in order.
// This short list is separate from the reference common-word table used by
// the dictionary check.
var CommonWordPatterns = []string{"password", "admin", "user", "test", "login"}

// CommonWordDetector reports credential-related words.
type CommonWordDetector struct{}

// NewCommonWordDetector creates a CommonWordDetector.
func NewCommonWordDetector() *CommonWordDetector {
	return &CommonWordDetector{}
}

// Name returns the detector name.
func (d *CommonWordDetector) Name() string { return "common-word" }

// Type returns model.PatternCommonWord.
func (d *CommonWordDetector) Type() model.PatternType { return model.PatternCommonWord }

// Detect reports each word of CommonWordPatterns contained in the
// lowercased password, at most once per word.
func (d *CommonWordDetector) Detect(password string) []model.PatternMatch {
	lower := strings.ToLower(password)
	var matches []model.PatternMatch
	for _, w := range CommonWordPatterns {
		if strings.Contains(lower, w) {
			matches = append(matches, model.PatternMatch{
				Type:        model.PatternCommonWord,
				Pattern:     w,
				Description: fmt.Sprintf("Common word \"%s\" detected", w),
			})
		}
	}
	return matches
}
