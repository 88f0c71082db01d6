package detect

import (
	"fmt"
	"regexp"

	"github.com/nao1215/passmeter/internal/model"
)

// dateExpressions are applied independently, so one substring can be
// reported by several of them.
var dateExpressions = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),   // MM/DD/YYYY
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),   // MM-DD-YYYY
	regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2,4}`), // MM.DD.YYYY
	regexp.MustCompile(`\d{4}\d{2}\d{2}`),           // YYYYMMDD
	regexp.MustCompile(`\d{2}\d{2}\d{4}`),           // MMDDYYYY
	regexp.MustCompile(`(19|20)\d{2}`),              // year
}

// FindDates returns every non-overlapping match of each date expression,
// expression by expression.
func FindDates(password string) []string {
	var dates []string
	for _, re := range dateExpressions {
		dates = append(dates, re.FindAllString(password, -1)...)
	}
	return dates
}

// DateDetector reports date-like substrings.
type DateDetector struct{}

// NewDateDetector creates a DateDetector.
func NewDateDetector() *DateDetector {
	return &DateDetector{}
}

// Name returns the detector name.
func (d *DateDetector) Name() string { return "date" }

// Type returns model.PatternDate.
func (d *DateDetector) Type() model.PatternType { return model.PatternDate }

// Detect reports every substring returned by FindDates.
func (d *DateDetector) Detect(password string) []model.PatternMatch {
	dates := FindDates(password)
	matches := make([]model.PatternMatch, 0, len(dates))
	for _, s := range dates {
		matches = append(matches, model.PatternMatch{
			Type:        model.PatternDate,
			Pattern:     s,
			Description: fmt.Sprintf("Possible date pattern \"%s\" detected", s),
		})
	}
	return matches
}
