package detect

import (
	"regexp"

	"github.com/nao1215/passmeter/internal/model"
)

var (
	longNumberExpr = regexp.MustCompile(`\d{4,}`)
	year20Expr     = regexp.MustCompile(`20\d{2}`)
	year19Expr     = regexp.MustCompile(`19\d{2}`)
)

// HasLongNumber reports whether password contains four or more consecutive digits.
func HasLongNumber(password string) bool {
	return longNumberExpr.MatchString(password)
}

// Has20Year reports whether password contains "20" followed by two digits.
func Has20Year(password string) bool {
	return year20Expr.MatchString(password)
}

// Has19Year reports whether password contains "19" followed by two digits.
func Has19Year(password string) bool {
	return year19Expr.MatchString(password)
}

// NumberSequenceDetector reports a run of four or more digits.
type NumberSequenceDetector struct{}

// NewNumberSequenceDetector creates a NumberSequenceDetector.
func NewNumberSequenceDetector() *NumberSequenceDetector {
	return &NumberSequenceDetector{}
}

// Name returns the detector name.
func (d *NumberSequenceDetector) Name() string { return "number-sequence" }

// Type returns model.PatternNumberSequence.
func (d *NumberSequenceDetector) Type() model.PatternType { return model.PatternNumberSequence }

// Detect reports a single match when HasLongNumber is true.
func (d *NumberSequenceDetector) Detect(password string) []model.PatternMatch {
	if !HasLongNumber(password) {
		return nil
	}
	return []model.PatternMatch{{
		Type:        model.PatternNumberSequence,
		Pattern:     "4+ digits",
		Description: "Long number sequence detected",
	}}
}

// YearDetector reports a 20XX year.
type YearDetector struct{}

// NewYearDetector creates a YearDetector.
func NewYearDetector() *YearDetector {
	return &YearDetector{}
}

// Name returns the detector name.
func (d *YearDetector) Name() string { return "year" }

// Type returns model.PatternYear.
func (d *YearDetector) Type() model.PatternType { return model.PatternYear }

// Detect reports a single match when Has20Year is true.
func (d *YearDetector) Detect(password string) []model.PatternMatch {
	if !Has20Year(password) {
		return nil
	}
	return []model.PatternMatch{{
		Type:        model.PatternYear,
		Pattern:     "20XX year",
		Description: "Predictable year pattern detected",
	}}
}
