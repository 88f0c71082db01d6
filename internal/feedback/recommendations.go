package feedback

import "github.com/nao1215/passmeter/internal/model"

// Recommendation texts.
const (
	RecCritical  = "Address critical security issues first"
	RecWarnings  = "Consider improving areas marked as warnings"
	RecUnique    = "Use a unique password for each account"
	RecManager   = "Consider using a password manager"
	RecTwoFactor = "Enable two-factor authentication when available"
)

// Recommendations derives general advice from feedback items. The three
// general practices are always included, after any item-driven advice.
func Recommendations(items []model.FeedbackItem) []string {
	var negative, warning bool
	for _, item := range items {
		switch item.Severity {
		case model.SeverityNegative:
			negative = true
		case model.SeverityWarning:
			warning = true
		}
	}

	recs := make([]string, 0, 5)
	if negative {
		recs = append(recs, RecCritical)
	}
	if warning {
		recs = append(recs, RecWarnings)
	}
	return append(recs, RecUnique, RecManager, RecTwoFactor)
}
