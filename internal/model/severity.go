package model

import "fmt"

// Severity classifies a feedback message.
// The zero value is SeverityNeutral so that an unset field never reads as
// praise or as a problem.
type Severity int

const (
	// SeverityNeutral is used for informational messages, such as the prompt
	// shown when no password has been entered yet.
	SeverityNeutral Severity = iota

	// SeverityPositive marks a property of the password that is already good.
	SeverityPositive

	// SeverityWarning marks a property that is acceptable but could be improved.
	SeverityWarning

	// SeverityNegative marks a property that makes the password weak.
	SeverityNegative
)

// String returns the lowercase name used in JSON output and CSS-like class names.
func (s Severity) String() string {
	switch s {
	case SeverityNeutral:
		return "neutral"
	case SeverityPositive:
		return "positive"
	case SeverityWarning:
		return "warning"
	case SeverityNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Icon returns the emoji shown next to a message of this severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityPositive:
		return "✅"
	case SeverityWarning:
		return "⚠️"
	case SeverityNegative:
		return "❌"
	default:
		return "ℹ️"
	}
}

// ParseSeverity converts a name produced by String back to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "neutral":
		return SeverityNeutral, nil
	case "positive":
		return SeverityPositive, nil
	case "warning":
		return SeverityWarning, nil
	case "negative":
		return SeverityNegative, nil
	default:
		return SeverityNeutral, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
