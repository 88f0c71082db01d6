package detect

import (
	"fmt"
	"strings"

	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

// KeyboardDetector reports keyboard walks and digit runs from the reference list.
type KeyboardDetector struct {
	tables *reference.Tables
}

// NewKeyboardDetector creates a KeyboardDetector. A nil tables uses the defaults.
func NewKeyboardDetector(tables *reference.Tables) *KeyboardDetector {
	if tables == nil {
		tables = reference.Default()
	}
	return &KeyboardDetector{tables: tables}
}

// Name returns the detector name.
func (d *KeyboardDetector) Name() string { return "keyboard" }

// Type returns model.PatternKeyboard.
func (d *KeyboardDetector) Type() model.PatternType { return model.PatternKeyboard }

// Detect reports one match per list entry contained in the lowercased
// password. Entries that appear twice in the list are reported twice.
func (d *KeyboardDetector) Detect(password string) []model.PatternMatch {
	lower := strings.ToLower(password)
	var matches []model.PatternMatch
	for p := range d.tables.KeyboardPatterns() {
		if strings.Contains(lower, p) {
			matches = append(matches, model.PatternMatch{
				Type:        model.PatternKeyboard,
				Pattern:     p,
				Description: fmt.Sprintf("Keyboard pattern \"%s\" detected", p),
			})
		}
	}
	return matches
}
