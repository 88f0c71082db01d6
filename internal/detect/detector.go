package detect

import (
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

// Detector finds one kind of pattern in a password.
type Detector interface {
	// Name returns the detector's name for logging.
	Name() string

	// Type returns the pattern type of every match the detector produces.
	Type() model.PatternType

	// Detect returns the matches found in password, in the order found.
	// It never returns an error: any string, including the empty one, is valid input.
	Detect(password string) []model.PatternMatch
}

// Registry runs detectors in a fixed order.
type Registry struct {
	detectors []Detector
}

// NewRegistry returns a Registry with the default detectors, using tables
// for keyboard patterns.
func NewRegistry(tables *reference.Tables) *Registry {
	return NewCustomRegistry(
		NewKeyboardDetector(tables),
		NewSequenceDetector(),
		NewRepetitionDetector(),
		NewDateDetector(),
		NewCommonWordDetector(),
		NewNumberSequenceDetector(),
		NewYearDetector(),
	)
}

// NewCustomRegistry returns a Registry that runs the given detectors in order.
func NewCustomRegistry(detectors ...Detector) *Registry {
	return &Registry{detectors: detectors}
}

// Detectors returns the registered detectors in run order.
func (r *Registry) Detectors() []Detector {
	out := make([]Detector, len(r.detectors))
	copy(out, r.detectors)
	return out
}

// Detect runs every detector and concatenates the results.
func (r *Registry) Detect(password string) []model.PatternMatch {
	matches := make([]model.PatternMatch, 0)
	for _, d := range r.detectors {
		matches = append(matches, d.Detect(password)...)
	}
	return matches
}
