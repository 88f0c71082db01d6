// Package meter is the entry point of the analysis engine.
//
// A Meter runs the analysis stages in a fixed order over one password:
// entropy, character classes, pattern detection, dictionary checks, scoring,
// crack time and feedback. Every call builds a fresh Assessment; the only
// shared state is the read-only reference tables, so a Meter can be used
// from many goroutines at once.
package meter

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/nao1215/passmeter/internal/cracktime"
	"github.com/nao1215/passmeter/internal/detect"
	"github.com/nao1215/passmeter/internal/dictionary"
	"github.com/nao1215/passmeter/internal/entropy"
	"github.com/nao1215/passmeter/internal/feedback"
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
	"github.com/nao1215/passmeter/internal/scoring"
)

// Meter analyzes passwords.
type Meter struct {
	tables   *reference.Tables
	registry *detect.Registry
	logger   *slog.Logger
}

// Option configures a Meter.
type Option func(*Meter)

// WithTables sets the reference tables. The embedded defaults are used otherwise.
func WithTables(tables *reference.Tables) Option {
	return func(m *Meter) {
		m.tables = tables
	}
}

// WithRegistry replaces the default pattern detectors.
func WithRegistry(registry *detect.Registry) Option {
	return func(m *Meter) {
		m.registry = registry
	}
}

// WithLogger sets the logger used for the debug trace of each analysis.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Meter) {
		m.logger = logger
	}
}

// New creates a Meter.
func New(opts ...Option) *Meter {
	m := &Meter{}
	for _, opt := range opts {
		opt(m)
	}
	if m.tables == nil {
		m.tables = reference.Default()
	}
	if m.registry == nil {
		m.registry = detect.NewRegistry(m.tables)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Tables returns the reference tables used by the meter.
func (m *Meter) Tables() *reference.Tables {
	return m.tables
}

// Analyze returns the assessment of password. The same input always yields
// the same assessment.
//
// An empty password yields the neutral assessment: zero entropy, no
// patterns, score 0 and a single prompt in place of feedback.
func (m *Meter) Analyze(password string) model.Assessment {
	if password == "" {
		return Empty()
	}
	start := time.Now()

	a := model.Assessment{
		Password: password,
		Length:   utf8.RuneCountInString(password),
	}
	a.Entropy = entropy.Estimate(password, m.tables)
	a.CharacterSets = entropy.CharacterSets(password)
	a.Patterns = m.registry.Detect(password)
	a.Dictionary = dictionary.Check(password, m.tables)

	strength, breakdown := scoring.Calculate(scoring.Input{
		Password:   password,
		Entropy:    a.Entropy,
		Patterns:   a.Patterns,
		Dictionary: a.Dictionary,
	})
	a.Strength = strength
	a.CrackTime = cracktime.Estimate(a.Entropy)
	a.Feedback = feedback.Generate(a)
	a.Recommendations = feedback.Recommendations(a.Feedback)

	m.logger.Debug("password analyzed",
		"length", a.Length,
		"entropy", a.Entropy,
		"patterns", len(a.Patterns),
		"tier", a.Strength.Tier.String(),
		"breakdown", breakdown,
		"elapsed", time.Since(start),
	)
	return a
}

// Empty returns the neutral assessment shown before anything is typed.
func Empty() model.Assessment {
	return model.Assessment{
		CharacterSets: []model.CharacterSet{},
		Patterns:      []model.PatternMatch{},
		Dictionary: model.DictionaryResult{
			MatchedWords: []string{},
		},
		Strength:        model.NewStrength(0),
		CrackTime:       cracktime.Instant,
		Feedback:        feedback.Empty(),
		Recommendations: []string{},
	}
}
