package report

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/passmeter/internal/model"
)

// Writer writes analysis results in one output format.
type Writer interface {
	// WriteAssessments outputs one or more password assessments.
	WriteAssessments(assessments []model.Assessment) (int, error)

	// WriteAudit outputs the summary of a password list audit.
	WriteAudit(summary *model.AuditSummary) (int, error)

	// WriteDiff outputs the comparison of two audits.
	WriteDiff(diff *model.AuditDiff) (int, error)
}

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatSimple   Format = "simple"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// New returns the writer for format. Unknown formats fall back to simple text.
func New(format Format, output io.Writer, opts ...Option) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, opts...)
	case FormatMarkdown:
		return NewMarkdownWriter(output, opts...)
	default:
		return NewSimpleWriter(output, opts...)
	}
}

// MultiWriter writes to several Writers in turn, stopping at the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteAssessments outputs the assessments to all configured Writers.
func (m *MultiWriter) WriteAssessments(assessments []model.Assessment) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteAssessments(assessments) })
}

// WriteAudit outputs the summary to all configured Writers.
func (m *MultiWriter) WriteAudit(summary *model.AuditSummary) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteAudit(summary) })
}

// WriteDiff outputs the comparison to all configured Writers.
func (m *MultiWriter) WriteDiff(diff *model.AuditDiff) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteDiff(diff) })
}

func (m *MultiWriter) each(write func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := write(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Option configures a writer. Options that do not apply to a format are ignored.
type Option func(*options)

type options struct {
	showPassword bool
	verbose      bool
	indent       bool
	indentPrefix string
	indentString string
}

// WithShowPassword prints passwords in clear text instead of masking them.
func WithShowPassword(show bool) Option {
	return func(o *options) {
		o.showPassword = show
	}
}

// WithVerbose adds pattern descriptions and empty sections to text output.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithIndent enables indented JSON output.
func WithIndent(prefix, indent string) Option {
	return func(o *options) {
		o.indent = true
		o.indentPrefix = prefix
		o.indentString = indent
	}
}

// WithPrettyPrint enables indented JSON with two spaces per level.
func WithPrettyPrint() Option {
	return WithIndent("", "  ")
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	options
}

func newBaseWriter(output io.Writer, opts []Option) baseWriter {
	b := baseWriter{output: output}
	for _, opt := range opts {
		opt(&b.options)
	}
	return b
}

// displayPassword returns the password or its mask.
func (b *baseWriter) displayPassword(a *model.Assessment) string {
	if b.showPassword {
		return a.Password
	}
	return a.MaskedPassword()
}

// displayPattern returns the matched text or its mask. Fixed tokens such as
// "4+ digits" are never masked.
func (b *baseWriter) displayPattern(p model.PatternMatch) string {
	if b.showPassword || p.Type == model.PatternNumberSequence || p.Type == model.PatternYear {
		return p.Pattern
	}
	return strings.Repeat("*", utf8.RuneCountInString(p.Pattern))
}

// formatDelta formats a numeric delta with its sign.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}

// formatFloatDelta formats a one-decimal delta with its sign.
func formatFloatDelta(delta float64) string {
	s := strconv.FormatFloat(delta, 'f', 1, 64)
	if delta > 0 {
		return "+" + s
	}
	return s
}

// formatDirection formats an audit direction for display.
func formatDirection(direction string) string {
	switch direction {
	case model.DirectionImproved:
		return "IMPROVED (stronger passwords)"
	case model.DirectionWorsened:
		return "WORSENED (weaker passwords)"
	default:
		return "UNCHANGED"
	}
}

// percent returns count as a share of total, in percent.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(total)
}

// characterSetNames joins the character classes for display.
func characterSetNames(sets []model.CharacterSet) string {
	if len(sets) == 0 {
		return "-"
	}
	names := make([]string, len(sets))
	for i, s := range sets {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// shortDigest returns the first 16 characters of a digest.
func shortDigest(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16]
}
