package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/passmeter/internal/model"
)

const (
	ruleWidth = 70
	barWidth  = 20
)

// SimpleWriter outputs human-readable text reports for the terminal.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...Option) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output, opts)}
}

// WriteAssessments outputs each assessment as its own report block.
func (w *SimpleWriter) WriteAssessments(assessments []model.Assessment) (int, error) {
	var sb strings.Builder
	for i := range assessments {
		w.writeAssessment(&sb, &assessments[i])
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeAssessment(sb *strings.Builder, a *model.Assessment) {
	writeBanner(sb, "PASSWORD STRENGTH REPORT")

	fmt.Fprintf(sb, "Password:    %s\n", w.displayPassword(a))
	fmt.Fprintf(sb, "Length:      %d\n", a.Length)
	fmt.Fprintf(sb, "Strength:    %s %s (%d/100)\n", scoreBar(a.Strength.Score), a.Strength.Label, a.Strength.Score)
	fmt.Fprintf(sb, "Entropy:     %.1f bits\n", a.Entropy)
	fmt.Fprintf(sb, "Crack time:  %s\n", a.CrackTime)
	fmt.Fprintf(sb, "Characters:  %s\n", characterSetNames(a.CharacterSets))
	sb.WriteString("\n")

	if a.HasPatterns() || w.verbose {
		writeSection(sb, "PATTERNS")
		if !a.HasPatterns() {
			sb.WriteString("  No patterns detected\n")
		}
		for _, p := range a.Patterns {
			fmt.Fprintf(sb, "  [%s] %s\n", p.Type, w.displayPattern(p))
			if w.verbose && w.showPassword {
				fmt.Fprintf(sb, "    %s\n", p.Description)
			}
		}
		sb.WriteString("\n")
	}

	writeSection(sb, "FEEDBACK")
	for _, f := range a.Feedback {
		fmt.Fprintf(sb, "  %s %s\n", f.Icon, f.Message)
	}
	sb.WriteString("\n")

	if len(a.Recommendations) > 0 {
		writeSection(sb, "RECOMMENDATIONS")
		for _, r := range a.Recommendations {
			fmt.Fprintf(sb, "  - %s\n", r)
		}
		sb.WriteString("\n")
	}
}

// WriteAudit outputs the audit summary with the tier distribution.
func (w *SimpleWriter) WriteAudit(s *model.AuditSummary) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "PASSWORD AUDIT REPORT")
	fmt.Fprintf(&sb, "Source:      %s\n", s.Source)
	if s.ID != 0 {
		fmt.Fprintf(&sb, "Run ID:      %d\n", s.ID)
	}
	fmt.Fprintf(&sb, "Digest:      %s\n", shortDigest(s.Digest))
	fmt.Fprintf(&sb, "Audit Date:  %s\n", s.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Duration:    %s\n", s.Duration.Round(time.Millisecond))
	fmt.Fprintf(&sb, "Passwords:   %d\n", s.Total)
	sb.WriteString("\n")

	writeSection(&sb, "TIER DISTRIBUTION")
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		count := s.TierCounts[tier]
		share := percent(count, s.Total)
		fmt.Fprintf(&sb, "  %-12s %6d  (%5.1f%%)  %s\n",
			tier.Label(), count, share, strings.Repeat("#", int(share/100*barWidth+0.5)))
	}
	sb.WriteString("\n")

	writeSection(&sb, "SUMMARY")
	fmt.Fprintf(&sb, "  Average score:     %.1f\n", s.AverageScore)
	fmt.Fprintf(&sb, "  Average entropy:   %.1f bits\n", s.AverageEntropy)
	fmt.Fprintf(&sb, "  Score range:       %d - %d\n", s.MinScore, s.MaxScore)
	fmt.Fprintf(&sb, "  Known weak:        %d\n", s.KnownWeakCount)
	fmt.Fprintf(&sb, "  Common words:      %d\n", s.CommonWordCount)
	fmt.Fprintf(&sb, "  Weak or worse:     %.1f%%\n", s.WeakShare()*100)
	sb.WriteString("\n")

	writeSection(&sb, "PATTERNS")
	listed := false
	for _, pt := range model.PatternTypes {
		count := s.PatternCounts[pt]
		if count == 0 && !w.verbose {
			continue
		}
		listed = true
		fmt.Fprintf(&sb, "  %-16s %d\n", pt, count)
	}
	if !listed {
		sb.WriteString("  No patterns detected\n")
	}
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

// WriteDiff outputs the comparison of two audits.
func (w *SimpleWriter) WriteDiff(d *model.AuditDiff) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Audit Comparison: %s\n", d.Source)
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "\nStatus: %s\n", formatDirection(d.Direction))
	if d.SameList {
		sb.WriteString("Both audits were run over the same list.\n")
	}

	fmt.Fprintf(&sb, "\nPrevious audit: %s (ID %d)\n", d.Previous.StartedAt.Format("2006-01-02 15:04:05"), d.Previous.ID)
	fmt.Fprintf(&sb, "Current audit:  %s (ID %d)\n", d.Current.StartedAt.Format("2006-01-02 15:04:05"), d.Current.ID)

	sb.WriteString("\nTier Summary:\n")
	fmt.Fprintf(&sb, "  %-12s  %-10s  %-10s  %-10s\n", "Tier", "Previous", "Current", "Change")
	sb.WriteString("  " + strings.Repeat("-", 47) + "\n")
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		fmt.Fprintf(&sb, "  %-12s  %-10d  %-10d  %-10s\n", tier.Label(),
			d.Previous.TierCounts[tier], d.Current.TierCounts[tier], formatDelta(d.TierDeltas[tier]))
	}
	sb.WriteString("  " + strings.Repeat("-", 47) + "\n")
	fmt.Fprintf(&sb, "  %-12s  %-10d  %-10d  %-10s\n", "Total",
		d.Previous.Total, d.Current.Total, formatDelta(d.TotalDelta))

	sb.WriteString("\nAverages:\n")
	fmt.Fprintf(&sb, "  %-12s  %-10.1f  %-10.1f  %-10s\n", "Score",
		d.Previous.AverageScore, d.Current.AverageScore, formatFloatDelta(d.AverageScoreDelta))
	fmt.Fprintf(&sb, "  %-12s  %-10.1f  %-10.1f  %-10s\n", "Entropy",
		d.Previous.AverageEntropy, d.Current.AverageEntropy, formatFloatDelta(d.AverageEntropyDelta))
	fmt.Fprintf(&sb, "  %-12s  %-10d  %-10d  %-10s\n", "Known weak",
		d.Previous.KnownWeakCount, d.Current.KnownWeakCount, formatDelta(d.KnownWeakDelta))

	return io.WriteString(w.output, sb.String())
}

func writeBanner(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", max(0, (ruleWidth-len(title))/2)))
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

// scoreBar renders the score as a fixed-width gauge, e.g. [#######-------------].
func scoreBar(score model.Score) string {
	filled := int(score) * barWidth / model.MaxScore
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}
