package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passmeter/internal/model"
)

// MarkdownWriter outputs reports in GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...Option) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output, opts)}
}

// WriteAssessments outputs one section per assessment.
func (w *MarkdownWriter) WriteAssessments(assessments []model.Assessment) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Strength Report")
	md.PlainText("")
	for i := range assessments {
		w.writeAssessment(md, &assessments[i])
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeAssessment(md *markdown.Markdown, a *model.Assessment) {
	md.H2("`" + w.displayPassword(a) + "`")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Strength", fmt.Sprintf("**%s** (%d/100)", a.Strength.Label, a.Strength.Score)},
			{"Length", strconv.Itoa(a.Length)},
			{"Entropy", fmt.Sprintf("%.1f bits", a.Entropy)},
			{"Crack Time", a.CrackTime},
			{"Character Sets", characterSetNames(a.CharacterSets)},
			{"Known Weak Password", yesNo(a.Dictionary.IsKnownWeakPassword)},
		},
	})
	md.PlainText("")

	writeTierAlert(md, a.Strength.Tier)

	if a.HasPatterns() {
		md.H3("Patterns")
		md.PlainText("")
		rows := make([][]string, len(a.Patterns))
		for i, p := range a.Patterns {
			description := p.Description
			if !w.showPassword {
				description = "-"
			}
			rows[i] = []string{string(p.Type), "`" + w.displayPattern(p) + "`", description}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Type", "Pattern", "Description"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.H3("Feedback")
	md.PlainText("")
	items := make([]string, len(a.Feedback))
	for i, f := range a.Feedback {
		items[i] = f.Icon + " " + f.Message
	}
	md.BulletList(items...)
	md.PlainText("")

	if len(a.Recommendations) > 0 {
		md.Details("Recommendations", "- "+strings.Join(a.Recommendations, "\n- "))
		md.PlainText("")
	}
}

// writeTierAlert writes a GitHub alert matching the strength tier.
func writeTierAlert(md *markdown.Markdown, tier model.Tier) {
	switch tier {
	case model.TierVeryWeak:
		md.Cautionf("%s password. It can be guessed almost immediately.", tier.Label())
	case model.TierWeak:
		md.Warningf("%s password. Strengthen it before use.", tier.Label())
	case model.TierFair:
		md.Importantf("%s password. Consider making it longer and less predictable.", tier.Label())
	case model.TierGood:
		md.Note("Good password. A few improvements would make it stronger.")
	default:
		md.Tip("Strong password.")
	}
	md.PlainText("")
}

// WriteAudit outputs the audit summary with a tier distribution chart.
func (w *MarkdownWriter) WriteAudit(s *model.AuditSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + s.Source + "`"},
			{"Digest", "`" + shortDigest(s.Digest) + "`"},
			{"Audit Date", s.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", s.Duration.Round(time.Millisecond).String()},
			{"Passwords", strconv.Itoa(s.Total)},
			{"Average Score", strconv.FormatFloat(s.AverageScore, 'f', 1, 64)},
			{"Average Entropy", strconv.FormatFloat(s.AverageEntropy, 'f', 1, 64) + " bits"},
			{"Known Weak Passwords", strconv.Itoa(s.KnownWeakCount)},
		},
	})
	md.PlainText("")

	md.H2("Tier Distribution")
	md.PlainText("")
	rows := make([][]string, 0, len(model.Tiers))
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		count := s.TierCounts[tier]
		rows = append(rows, []string{tier.Label(), strconv.Itoa(count), fmt.Sprintf("%.1f%%", percent(count, s.Total))})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Tier", "Count", "Share"},
		Rows:   rows,
	})
	md.PlainText("")

	if s.Total > 0 {
		w.writePieChart(md, s)
	}
	w.writeAuditAlert(md, s)

	md.H2("Patterns")
	md.PlainText("")
	var patternRows [][]string
	for _, pt := range model.PatternTypes {
		if count := s.PatternCounts[pt]; count > 0 {
			patternRows = append(patternRows, []string{string(pt), strconv.Itoa(count)})
		}
	}
	if len(patternRows) == 0 {
		md.PlainText("No patterns detected.")
	} else {
		md.Table(markdown.TableSet{
			Header: []string{"Pattern Type", "Matches"},
			Rows:   patternRows,
		})
	}
	md.PlainText("")

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of the tier distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.AuditSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Strength Tier Distribution"),
		piechart.WithShowData(true),
	)
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		if count := s.TierCounts[tier]; count > 0 {
			chart.LabelAndIntValue(tier.Label(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAuditAlert summarizes the audit in a GitHub alert.
func (w *MarkdownWriter) writeAuditAlert(md *markdown.Markdown, s *model.AuditSummary) {
	weak := s.TierCounts[model.TierVeryWeak] + s.TierCounts[model.TierWeak]
	switch {
	case s.KnownWeakCount > 0:
		md.Cautionf("%d known weak password(s) found. Replace them immediately.", s.KnownWeakCount)
	case weak > 0:
		md.Warningf("%d weak password(s) found (%.1f%% of the list).", weak, s.WeakShare()*100)
	case s.TierCounts[model.TierFair] > 0:
		md.Importantf("%d password(s) rated fair could be strengthened.", s.TierCounts[model.TierFair])
	default:
		md.Tip("No weak passwords found.")
	}
	md.PlainText("")
}

// WriteDiff outputs the comparison of two audits.
func (w *MarkdownWriter) WriteDiff(d *model.AuditDiff) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Audit Comparison: " + d.Source)
	md.PlainText("")
	md.H2("Summary")
	md.PlainText("")
	md.PlainTextf("**Status:** %s", formatDirection(d.Direction))
	md.PlainText("")

	rows := [][]string{
		{"Date", d.Previous.StartedAt.Format("2006-01-02 15:04"), d.Current.StartedAt.Format("2006-01-02 15:04"), "-"},
	}
	for i := len(model.Tiers) - 1; i >= 0; i-- {
		tier := model.Tiers[i]
		rows = append(rows, []string{
			tier.Label(),
			strconv.Itoa(d.Previous.TierCounts[tier]),
			strconv.Itoa(d.Current.TierCounts[tier]),
			formatDelta(d.TierDeltas[tier]),
		})
	}
	rows = append(rows,
		[]string{
			"Average Score",
			strconv.FormatFloat(d.Previous.AverageScore, 'f', 1, 64),
			strconv.FormatFloat(d.Current.AverageScore, 'f', 1, 64),
			formatFloatDelta(d.AverageScoreDelta),
		},
		[]string{
			"Known Weak",
			strconv.Itoa(d.Previous.KnownWeakCount),
			strconv.Itoa(d.Current.KnownWeakCount),
			formatDelta(d.KnownWeakDelta),
		},
		[]string{
			"**Total**",
			"**" + strconv.Itoa(d.Previous.Total) + "**",
			"**" + strconv.Itoa(d.Current.Total) + "**",
			"**" + formatDelta(d.TotalDelta) + "**",
		},
	)
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Previous", "Current", "Change"},
		Rows:   rows,
	})
	md.PlainText("")

	switch d.Direction {
	case model.DirectionImproved:
		md.Tip("The list got stronger since the previous audit.")
	case model.DirectionWorsened:
		md.Warning("The list got weaker since the previous audit.")
	default:
		md.Note("No change in average score.")
	}
	md.PlainText("")

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by passmeter*")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
