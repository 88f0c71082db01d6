package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passmeter/internal/config"
	"github.com/nao1215/passmeter/internal/database"
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/report"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
// This command compares audit results with historical data stored in the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [source]",
		Short: "Compare audit results with historical data",
		Long: `Compare shows how a password list changed between two audits.

Audits are identified by their source label (the list's file name unless
--source was given to 'passmeter audit'). The comparison reports the
change in tier distribution, average score, average entropy and known
weak passwords, and whether the list itself changed.

Examples:
  # Compare the latest two audits of a list
  passmeter compare passwords.txt

  # List the audit history of a list
  passmeter compare --list passwords.txt

  # Compare the latest audit with a specific earlier run
  passmeter compare --with-run-id 3 passwords.txt

  # List every audited source
  passmeter compare --list-sources

  # Delete an audit run
  passmeter compare --delete 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List audit history for the specified source")
	cmd.Flags().BoolP("list-sources", "L", false,
		"List all audited sources in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare with a specific audit run by ID (use --list to see available IDs)")
	cmd.Flags().Int64P("delete", "d", 0,
		"Delete the audit run with this ID")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the history database")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// compareOptions holds the parsed compare flags.
type compareOptions struct {
	source      string
	list        bool
	listSources bool
	withRunID   int64
	deleteID    int64
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	opts, err := parseCompareFlags(cmd, args)
	if err != nil {
		return err
	}

	// Validate before opening the database so that a usage error leaves no file behind.
	if opts.source == "" && !opts.listSources && opts.deleteID == 0 {
		return errors.New("source is required (use --list-sources to see audited sources)")
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	switch {
	case opts.listSources:
		return listSources(ctx, db, out)
	case opts.deleteID > 0:
		if err := db.DeleteAudit(ctx, opts.deleteID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted audit run %d\n", opts.deleteID)
		return nil
	case opts.list:
		return listAuditHistory(ctx, db, out, opts.source)
	}

	diff, err := runComparison(ctx, db, opts.source, opts.withRunID)
	if err != nil {
		return err
	}
	return writeReport(cfg, out, func(w report.Writer) error {
		_, err := w.WriteDiff(diff)
		return err
	})
}

func parseCompareFlags(cmd *cobra.Command, args []string) (compareOptions, error) {
	var (
		opts compareOptions
		err  error
	)
	if len(args) > 0 {
		opts.source = args[0]
	}
	flags := cmd.Flags()
	if opts.list, err = flags.GetBool("list"); err != nil {
		return opts, err
	}
	if opts.listSources, err = flags.GetBool("list-sources"); err != nil {
		return opts, err
	}
	if opts.withRunID, err = flags.GetInt64("with-run-id"); err != nil {
		return opts, err
	}
	if opts.deleteID, err = flags.GetInt64("delete"); err != nil {
		return opts, err
	}
	return opts, nil
}

// listSources prints every source that has audit records in the database.
func listSources(ctx context.Context, db *database.HistoryDB, out io.Writer) error {
	sources, err := db.ListSources(ctx)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(out, "No audited sources found in the database.")
		fmt.Fprintln(out, "\nUse 'passmeter audit <file>' to audit a password list.")
		return nil
	}

	fmt.Fprintf(out, "Audited sources (%d):\n\n", len(sources))
	for _, source := range sources {
		fmt.Fprintf(out, "  • %s\n", source)
	}
	fmt.Fprintln(out, "\nUse 'passmeter compare --list <source>' to see the audit history of a source.")
	return nil
}

// listAuditHistory prints the audit runs recorded for source.
func listAuditHistory(ctx context.Context, db *database.HistoryDB, out io.Writer, source string) error {
	records, err := db.ListAudits(ctx, source)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(out, "No audit history found for %s\n", source)
		fmt.Fprintln(out, "\nUse 'passmeter audit' to audit this list.")
		return nil
	}

	fmt.Fprintf(out, "Audit history for %s (%d runs):\n\n", source, len(records))
	fmt.Fprintf(out, "  %-6s  %-20s  %-8s  %s\n", "ID", "Date", "Total", "Avg score")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 50))
	for _, rec := range records {
		fmt.Fprintf(out, "  %-6d  %-20s  %-8d  %.1f\n",
			rec.ID,
			rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
			rec.Total,
			rec.AverageScore,
		)
	}

	fmt.Fprintln(out, "\nUse 'passmeter compare <source>' to compare the latest two audits.")
	fmt.Fprintln(out, "Use 'passmeter compare --with-run-id <id> <source>' to compare with a specific run.")
	return nil
}

// runComparison compares the latest audit of source with the previous one,
// or with the run withRunID when it is set.
func runComparison(ctx context.Context, db *database.HistoryDB, source string, withRunID int64) (*model.AuditDiff, error) {
	latest, err := db.GetLatestAudits(ctx, source, 2)
	if err != nil {
		return nil, err
	}
	if len(latest) == 0 {
		return nil, fmt.Errorf("no audit history found for %s", source)
	}
	current := latest[0]

	var previous *model.AuditSummary
	switch {
	case withRunID > 0:
		previous, err = db.GetAudit(ctx, withRunID)
		if err != nil {
			return nil, err
		}
		if previous.Source != source {
			return nil, fmt.Errorf("audit run %d belongs to %s, not %s", withRunID, previous.Source, source)
		}
		if previous.ID == current.ID {
			return nil, fmt.Errorf("audit run %d is the latest run; choose an earlier one", withRunID)
		}
	case len(latest) < 2:
		return nil, fmt.Errorf("at least 2 audits are required for comparison (found %d)", len(latest))
	default:
		previous = latest[1]
	}

	return model.CompareAudits(previous, current), nil
}
