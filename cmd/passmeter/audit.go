package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/passmeter/internal/audit"
	"github.com/nao1215/passmeter/internal/config"
	"github.com/nao1215/passmeter/internal/database"
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Audit a list of passwords",
		Long: `Audit analyzes every password in a file (one per line) and reports the
strength tier distribution, average score and entropy, known weak
passwords and pattern counts.

Only aggregates are reported and stored: the passwords themselves never
leave the process. Each audit is saved to the history database so that
'passmeter compare' can show how the list changed over time.

Use "-" to read the list from standard input.

Examples:
  # Audit a password list
  passmeter audit passwords.txt

  # Audit with 20 concurrent workers, without saving to history
  passmeter audit -b 20 --no-save passwords.txt

  # Write a Markdown report with a tier distribution chart
  passmeter audit --markdown -o audit.md passwords.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runAuditCmd,
	}

	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of passwords analyzed concurrently")
	cmd.Flags().StringP("source", "s", "",
		"Label stored with the audit (default: file name)")
	cmd.Flags().Bool("no-save", false,
		"Do not save the audit to the history database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the history database")
	addReportFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return err
	}
	if source == "" {
		source = sourceLabel(args[0])
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext(cmd)
	defer cancel()

	return runAudit(ctx, cfg, args[0], source, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// sourceLabel derives the history label of a list path.
func sourceLabel(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// runAudit audits the list at path, saves the summary and writes the report.
func runAudit(ctx context.Context, cfg *config.Config, path, source string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	candidates, err := readCandidateFile(path, stdin)
	if err != nil {
		return err
	}

	m, err := newMeter(cfg, logger)
	if err != nil {
		return err
	}

	p := audit.NewProcessor(m,
		audit.WithConcurrency(cfg.BatchSize),
		audit.WithLogger(logger),
	)
	summary, err := p.Process(ctx, source, candidates)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if cfg.SaveToDB {
		if err := saveAudit(ctx, cfg.DBDir, summary, logger); err != nil {
			return err
		}
	}

	return writeReport(cfg, stdout, func(w report.Writer) error {
		_, err := w.WriteAudit(summary)
		return err
	})
}

// readCandidateFile reads the password list at path, or stdin for "-".
func readCandidateFile(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open password list: %w", err)
		}
		defer f.Close()
		r = f
	}

	candidates, err := audit.ReadCandidates(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}
	return candidates, nil
}

// saveAudit stores the summary in the history database under dbDir.
func saveAudit(ctx context.Context, dbDir string, summary *model.AuditSummary, logger *slog.Logger) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveAudit(ctx, summary)
	if err != nil {
		return err
	}
	logger.Info("audit saved to history", "id", id, "source", summary.Source, "db", db.Path())
	return nil
}
