package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/passmeter/internal/config"
	passlog "github.com/nao1215/passmeter/internal/log"
	"github.com/nao1215/passmeter/internal/meter"
	"github.com/nao1215/passmeter/internal/report"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// addConfigFlag adds the --config flag shared by all commands that read the configuration file.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passmeter in current or home directory)")
}

// addReportFlags adds the output format flags shared by the reporting commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// buildConfig creates a Config from defaults, the configuration file and
// the command's flags, in that order. Flags the command does not define are skipped.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := loadConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	var err error

	if flags.Lookup("json") != nil {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("markdown") != nil {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("output") != nil {
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("show-password") != nil {
		if cfg.ShowPassword, err = flags.GetBool("show-password"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("db-dir") {
		if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("no-save") != nil {
		noSave, err := flags.GetBool("no-save")
		if err != nil {
			return nil, err
		}
		cfg.SaveToDB = !noSave
	}
	if flags.Changed("addr") {
		if cfg.ListenAddress, err = flags.GetString("addr"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-body") {
		if cfg.MaxBodySize, err = flags.GetInt64("max-body"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("allowed-origin") {
		if cfg.AllowedOrigins, err = flags.GetStringSlice("allowed-origin"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadConfigFile loads the configuration file into cfg.
// An explicitly given path must exist; otherwise a missing file is not an error.
func loadConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Lookup("config") != nil {
		var err error
		if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
			return err
		}
	}

	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if cfg.ConfigFilePath != "" {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	cfg.ApplyFile(file)
	return nil
}

// setupLogger creates a text logger that masks passwords and other secrets.
func setupLogger(verbose bool) *slog.Logger {
	return passlog.NewSecureLogger(os.Stderr, verbose)
}

// newMeter creates a meter using the reference tables of the configuration file.
func newMeter(cfg *config.Config, logger *slog.Logger) (*meter.Meter, error) {
	tables, err := cfg.File.Tables()
	if err != nil {
		return nil, err
	}
	return meter.New(meter.WithTables(tables), meter.WithLogger(logger)), nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// newReportWriter returns the writer for the configured output format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	opts := []report.Option{
		report.WithShowPassword(cfg.ShowPassword),
		report.WithVerbose(cfg.Verbose),
	}
	switch {
	case cfg.JSONReport:
		return report.New(report.FormatJSON, output, append(opts, report.WithPrettyPrint())...)
	case cfg.MarkdownReport:
		return report.New(report.FormatMarkdown, output, opts...)
	default:
		return report.New(report.FormatSimple, output, opts...)
	}
}

// writeReport writes a report to cfg.ReportFile, or to stdout when unset.
func writeReport(cfg *config.Config, stdout io.Writer, write func(report.Writer) error) error {
	if cfg.ReportFile == "" {
		return write(newReportWriter(cfg, stdout))
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may contain passwords when --show-password is set.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(newReportWriter(cfg, f)); err != nil {
		_ = f.Close() //nolint:errcheck // the write error is more useful
		return err
	}
	return f.Close()
}
