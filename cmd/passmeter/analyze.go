package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nao1215/passmeter/internal/audit"
	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/report"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password...]",
		Short: "Analyze the strength of one or more passwords",
		Long: `Analyze rates each password and prints its score, strength tier,
entropy, crack-time estimate, detected patterns and feedback.

Passwords are read from the arguments, from a file given with --list
(one password per line), or, when neither is given, from the first line
of standard input. Prefer standard input: arguments are visible to other
users in the process list and end up in shell history.

Examples:
  # Read the password from standard input
  passmeter analyze

  # Analyze several passwords
  passmeter analyze 'correct horse' 'Tr0ub4dor&3'

  # Analyze a list of passwords as JSON
  passmeter analyze --list passwords.txt --json

  # Show the password in clear text in the report
  passmeter analyze --show-password`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().StringP("list", "l", "",
		"File with one password per line")
	cmd.Flags().Bool("show-password", false,
		"Print passwords in clear text instead of masking them")
	addReportFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	listPath, err := cmd.Flags().GetString("list")
	if err != nil {
		return err
	}

	passwords, err := collectPasswords(args, listPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	m, err := newMeter(cfg, logger)
	if err != nil {
		return err
	}

	assessments := make([]model.Assessment, len(passwords))
	for i, pw := range passwords {
		assessments[i] = m.Analyze(pw)
	}

	return writeReport(cfg, cmd.OutOrStdout(), func(w report.Writer) error {
		_, err := w.WriteAssessments(assessments)
		return err
	})
}

// collectPasswords gathers the passwords to analyze: arguments first, then
// the list file. With neither, the first line of stdin is used.
func collectPasswords(args []string, listPath string, stdin io.Reader) ([]string, error) {
	passwords := append([]string(nil), args...)

	if listPath != "" {
		f, err := os.Open(listPath) //nolint:gosec // User-provided list path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open password list: %w", err)
		}
		defer f.Close()

		listed, err := audit.ReadCandidates(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read password list: %w", err)
		}
		if len(listed) == 0 {
			return nil, fmt.Errorf("%w: %s", audit.ErrNoCandidates, listPath)
		}
		passwords = append(passwords, listed...)
	}

	if len(passwords) > 0 {
		return passwords, nil
	}

	line, err := readLine(stdin)
	if err != nil {
		return nil, err
	}
	return []string{line}, nil
}

// readLine reads a single line without its line terminator.
// An empty input yields the empty password.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
