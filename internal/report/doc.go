// Package report renders assessments, audit summaries and audit comparisons.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text for terminal display
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: GitHub-flavored Markdown for sharing
//
// Passwords are masked in every format unless WithShowPassword(true) is given.
package report
