package reference

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
	"sync"
)

var (
	//go:embed data/weak_passwords.txt
	weakPasswordsRaw string

	//go:embed data/common_words.txt
	commonWordsRaw string

	//go:embed data/keyboard_patterns.txt
	keyboardPatternsRaw string
)

// ErrEmptyWordlist is returned by Load when a wordlist file contains no entries.
var ErrEmptyWordlist = errors.New("wordlist contains no entries")

// Tables is the read-only reference data used by one analysis engine.
type Tables struct {
	// WeakPasswords are whole passwords known to be weak, matched exactly.
	WeakPasswords *WordSet

	// CommonWords are dictionary words searched for as substrings.
	CommonWords *WordSet

	// keyboard keeps duplicates: each entry is tested and penalized separately.
	keyboard []string
}

// New builds Tables from explicit lists. Keyboard patterns are lowercased
// but otherwise kept as given, including repeats.
func New(weakPasswords, commonWords, keyboardPatterns []string) *Tables {
	keyboard := make([]string, 0, len(keyboardPatterns))
	for _, p := range keyboardPatterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			keyboard = append(keyboard, p)
		}
	}
	return &Tables{
		WeakPasswords: NewWordSet(weakPasswords...),
		CommonWords:   NewWordSet(commonWords...),
		keyboard:      keyboard,
	}
}

// KeyboardPatterns iterates over the keyboard patterns in list order.
func (t *Tables) KeyboardPatterns() iter.Seq[string] {
	return slices.Values(t.keyboard)
}

// KeyboardPatternCount returns the number of keyboard pattern entries.
func (t *Tables) KeyboardPatternCount() int {
	return len(t.keyboard)
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded tables. They are parsed on the first call
// and shared by every later caller.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = New(
			splitLines(weakPasswordsRaw),
			splitLines(commonWordsRaw),
			splitLines(keyboardPatternsRaw),
		)
	})
	return defaultTables
}

// LoadOptions describes additions to the default tables.
// File entries are read first, then inline entries.
type LoadOptions struct {
	WeakPasswordsFile    string
	CommonWordsFile      string
	KeyboardPatternsFile string

	WeakPasswords    []string
	CommonWords      []string
	KeyboardPatterns []string
}

// IsZero reports whether the options add nothing to the defaults.
func (o LoadOptions) IsZero() bool {
	return o.WeakPasswordsFile == "" && o.CommonWordsFile == "" && o.KeyboardPatternsFile == "" &&
		len(o.WeakPasswords) == 0 && len(o.CommonWords) == 0 && len(o.KeyboardPatterns) == 0
}

// Load returns the default tables extended with the given files and entries.
// When opts adds nothing, the shared default tables are returned.
func Load(opts LoadOptions) (*Tables, error) {
	base := Default()
	if opts.IsZero() {
		return base, nil
	}

	weak, err := withFile(opts.WeakPasswordsFile, opts.WeakPasswords)
	if err != nil {
		return nil, fmt.Errorf("failed to load weak passwords: %w", err)
	}
	words, err := withFile(opts.CommonWordsFile, opts.CommonWords)
	if err != nil {
		return nil, fmt.Errorf("failed to load common words: %w", err)
	}
	keyboard, err := withFile(opts.KeyboardPatternsFile, opts.KeyboardPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyboard patterns: %w", err)
	}

	extended := New(nil, nil, append(slices.Clone(base.keyboard), keyboard...))
	extended.WeakPasswords = base.WeakPasswords.union(weak...)
	extended.CommonWords = base.CommonWords.union(words...)
	return extended, nil
}

// withFile reads entries from path (if set) and appends inline.
func withFile(path string, inline []string) ([]string, error) {
	if path == "" {
		return inline, nil
	}
	f, err := os.Open(path) //nolint:gosec // wordlist path comes from the user's own config
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ReadWordlist(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyWordlist)
	}
	return append(entries, inline...), nil
}

// ReadWordlist reads one entry per line. Blank lines and lines starting
// with '#' are skipped.
func ReadWordlist(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func splitLines(raw string) []string {
	entries, _ := ReadWordlist(strings.NewReader(raw)) //nolint:errcheck // reading from a string cannot fail
	return entries
}
