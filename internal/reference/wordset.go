package reference

import (
	"iter"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate is the target false positive rate of the bloom filter.
const falsePositiveRate = 0.001

// WordSet is an immutable, insertion-ordered set of lowercase words.
//
// Contains is an exact map lookup. Substrings probes a bloom filter with
// every window of the input whose length matches some word, and confirms
// hits against the map. Its cost depends on the input length and the
// spread of word lengths, not on the number of words, which keeps large
// wordlists loaded from files cheap to search.
type WordSet struct {
	words  []string
	index  map[string]int
	filter *bloom.BloomFilter
	minLen int
	maxLen int
}

// NewWordSet builds a WordSet from words. Entries are lowercased and
// trimmed; empty entries and repeats are dropped, keeping the first
// occurrence's position.
func NewWordSet(words ...string) *WordSet {
	s := &WordSet{
		words:  make([]string, 0, len(words)),
		index:  make(map[string]int, len(words)),
		filter: bloom.NewWithEstimates(uint(max(len(words), 1)), falsePositiveRate),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := s.index[w]; ok {
			continue
		}
		if len(s.words) == 0 || len(w) < s.minLen {
			s.minLen = len(w)
		}
		s.maxLen = max(s.maxLen, len(w))
		s.index[w] = len(s.words)
		s.words = append(s.words, w)
		s.filter.AddString(w)
	}
	return s
}

// Contains reports whether word, lowercased, is in the set.
func (s *WordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[strings.ToLower(word)]
	return ok
}

// Substrings returns the words of the set that occur in text, lowercased,
// in insertion order.
func (s *WordSet) Substrings(text string) []string {
	if s == nil || len(s.words) == 0 || text == "" {
		return nil
	}
	text = strings.ToLower(text)

	// A short wordlist is cheaper to scan than the windows of a long text.
	windows := len(text) * (s.maxLen - s.minLen + 1)
	if windows >= len(s.words) {
		return s.scan(text)
	}

	var positions []int
	for i := range len(text) {
		for n := s.minLen; n <= s.maxLen && i+n <= len(text); n++ {
			window := text[i : i+n]
			if !s.filter.TestString(window) {
				continue
			}
			if pos, ok := s.index[window]; ok && !slices.Contains(positions, pos) {
				positions = append(positions, pos)
			}
		}
	}
	slices.Sort(positions)

	found := make([]string, len(positions))
	for i, pos := range positions {
		found[i] = s.words[pos]
	}
	return found
}

func (s *WordSet) scan(text string) []string {
	var found []string
	for _, w := range s.words {
		if strings.Contains(text, w) {
			found = append(found, w)
		}
	}
	return found
}

// Len returns the number of words.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// All iterates over the words in insertion order.
func (s *WordSet) All() iter.Seq[string] {
	if s == nil {
		return func(func(string) bool) {}
	}
	return slices.Values(s.words)
}

// Words returns a copy of the words in insertion order.
func (s *WordSet) Words() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.words)
}

// union returns a new set containing the words of s followed by extra.
func (s *WordSet) union(extra ...string) *WordSet {
	return NewWordSet(append(s.Words(), extra...)...)
}
