package detect

import (
	"slices"
	"testing"

	"github.com/nao1215/passmeter/internal/model"
	"github.com/nao1215/passmeter/internal/reference"
)

func TestFindSequences(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		want     []string
	}{
		{"empty", "", nil},
		{"too short", "ab", nil},
		{"ascending with suffix run", "abcd", []string{"abcd", "bcd"}},
		{"descending", "cba", []string{"cba"}},
		{"digits", "1234", []string{"1234", "234"}},
		{"case folded", "XyZ", []string{"xyz"}},
		{"embedded", "Tr0ub4dor&3xyzLONG99", []string{"xyz"}},
		{"none", "password", nil},
		{"both directions", "abcba", []string{"abc", "cba"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FindSequences(tc.password); !slices.Equal(got, tc.want) {
				t.Errorf("FindSequences(%q) = %q, want %q", tc.password, got, tc.want)
			}
		})
	}
}

func TestLongestSequence(t *testing.T) {
	t.Parallel()

	if got := LongestSequence("xabcdefx"); got != 6 {
		t.Errorf("LongestSequence = %d, want 6", got)
	}
	if got := LongestSequence("zq"); got != 0 {
		t.Errorf("LongestSequence = %d, want 0", got)
	}
}

func TestFindRepetitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		want     []string
	}{
		{"whole string", "abcabcabc", []string{"abcabcabc"}},
		{"single char block too short", "aaa", nil},
		{"two char block", "aaaa", []string{"aaaa"}},
		{"longest block wins", "abababab", []string{"abababab"}},
		{"two separate runs", "abab12abab", []string{"abab", "abab"}},
		{"with prefix", "xhellohello", []string{"hellohello"}},
		{"line terminator", "x\nx\n", nil},
		{"no repetition", "Tr0ub4dor&3xyzLONG99", nil},
		{"unicode", "日本日本", []string{"日本日本"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FindRepetitions(tc.password); !slices.Equal(got, tc.want) {
				t.Errorf("FindRepetitions(%q) = %q, want %q", tc.password, got, tc.want)
			}
		})
	}
}

func TestFindDates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		want     []string
	}{
		{"12/25/1990", []string{"12/25/1990", "1990"}},
		{"1-2-99", []string{"1-2-99"}},
		{"on 3.4.2021", []string{"3.4.2021", "2021"}},
		{"20240101", []string{"20240101", "20240101", "2024"}},
		{"abc", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			if got := FindDates(tc.password); !slices.Equal(got, tc.want) {
				t.Errorf("FindDates(%q) = %q, want %q", tc.password, got, tc.want)
			}
		})
	}
}

func TestKeyboardDetector(t *testing.T) {
	t.Parallel()

	d := NewKeyboardDetector(nil)
	matches := d.Detect("QWERTYUIOP")

	want := []string{"qwerty", "qwertyuiop", "qwer", "wert", "erty", "rtyu", "tyui", "yuio", "uiop"}
	got := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Type != model.PatternKeyboard {
			t.Errorf("unexpected type %q", m.Type)
		}
		got = append(got, m.Pattern)
	}
	if !slices.Equal(got, want) {
		t.Errorf("patterns = %q, want %q", got, want)
	}
	if matches[0].Description != `Keyboard pattern "qwerty" detected` {
		t.Errorf("description = %q", matches[0].Description)
	}
}

func TestKeyboardDetectorReportsDuplicateEntries(t *testing.T) {
	t.Parallel()

	matches := NewKeyboardDetector(nil).Detect("asdf")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2 (asdf is listed twice)", len(matches))
	}

	custom := reference.New(nil, nil, []string{"zz"})
	if got := NewKeyboardDetector(custom).Detect("asdf"); len(got) != 0 {
		t.Errorf("custom tables matched %v", got)
	}
}

func TestCommonWordDetector(t *testing.T) {
	t.Parallel()

	matches := NewCommonWordDetector().Detect("MyLoginAdminUser")
	var got []string
	for _, m := range matches {
		got = append(got, m.Pattern)
	}
	if want := []string{"admin", "user", "login"}; !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if matches[0].Description != `Common word "admin" detected` {
		t.Errorf("description = %q", matches[0].Description)
	}
}

func TestDescriptionsKeepMatchedTextVerbatim(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		detector Detector
		password string
		want     string
	}{
		{"quote in sequence", NewSequenceDetector(), `!"#`, `Sequential pattern "!"#" detected`},
		{"backslash in repetition", NewRepetitionDetector(), `\x\x`, `Repeated pattern "\x\x" detected`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			matches := tc.detector.Detect(tc.password)
			if len(matches) != 1 {
				t.Fatalf("got %d matches, want 1", len(matches))
			}
			if matches[0].Description != tc.want {
				t.Errorf("description = %s, want %s", matches[0].Description, tc.want)
			}
		})
	}
}

func TestNumericDetectors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password   string
		longNumber bool
		year20     bool
		year19     bool
	}{
		{"abc", false, false, false},
		{"123", false, false, false},
		{"x1234", true, false, false},
		{"ab2024", true, true, false},
		{"a20b1999", true, false, true},
		{"a19-20", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			if got := HasLongNumber(tc.password); got != tc.longNumber {
				t.Errorf("HasLongNumber = %v", got)
			}
			if got := Has20Year(tc.password); got != tc.year20 {
				t.Errorf("Has20Year = %v", got)
			}
			if got := Has19Year(tc.password); got != tc.year19 {
				t.Errorf("Has19Year = %v", got)
			}
			if got := len(NewNumberSequenceDetector().Detect(tc.password)) == 1; got != tc.longNumber {
				t.Errorf("NumberSequenceDetector matched = %v", got)
			}
			if got := len(NewYearDetector().Detect(tc.password)) == 1; got != tc.year20 {
				t.Errorf("YearDetector matched = %v", got)
			}
		})
	}
}

func patternTypes(matches []model.PatternMatch) []model.PatternType {
	types := make([]model.PatternType, 0, len(matches))
	for _, m := range matches {
		types = append(types, m.Type)
	}
	return types
}

func TestRegistryDetect(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(reference.Default())

	testCases := []struct {
		password string
		want     []model.PatternType
	}{
		{"", []model.PatternType{}},
		{"password", []model.PatternType{model.PatternCommonWord}},
		{"1234", []model.PatternType{
			model.PatternKeyboard,
			model.PatternSequence,
			model.PatternSequence,
			model.PatternNumberSequence,
		}},
		{"admin2024", []model.PatternType{
			model.PatternDate,
			model.PatternCommonWord,
			model.PatternNumberSequence,
			model.PatternYear,
		}},
		{"Tr0ub4dor&3xyzLONG99", []model.PatternType{model.PatternSequence}},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()
			matches := registry.Detect(tc.password)
			if matches == nil {
				t.Fatal("Detect must return a non-nil slice")
			}
			if got := patternTypes(matches); !slices.Equal(got, tc.want) {
				t.Errorf("types = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRegistryDetectors(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil)
	var names []string
	for _, d := range registry.Detectors() {
		names = append(names, d.Name())
	}
	want := []string{"keyboard", "sequence", "repetition", "date", "common-word", "number-sequence", "year"}
	if !slices.Equal(names, want) {
		t.Errorf("detectors = %v, want %v", names, want)
	}

	custom := NewCustomRegistry(NewYearDetector())
	if got := custom.Detect("2030"); len(got) != 1 || got[0].Type != model.PatternYear {
		t.Errorf("custom registry matches = %v", got)
	}
}
