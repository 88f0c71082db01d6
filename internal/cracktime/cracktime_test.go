package cracktime

import (
	"testing"
)

func TestEstimate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		entropy float64
		want    string
	}{
		{-1, Instant},
		{0, Instant},
		{9.9, Instant},
		{30, Instant},
		{31, "1 seconds"},
		{36, "34 seconds"},
		{40, "9 minutes"},
		{45, "5 hours"},
		{50, "7 days"},
		{60, "18 years"},
		{70, "19 centuries"},
		{97.0, "2512308553 centuries"},
		{110, "20580831662762 centuries"},
		{118, "5268692905666999 centuries"},
		{120, "21074771622667996 centuries"},
		{130, "21580566141612028000 centuries"},
		{200, "2.5477835557125036e+40 centuries"},
		{2000, "Infinity centuries"},
	}

	for _, tc := range testCases {
		if got := Estimate(tc.entropy); got != tc.want {
			t.Errorf("Estimate(%v) = %q, want %q", tc.entropy, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		v    float64
		want string
	}{
		{0.5, "1"},
		{2.4999, "2"},
		{4503599627370497, "4503599627370497"},
		{1.0955541602030403e18, "1095554160203040300"},
		{9.999999999999999e20, "999999999999999900000"},
		{1e21, "1e+21"},
	}

	for _, tc := range testCases {
		if got := formatCount(tc.v); got != tc.want {
			t.Errorf("formatCount(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestSecondsIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := Seconds(-5)
	for e := -5.0; e <= 200; e += 0.1 {
		cur := Seconds(e)
		if cur < prev {
			t.Fatalf("Seconds(%v) = %v < %v", e, cur, prev)
		}
		prev = cur
	}
}
