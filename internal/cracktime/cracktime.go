// Package cracktime converts an entropy estimate into a coarse time to
// guess the password offline.
//
// The model assumes an attacker testing one billion guesses per second who
// finds the password after searching half of the space on average.
package cracktime

import (
	"math"
	"strconv"
)

// GuessesPerSecond is the assumed attacker speed.
const GuessesPerSecond = 1e9

// Bucket boundaries in seconds.
const (
	Minute  = 60
	Hour    = 3600
	Day     = 86400
	Year    = 31536000
	Century = 31536000000
)

// Instant is returned when the password falls in under a second.
const Instant = "Instant"

// largeNumber is where numbers switch to exponent notation.
const largeNumber = 1e21

var buckets = []struct {
	limit float64
	unit  float64
	name  string
}{
	{Minute, 1, "seconds"},
	{Hour, Minute, "minutes"},
	{Day, Hour, "hours"},
	{Year, Day, "days"},
	{Century, Year, "years"},
}

// Seconds returns the average time in seconds to guess a password with the
// given entropy, or 0 when entropy is not positive. It never decreases as
// entropy grows.
func Seconds(entropy float64) float64 {
	if entropy <= 0 {
		return 0
	}
	return math.Pow(2, entropy) / 2 / GuessesPerSecond
}

// Estimate returns a label such as "Instant", "42 minutes" or "3 centuries".
// Counts are rounded half up and printed with the shortest digits that
// identify the value, padded with zeros.
func Estimate(entropy float64) string {
	seconds := Seconds(entropy)
	if seconds < 1 {
		return Instant
	}
	for _, b := range buckets {
		if seconds < b.limit {
			return formatCount(seconds/b.unit) + " " + b.name
		}
	}
	return formatCount(seconds/Century) + " centuries"
}

func formatCount(v float64) string {
	v = math.Round(v)
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= largeNumber:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
