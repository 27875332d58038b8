package timestamp

import (
	"strconv"
	"strings"
	"time"
)

// Unit is the inferred resolution of a detected epoch value.
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMillis  Unit = "milliseconds"
)

const (
	// Integer parts above this are read as millisecond epochs. As seconds
	// it would mean a date past year 5138, so milliseconds is the only
	// plausible reading.
	millisThreshold = 99_999_999_999

	// Accepted epoch range after unit normalization:
	// 2001-09-09T01:46:40Z .. 2099-12-31T23:59:59Z. The lower bound keeps
	// ordinary small integers from triggering detections.
	minEpochSecond = 1_000_000_000
	maxEpochSecond = 4_102_444_799

	maxDecimalPlaces = 6
)

// Settings controls how a detected timestamp is rendered. It is passed
// by value so detection stays a pure function of its inputs.
type Settings struct {
	DecimalPlaces int
	Zone          *time.Location
	ZoneLabel     string
}

// DefaultZone is the fixed-offset zone used when none is configured.
func DefaultZone() *time.Location {
	return time.FixedZone("VN", 7*60*60)
}

// Candidate is a clipboard string that parsed as a plausible epoch value.
type Candidate struct {
	Input string
	Time  time.Time
	Unit  Unit
}

// Result holds the formatted GMT and local-zone representations of a
// detected timestamp.
type Result struct {
	Input     string
	Unit      Unit
	GMT       string
	Local     string
	ZoneLabel string
	Time      time.Time
}

// Parse reports whether text is a Unix timestamp in seconds or
// milliseconds. The whole trimmed string must be an unsigned integer or
// decimal number inside the accepted epoch range.
func Parse(text string) (Candidate, bool) {
	trimmed := strings.TrimSpace(text)

	intPart, fracPart, ok := splitNumber(trimmed)
	if !ok {
		return Candidate{}, false
	}

	value, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Candidate{}, false
	}

	unit := UnitSeconds
	sec := value
	var nsec int64

	if value > millisThreshold {
		unit = UnitMillis
		sec = value / 1000
		// Remaining milliseconds plus any fraction of a millisecond.
		nsec = (value%1000)*int64(time.Millisecond) + fracNanos(fracPart, 6)
	} else {
		nsec = fracNanos(fracPart, 9)
	}

	if sec < minEpochSecond || sec > maxEpochSecond {
		return Candidate{}, false
	}

	return Candidate{
		Input: trimmed,
		Time:  time.Unix(sec, nsec).UTC(),
		Unit:  unit,
	}, true
}

// Convert formats a candidate in GMT and in the configured zone.
func Convert(c Candidate, s Settings) Result {
	zone := s.Zone
	if zone == nil {
		zone = DefaultZone()
	}
	label := s.ZoneLabel
	if label == "" {
		label = zone.String()
	}

	layout := formatLayout(s.DecimalPlaces)

	return Result{
		Input:     c.Input,
		Unit:      c.Unit,
		GMT:       c.Time.UTC().Format(layout),
		Local:     c.Time.In(zone).Format(layout),
		ZoneLabel: label,
		Time:      c.Time,
	}
}

// Detect runs Parse and Convert in one step. The second return value is
// false when the text is not a timestamp; that is not an error, just a
// non-detection.
func Detect(text string, s Settings) (Result, bool) {
	c, ok := Parse(text)
	if !ok {
		return Result{}, false
	}
	return Convert(c, s), true
}

// splitNumber accepts "digits" or "digits.digits" and nothing else.
func splitNumber(s string) (intPart, fracPart string, ok bool) {
	if s == "" {
		return "", "", false
	}

	intPart = s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" || !isDigits(fracPart) {
			return "", "", false
		}
	}

	// 19 digits already overflows the accepted range.
	if intPart == "" || len(intPart) > 19 || !isDigits(intPart) {
		return "", "", false
	}

	return intPart, fracPart, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// fracNanos converts fractional digits of one unit into nanoseconds.
// digits is the number of fractional digits that make up a nanosecond
// (9 for seconds, 6 for milliseconds); extra precision is truncated.
func fracNanos(frac string, digits int) int64 {
	if frac == "" {
		return 0
	}
	if len(frac) > digits {
		frac = frac[:digits]
	}
	v, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0
	}
	for i := len(frac); i < digits; i++ {
		v *= 10
	}
	return v
}

func formatLayout(decimalPlaces int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if decimalPlaces > maxDecimalPlaces {
		decimalPlaces = maxDecimalPlaces
	}
	if decimalPlaces == 0 {
		return "2006-01-02 15:04:05"
	}
	return "2006-01-02 15:04:05." + strings.Repeat("0", decimalPlaces)
}
