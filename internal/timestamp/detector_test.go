package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(decimalPlaces int) Settings {
	return Settings{
		DecimalPlaces: decimalPlaces,
		Zone:          time.FixedZone("VN", 7*60*60),
		ZoneLabel:     "VN",
	}
}

func TestDetectGoldenSecondEpoch(t *testing.T) {
	result, ok := Detect("1640995200", testSettings(0))
	require.True(t, ok)

	assert.Equal(t, "2022-01-01 00:00:00", result.GMT)
	assert.Equal(t, "2022-01-01 07:00:00", result.Local)
	assert.Equal(t, "VN", result.ZoneLabel)
	assert.Equal(t, UnitSeconds, result.Unit)
}

func TestDetectMillisecondEpoch(t *testing.T) {
	result, ok := Detect("1640995200123", testSettings(3))
	require.True(t, ok)

	assert.Equal(t, UnitMillis, result.Unit)
	assert.Equal(t, "2022-01-01 00:00:00.123", result.GMT)
	assert.Equal(t, "2022-01-01 07:00:00.123", result.Local)
}

func TestDetectFractionalSeconds(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		decimalPlaces int
		wantGMT       string
	}{
		{"three places truncates", "1640995200.123456", 3, "2022-01-01 00:00:00.123"},
		{"six places", "1640995200.123456", 6, "2022-01-01 00:00:00.123456"},
		{"zero places hides fraction", "1640995200.999", 0, "2022-01-01 00:00:00"},
		{"short fraction padded", "1640995200.5", 3, "2022-01-01 00:00:00.500"},
		{"places clamped to six", "1640995200.123456789", 9, "2022-01-01 00:00:00.123456"},
		{"millis with fraction", "1640995200123.4", 4, "2022-01-01 00:00:00.1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Detect(tt.input, testSettings(tt.decimalPlaces))
			require.True(t, ok)
			assert.Equal(t, tt.wantGMT, result.GMT)
		})
	}
}

func TestDetectRejectsNonTimestamps(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hello",
		"12.34.56",
		"1640995200abc",
		"-1640995200",
		"+1640995200",
		"1640995200.",
		".123",
		"12.34",              // in numeric form but far below the epoch range
		"42",                 // small integer
		"999999999",          // just below the lower bound
		"99999999999",        // 11-digit seconds, past the upper bound
		"99999999999999999999", // longer than any plausible epoch
		"0xFF",
		"1 640 995 200",
	}

	for _, input := range inputs {
		_, ok := Detect(input, testSettings(0))
		assert.False(t, ok, "expected no detection for %q", input)
	}
}

func TestDetectRangeBoundaries(t *testing.T) {
	// Lower bound, 2001-09-09T01:46:40Z.
	result, ok := Detect("1000000000", testSettings(0))
	require.True(t, ok)
	assert.Equal(t, "2001-09-09 01:46:40", result.GMT)

	// Upper bound, 2099-12-31T23:59:59Z.
	result, ok = Detect("4102444799", testSettings(0))
	require.True(t, ok)
	assert.Equal(t, "2099-12-31 23:59:59", result.GMT)

	// One past the upper bound.
	_, ok = Detect("4102444800", testSettings(0))
	assert.False(t, ok)
}

func TestDetectUnitThreshold(t *testing.T) {
	// 13 digits reads as milliseconds.
	candidate, ok := Parse("1000000000000")
	require.True(t, ok)
	assert.Equal(t, UnitMillis, candidate.Unit)
	assert.Equal(t, int64(1000000000), candidate.Time.Unix())

	// 10 digits reads as seconds.
	candidate, ok = Parse("1640995200")
	require.True(t, ok)
	assert.Equal(t, UnitSeconds, candidate.Unit)

	// 12-digit values are milliseconds, but normalize to before the
	// accepted range (1973), so they are rejected as non-timestamps.
	_, ok = Parse("100000000000")
	assert.False(t, ok)
}

func TestDetectTrimsWhitespace(t *testing.T) {
	result, ok := Detect("  1640995200\n", testSettings(0))
	require.True(t, ok)
	assert.Equal(t, "1640995200", result.Input)
	assert.Equal(t, "2022-01-01 00:00:00", result.GMT)
}

func TestDetectIsIdempotent(t *testing.T) {
	settings := testSettings(3)

	first, ok := Detect("1640995200.123456", settings)
	require.True(t, ok)
	second, ok := Detect("1640995200.123456", settings)
	require.True(t, ok)

	assert.Equal(t, first, second)
}

func TestConvertDefaultsZone(t *testing.T) {
	candidate, ok := Parse("1640995200")
	require.True(t, ok)

	result := Convert(candidate, Settings{})
	assert.Equal(t, "VN", result.ZoneLabel)
	assert.Equal(t, "2022-01-01 07:00:00", result.Local)
}
