package compiler

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MinorUnits converts a major-unit amount to minor units: the amount times
// 100, rounded half away from zero. The arithmetic is exact decimal, so
// 1.005 becomes 101 and 12.345 becomes 1235.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// microsPerMinor converts minor units to the micro units used by Google,
// X and Snapchat.
const microsPerMinor = 10_000

// MaxMinorUnits is the largest budget, in minor units, whose micro amount
// still fits an int64.
const MaxMinorUnits = math.MaxInt64 / microsPerMinor

// exceedsMaxMinor reports whether amount rounds to more than MaxMinorUnits.
// The comparison stays in decimal so it never wraps.
func exceedsMaxMinor(amount decimal.Decimal) bool {
	return amount.Shift(2).Round(0).GreaterThan(decimal.NewFromInt(MaxMinorUnits))
}

func microsFromMinor(minor int64) int64 {
	return minor * microsPerMinor
}

func minorFromMicros(micros int64) (int64, bool) {
	return micros / microsPerMinor, micros%microsPerMinor == 0
}

// majorFromMinor renders minor units as a major-unit decimal string with
// two fractional digits.
func majorFromMinor(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func minorFromMajor(major string) (int64, bool) {
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, false
	}
	shifted := d.Shift(2)
	return shifted.IntPart(), shifted.IsInteger()
}

const (
	layoutRFC3339 = time.RFC3339
	layoutTikTok  = "2006-01-02 15:04:05"
	layoutGoogle  = "2006-01-02 15:04:05"
)

func formatTime(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}

func parseWindow(start, end, layout string) (time.Time, *time.Time, error) {
	s, err := time.ParseInLocation(layout, start, time.UTC)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end == "" {
		return s, nil, nil
	}
	e, err := time.ParseInLocation(layout, end, time.UTC)
	if err != nil {
		return time.Time{}, nil, err
	}
	return s, &e, nil
}

// truncate cuts s to at most n runes. n <= 0 leaves s unchanged.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
