// Package dates generates calendar dates for property-based testing.
//
// Dates are addressed as signed day counts from the Unix epoch
// (1970-01-01, day zero). Both entry points weight the resulting
// Source so that the interval endpoints are likely to be drawn:
// boundary dates are where date-handling code tends to break.
//
// Basic usage:
//
//	src := dates.WithDaysBetween(-365, 365)
//	r := gen.NewRand(0)
//	d := src.Next(r) // UTC midnight within a year of the epoch
package dates

import (
	"time"

	"github.com/lischenko/quicktheories/arg"
	"github.com/lischenko/quicktheories/gen"
)

// The representable range of day offsets from the epoch.
const (
	MinEpochDay int64 = -999_999_999
	MaxEpochDay int64 = 999_999_999
)

const secondsPerDay = 86_400

// OfEpochDay returns the UTC midnight instant of the date that is the
// given number of days from 1970-01-01. Negative offsets count
// backward from the epoch.
func OfEpochDay(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// EpochDay returns the day offset of t's calendar date, the inverse of
// OfEpochDay. Instants before the epoch floor toward the earlier day.
func EpochDay(t time.Time) int64 {
	sec := t.Unix()
	day := sec / secondsPerDay
	if sec%secondsPerDay < 0 {
		day--
	}
	return day
}

// WithDays returns a Source of dates inclusively spanning the epoch
// and the date daysFromEpoch days away, in either direction. The date
// at daysFromEpoch itself is weighted so it is likely to be produced.
//
// Panics with an *arg.InvalidArgumentError if daysFromEpoch lies
// outside [MinEpochDay, MaxEpochDay].
func WithDays(daysFromEpoch int64) gen.Source[time.Time] {
	checkEpochDay(daysFromEpoch)
	return gen.WeightWithValues(days(daysFromEpoch), OfEpochDay(daysFromEpoch))
}

// WithDaysBetween returns a Source of dates inclusively bounded by the
// dates at the two day offsets. Both endpoint dates are weighted so
// they are likely to be produced.
//
// Panics with an *arg.InvalidArgumentError if the offsets lie outside
// [MinEpochDay, MaxEpochDay] or if startInclusive exceeds
// endInclusive. The order is a contract, not a hint: reversed
// intervals are rejected, never swapped.
func WithDaysBetween(startInclusive, endInclusive int64) gen.Source[time.Time] {
	checkEpochDayInterval(startInclusive, endInclusive)
	checkOrdered(startInclusive, endInclusive)
	return gen.WeightWithValues(
		daysBetween(startInclusive, endInclusive),
		OfEpochDay(endInclusive),
		OfEpochDay(startInclusive),
	)
}

func checkEpochDay(daysFromEpoch int64) {
	arg.Check(MinEpochDay <= daysFromEpoch && daysFromEpoch <= MaxEpochDay,
		"the number of days from the epoch must be bounded between [%d, %d]; %d is outside of these bounds",
		MinEpochDay, MaxEpochDay, daysFromEpoch)
}

func checkEpochDayInterval(start, end int64) {
	arg.Check(MinEpochDay <= start && end <= MaxEpochDay,
		"the numbers of days from the epoch must be bounded between [%d, %d]; [%d, %d] is outside of these bounds",
		MinEpochDay, MaxEpochDay, start, end)
}

func checkOrdered(start, end int64) {
	arg.Check(start <= end,
		"cannot have the maximum day offset (%d) smaller than the minimum day offset (%d)",
		end, start)
}

// days and daysBetween build the unweighted date Source: a uniform
// epoch-day sampler mapped into time.Time, with the exact inverse
// declared so shrinking can walk a date back toward the epoch.

func days(daysFromEpoch int64) gen.Source[time.Time] {
	if daysFromEpoch < 0 {
		return daysBetween(daysFromEpoch, 0)
	}
	return daysBetween(0, daysFromEpoch)
}

func daysBetween(lo, hi int64) gen.Source[time.Time] {
	return gen.As(gen.Int64Range(lo, hi), OfEpochDay, EpochDay)
}
