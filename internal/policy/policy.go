// Package policy computes the calendar-dependent values of a schedule
// assignment. All functions are pure: deterministic over (shift, date,
// override) with no store access, so they are unit-testable in isolation.
package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// EarlyStartTime is the start time applied on early-start weekdays.
const EarlyStartTime = "08:00:00"

var (
	oneHour  = decimal.NewFromInt(1)
	halfHour = decimal.NewFromFloat(0.5)
)

// IsEarlyStartDay reports whether the date falls on one of the two
// early-start weekdays, Wednesday and Saturday.
func IsEarlyStartDay(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Wednesday || wd == time.Saturday
}

// EffectiveStartTime returns 08:00:00 on Wednesday and Saturday, otherwise
// the shift's nominal start time (HH:MM:SS).
func EffectiveStartTime(shiftStart string, date time.Time) string {
	if IsEarlyStartDay(date) {
		return EarlyStartTime
	}
	return shiftStart
}

// EffectivePaidHours returns the shift's default paid hours, plus 1.0 on
// Wednesday and Saturday to compensate for the earlier start.
func EffectivePaidHours(defaultPaidHours decimal.Decimal, date time.Time) decimal.Decimal {
	if IsEarlyStartDay(date) {
		return defaultPaidHours.Add(oneHour)
	}
	return defaultPaidHours
}

// AdjustedPaidHours applies a lunch-break override to the shift's default
// paid hours: an extended (1.5h) break subtracts 0.5, the default (1h)
// break leaves them unchanged.
//
// This does not compose with the weekday bonus of EffectivePaidHours; the
// two are independent accessors.
func AdjustedPaidHours(defaultPaidHours decimal.Decimal, extended bool) decimal.Decimal {
	if extended {
		return defaultPaidHours.Sub(halfHour)
	}
	return defaultPaidHours
}

// FormatHours renders an hour value with exactly two fractional digits,
// the fixed-point form used in all serialized output.
func FormatHours(h decimal.Decimal) string {
	return h.StringFixed(2)
}
