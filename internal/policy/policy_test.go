package policy_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shiftdesk/internal/policy"
)

// 2026-08-24 is a Monday.
func date(day int) time.Time {
	return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveStartTime(t *testing.T) {
	tests := []struct {
		name       string
		shiftStart string
		date       time.Time
		want       string
	}{
		{"monday keeps nominal start", "09:00:00", date(24), "09:00:00"},
		{"tuesday keeps nominal start", "09:00:00", date(25), "09:00:00"},
		{"wednesday starts early", "09:00:00", date(26), "08:00:00"},
		{"saturday starts early", "16:00:00", date(29), "08:00:00"},
		{"sunday keeps nominal start", "16:00:00", date(30), "16:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.EffectiveStartTime(tt.shiftStart, tt.date))
		})
	}
}

func TestEffectivePaidHours(t *testing.T) {
	base := decimal.RequireFromString("6.5")

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"tuesday unmodified", date(25), "6.50"},
		{"wednesday adds one hour", date(26), "7.50"},
		{"saturday adds one hour", date(29), "7.50"},
		{"sunday unmodified", date(30), "6.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.EffectivePaidHours(base, tt.date)
			assert.Equal(t, tt.want, policy.FormatHours(got))
		})
	}
}

func TestEffectivePaidHoursAppliesToAllShiftTypes(t *testing.T) {
	// The weekday bonus is blind to the shift — even a zero-hour "off"
	// template gets it.
	zero := decimal.Zero
	assert.Equal(t, "1.00", policy.FormatHours(policy.EffectivePaidHours(zero, date(26))))
}

func TestAdjustedPaidHours(t *testing.T) {
	base := decimal.RequireFromString("6.5")

	assert.Equal(t, "6.50", policy.FormatHours(policy.AdjustedPaidHours(base, false)))
	assert.Equal(t, "6.00", policy.FormatHours(policy.AdjustedPaidHours(base, true)))
}

func TestAdjustedPaidHoursIgnoresWeekday(t *testing.T) {
	// Lunch adjustment and the weekday bonus are independent accessors;
	// the adjustment never includes the +1.00.
	base := decimal.RequireFromString("6.5")
	got := policy.AdjustedPaidHours(base, true)
	assert.Equal(t, "6.00", policy.FormatHours(got))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "7.00", policy.FormatHours(decimal.NewFromInt(7)))
	assert.Equal(t, "13.50", policy.FormatHours(decimal.RequireFromString("13.5")))
	assert.Equal(t, "0.00", policy.FormatHours(decimal.Zero))
}
