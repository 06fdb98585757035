package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shift names — immutable reference templates shared by many assignments.
const (
	ShiftLong   = "long"
	ShiftFirst  = "first"
	ShiftSecond = "second"
	ShiftOff    = "off"
)

// Shift is a named template with nominal times and hours.
// DurationHours is the wall-clock span including break;
// DefaultPaidHours is the compensated span and is always <= DurationHours.
type Shift struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string          `gorm:"type:varchar(10);not null"`
	StartTime        string          `gorm:"type:varchar(8);not null"` // HH:MM:SS
	EndTime          string          `gorm:"type:varchar(8);not null"`
	DurationHours    decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	DefaultPaidHours decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var shiftDisplayNames = map[string]string{
	ShiftLong:   "Long Shift (09:00–22:30)",
	ShiftFirst:  "First Shift (09:00–16:00)",
	ShiftSecond: "Second Shift (16:00–22:30)",
	ShiftOff:    "Day Off",
}

// DisplayName returns the human-readable label for the shift name.
func (s *Shift) DisplayName() string {
	if d, ok := shiftDisplayNames[s.Name]; ok {
		return d
	}
	return s.Name
}
