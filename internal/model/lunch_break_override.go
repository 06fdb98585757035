package model

import (
	"time"

	"github.com/google/uuid"
)

// LunchBreakOverride is one-to-one with a ScheduleAssignment.
// Extended=true means a 1.5h unpaid break instead of the default 1h,
// which subtracts 0.5 from the shift's default paid hours.
type LunchBreakOverride struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Extended   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Schedule *ScheduleAssignment `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}
