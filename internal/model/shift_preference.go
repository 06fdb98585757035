package model

import (
	"time"

	"github.com/google/uuid"
)

// ShiftPreference is a non-binding preferred shift per employee per date.
// Purely advisory — never validated against assignments.
type ShiftPreference struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_preference_employee_date"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:idx_preference_employee_date"`
	PreferredShiftID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Employee       *User  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	PreferredShift *Shift `gorm:"foreignKey:PreferredShiftID;constraint:OnDelete:CASCADE"`
}
