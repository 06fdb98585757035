package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAssignment links one employee to one shift on one calendar date.
// The composite unique index is the last line of defense against concurrent
// creates for the same (employee, date) pair: exactly one write wins, the
// other surfaces as a duplicate-key rejection.
//
// Once Locked is true the record rejects further mutation; unlocking is not
// possible through the API.
type ScheduleAssignment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_assignment_employee_date"`
	ShiftID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Locked     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *User  `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Shift    *Shift `gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}
