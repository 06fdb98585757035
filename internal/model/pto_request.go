package model

import (
	"time"

	"github.com/google/uuid"
)

// PTO request lifecycle. Transitions out of "pending" are administrative
// actions and terminal.
const (
	PTOPending  = "pending"
	PTOApproved = "approved"
	PTODenied   = "denied"
)

// PTORequest is a paid-time-off request for one employee on one date.
// An approved request blocks schedule-assignment writes for that date.
// DecidedBy / DecidedAt record which admin resolved the request and when.
type PTORequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_pto_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_pto_employee_date"`
	Reason     string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(10);not null;default:'pending'"`
	DecidedBy  *uuid.UUID `gorm:"type:uuid"`
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *User `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}
