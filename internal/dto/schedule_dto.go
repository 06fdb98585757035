package dto

type CreateScheduleRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required"` // YYYY-MM-DD
	ShiftID    string `json:"shift_id"    validate:"required,uuid"`
}

// UpdateScheduleRequest carries partial updates; nil / empty fields are left
// untouched. Locked may only transition false → true.
type UpdateScheduleRequest struct {
	EmployeeID string `json:"employee_id" validate:"omitempty,uuid"`
	Date       string `json:"date"`
	ShiftID    string `json:"shift_id"    validate:"omitempty,uuid"`
	Locked     *bool  `json:"locked"`
}

// ScheduleResponse nests the referenced employee and shift and carries the
// policy-computed effective values.
type ScheduleResponse struct {
	ID                 string        `json:"id"`
	Employee           UserResponse  `json:"employee"`
	Date               string        `json:"date"`
	Shift              ShiftResponse `json:"shift"`
	Locked             bool          `json:"locked"`
	EffectiveStartTime string        `json:"effective_start_time"` // HH:MM:SS
	EffectivePaidHours string        `json:"effective_paid_hours"` // two decimals
}
