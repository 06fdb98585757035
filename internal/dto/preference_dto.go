package dto

type CreatePreferenceRequest struct {
	EmployeeID       string `json:"employee_id"        validate:"required,uuid"`
	Date             string `json:"date"               validate:"required"`
	PreferredShiftID string `json:"preferred_shift_id" validate:"required,uuid"`
}

type UpdatePreferenceRequest struct {
	Date             string `json:"date"`
	PreferredShiftID string `json:"preferred_shift_id" validate:"omitempty,uuid"`
}

type PreferenceResponse struct {
	ID             string        `json:"id"`
	Employee       UserResponse  `json:"employee"`
	Date           string        `json:"date"`
	PreferredShift ShiftResponse `json:"preferred_shift"`
}
