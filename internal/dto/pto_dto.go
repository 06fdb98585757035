package dto

type CreatePTORequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Date       string `json:"date"        validate:"required"`
	Reason     string `json:"reason"`
}

// Status changes are admin-only and restricted to pending → approved|denied.
type UpdatePTORequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason"`
	Status string  `json:"status" validate:"omitempty,oneof=pending approved denied"`
}

type PTOResponse struct {
	ID       string       `json:"id"`
	Employee UserResponse `json:"employee"`
	Date     string       `json:"date"`
	Reason   string       `json:"reason"`
	Status   string       `json:"status"`
}
