package dto

import "github.com/shopspring/decimal"

type CreateShiftRequest struct {
	Name             string          `json:"name"               validate:"required,oneof=long first second off"`
	StartTime        string          `json:"start_time"         validate:"required"`
	EndTime          string          `json:"end_time"           validate:"required"`
	DurationHours    decimal.Decimal `json:"duration_hours"     validate:"required,min=0"`
	DefaultPaidHours decimal.Decimal `json:"default_paid_hours" validate:"min=0"`
}

type UpdateShiftRequest struct {
	Name             string           `json:"name"               validate:"omitempty,oneof=long first second off"`
	StartTime        string           `json:"start_time"`
	EndTime          string           `json:"end_time"`
	DurationHours    *decimal.Decimal `json:"duration_hours"`
	DefaultPaidHours *decimal.Decimal `json:"default_paid_hours"`
}

type ShiftResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"display_name"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	DurationHours    string `json:"duration_hours"`
	DefaultPaidHours string `json:"default_paid_hours"`
}
