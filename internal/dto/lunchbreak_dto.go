package dto

type CreateLunchBreakRequest struct {
	ScheduleID string `json:"schedule_id" validate:"required,uuid"`
	Extended   bool   `json:"extended"`
}

type UpdateLunchBreakRequest struct {
	Extended *bool `json:"extended"`
}

// LunchBreakResponse nests the linked assignment. AdjustedPaidHours is the
// shift's default paid hours minus 0.5 when the break is extended — it does
// not include the weekday bonus of the schedule's effective_paid_hours.
type LunchBreakResponse struct {
	ID                string           `json:"id"`
	Schedule          ScheduleResponse `json:"schedule"`
	Extended          bool             `json:"extended"`
	AdjustedPaidHours string           `json:"adjusted_paid_hours"`
}
