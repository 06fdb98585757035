package service

import (
	"time"

	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/policy"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string into a UTC midnight value so that
// date equality in the store and weekday computation are unambiguous.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d.UTC(), nil
}

// normalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeTime(s string) (string, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", ErrInvalidTime
}

func userToResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func shiftToResponse(s *model.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:               s.ID.String(),
		Name:             s.Name,
		DisplayName:      s.DisplayName(),
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		DurationHours:    policy.FormatHours(s.DurationHours),
		DefaultPaidHours: policy.FormatHours(s.DefaultPaidHours),
	}
}

// scheduleToResponse enriches the persisted assignment with the policy
// engine's effective values. Employee and Shift must be preloaded.
func scheduleToResponse(a *model.ScheduleAssignment) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:                 a.ID.String(),
		Employee:           userToResponse(a.Employee),
		Date:               a.Date.Format(dateLayout),
		Shift:              shiftToResponse(a.Shift),
		Locked:             a.Locked,
		EffectiveStartTime: policy.EffectiveStartTime(a.Shift.StartTime, a.Date),
		EffectivePaidHours: policy.FormatHours(policy.EffectivePaidHours(a.Shift.DefaultPaidHours, a.Date)),
	}
}

func ptoToResponse(p *model.PTORequest) dto.PTOResponse {
	return dto.PTOResponse{
		ID:       p.ID.String(),
		Employee: userToResponse(p.Employee),
		Date:     p.Date.Format(dateLayout),
		Reason:   p.Reason,
		Status:   p.Status,
	}
}

func lunchBreakToResponse(o *model.LunchBreakOverride) dto.LunchBreakResponse {
	return dto.LunchBreakResponse{
		ID:                o.ID.String(),
		Schedule:          scheduleToResponse(o.Schedule),
		Extended:          o.Extended,
		AdjustedPaidHours: policy.FormatHours(policy.AdjustedPaidHours(o.Schedule.Shift.DefaultPaidHours, o.Extended)),
	}
}

func preferenceToResponse(p *model.ShiftPreference) dto.PreferenceResponse {
	return dto.PreferenceResponse{
		ID:             p.ID.String(),
		Employee:       userToResponse(p.Employee),
		Date:           p.Date.Format(dateLayout),
		PreferredShift: shiftToResponse(p.PreferredShift),
	}
}
