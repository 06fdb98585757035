package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/authz"
	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/repository"
)

// LunchBreakService manages per-assignment lunch overrides. Ownership is
// inherited from the linked assignment's employee.
type LunchBreakService interface {
	Create(ctx context.Context, caller authz.Identity, req dto.CreateLunchBreakRequest) (*dto.LunchBreakResponse, error)
	Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.LunchBreakResponse, error)
	List(ctx context.Context, caller authz.Identity) ([]dto.LunchBreakResponse, error)
	Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdateLunchBreakRequest) (*dto.LunchBreakResponse, error)
	Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error
}

type lunchBreakService struct {
	repo         repository.LunchBreakRepository
	scheduleRepo repository.ScheduleRepository
}

func NewLunchBreakService(repo repository.LunchBreakRepository, scheduleRepo repository.ScheduleRepository) LunchBreakService {
	return &lunchBreakService{repo: repo, scheduleRepo: scheduleRepo}
}

func (s *lunchBreakService) Create(ctx context.Context, caller authz.Identity, req dto.CreateLunchBreakRequest) (*dto.LunchBreakResponse, error) {
	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, ErrBadReference
	}
	schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, ErrBadReference
	}
	if !authz.CanAccess(caller, schedule.EmployeeID) {
		return nil, ErrForbidden
	}

	if exists, err := s.repo.ExistsForSchedule(ctx, scheduleID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateLunchBreak
	}

	override := &model.LunchBreakOverride{
		ScheduleID: scheduleID,
		Extended:   req.Extended,
	}
	if err := s.repo.Create(ctx, override); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLunchBreak
		}
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, override.ID)
	if err != nil {
		return nil, err
	}
	resp := lunchBreakToResponse(created)
	return &resp, nil
}

func (s *lunchBreakService) Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.LunchBreakResponse, error) {
	override, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, override.Schedule.EmployeeID) {
		return nil, ErrNotFound
	}
	resp := lunchBreakToResponse(override)
	return &resp, nil
}

func (s *lunchBreakService) List(ctx context.Context, caller authz.Identity) ([]dto.LunchBreakResponse, error) {
	var (
		overrides []model.LunchBreakOverride
		err       error
	)
	if caller.IsAdmin() {
		overrides, err = s.repo.List(ctx)
	} else {
		overrides, err = s.repo.ListByEmployee(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LunchBreakResponse, len(overrides))
	for i := range overrides {
		resp[i] = lunchBreakToResponse(&overrides[i])
	}
	return resp, nil
}

func (s *lunchBreakService) Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdateLunchBreakRequest) (*dto.LunchBreakResponse, error) {
	override, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, override.Schedule.EmployeeID) {
		return nil, ErrNotFound
	}

	if req.Extended != nil {
		override.Extended = *req.Extended
	}
	if err := s.repo.Update(ctx, override); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, override.ID)
	if err != nil {
		return nil, err
	}
	resp := lunchBreakToResponse(updated)
	return &resp, nil
}

func (s *lunchBreakService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	override, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !authz.CanAccess(caller, override.Schedule.EmployeeID) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
