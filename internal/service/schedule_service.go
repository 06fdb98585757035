package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/authz"
	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/repository"
)

// ScheduleService owns schedule assignments and the consistency rules that
// gate every write: one assignment per (employee, date), no assignment on a
// date with approved PTO, no mutation of a locked record. The checks and the
// write run in one transaction so a concurrent PTO approval and assignment
// create cannot both pass on a stale read; the composite unique index backs
// the duplicate rule under races.
type ScheduleService interface {
	Create(ctx context.Context, caller authz.Identity, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.ScheduleResponse, error)
	List(ctx context.Context, caller authz.Identity) ([]dto.ScheduleResponse, error)
	Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error
}

type scheduleService struct {
	db        *gorm.DB
	repo      repository.ScheduleRepository
	ptoRepo   repository.PTORepository
	userRepo  repository.UserRepository
	shiftRepo repository.ShiftRepository
}

func NewScheduleService(
	db *gorm.DB,
	repo repository.ScheduleRepository,
	ptoRepo repository.PTORepository,
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
) ScheduleService {
	return &scheduleService{
		db:        db,
		repo:      repo,
		ptoRepo:   ptoRepo,
		userRepo:  userRepo,
		shiftRepo: shiftRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// validate is the consistency gate. It runs on the write transaction:
// an approved PTO request for (employee, date) rejects the write regardless
// of shift type, and a second assignment for the pair rejects unless it is
// the record being updated.
func (s *scheduleService) validate(tx *gorm.DB, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) error {
	hasPTO, err := s.ptoRepo.HasApprovedTx(tx, employeeID, date)
	if err != nil {
		return err
	}
	if hasPTO {
		return ErrPTOConflict
	}

	dup, err := s.repo.ExistsForEmployeeAndDateTx(tx, employeeID, date, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateAssignment
	}
	return nil
}

func (s *scheduleService) Create(ctx context.Context, caller authz.Identity, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, ErrBadReference
	}
	if !authz.CanAccess(caller, employeeID) {
		return nil, ErrForbidden
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return nil, ErrBadReference
	}
	if _, err := s.userRepo.FindByID(ctx, employeeID); err != nil {
		return nil, ErrBadReference
	}
	if _, err := s.shiftRepo.FindByID(ctx, shiftID); err != nil {
		return nil, ErrBadReference
	}

	assignment := &model.ScheduleAssignment{
		EmployeeID: employeeID,
		Date:       date,
		ShiftID:    shiftID,
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.validate(tx, employeeID, date, uuid.Nil); err != nil {
			return err
		}
		if err := s.repo.CreateTx(tx, assignment); err != nil {
			// Unique index is the last line of defense under concurrency.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateAssignment
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, assignment.ID)
	if err != nil {
		return nil, err
	}
	resp := scheduleToResponse(created)
	return &resp, nil
}

func (s *scheduleService) Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.ScheduleResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	// Scoped-out records look exactly like missing ones.
	if !authz.CanAccess(caller, a.EmployeeID) {
		return nil, ErrNotFound
	}
	resp := scheduleToResponse(a)
	return &resp, nil
}

func (s *scheduleService) List(ctx context.Context, caller authz.Identity) ([]dto.ScheduleResponse, error) {
	var (
		assignments []model.ScheduleAssignment
		err         error
	)
	if caller.IsAdmin() {
		assignments, err = s.repo.List(ctx)
	} else {
		assignments, err = s.repo.ListByEmployee(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ScheduleResponse, len(assignments))
	for i := range assignments {
		resp[i] = scheduleToResponse(&assignments[i])
	}
	return resp, nil
}

func (s *scheduleService) Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, a.EmployeeID) {
		return nil, ErrNotFound
	}

	if a.Locked {
		if req.Locked != nil && !*req.Locked {
			return nil, ErrCannotUnlock
		}
		return nil, ErrAssignmentLocked
	}

	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return nil, ErrBadReference
		}
		// Reassigning to another employee needs access to the target too.
		if !authz.CanAccess(caller, employeeID) {
			return nil, ErrForbidden
		}
		if _, err := s.userRepo.FindByID(ctx, employeeID); err != nil {
			return nil, ErrBadReference
		}
		a.EmployeeID = employeeID
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		a.Date = date
	}
	if req.ShiftID != "" {
		shiftID, err := uuid.Parse(req.ShiftID)
		if err != nil {
			return nil, ErrBadReference
		}
		if _, err := s.shiftRepo.FindByID(ctx, shiftID); err != nil {
			return nil, ErrBadReference
		}
		a.ShiftID = shiftID
	}
	if req.Locked != nil && *req.Locked {
		a.Locked = true
	}

	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.validate(tx, a.EmployeeID, a.Date, a.ID); err != nil {
			return err
		}
		if err := s.repo.SaveTx(tx, a); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateAssignment
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	resp := scheduleToResponse(updated)
	return &resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !authz.CanAccess(caller, a.EmployeeID) {
		return ErrNotFound
	}
	if a.Locked {
		return ErrAssignmentLocked
	}
	return s.repo.Delete(ctx, id)
}
