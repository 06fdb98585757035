package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"shiftdesk/internal/authz"
	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/repository"
)

// PTOService manages PTO requests. Status always starts at "pending"; only
// admins may resolve a request, and only pending → approved|denied. Approval
// blocks future assignment writes for that date but does not touch an
// already-existing conflicting assignment — the collision is logged instead.
type PTOService interface {
	Create(ctx context.Context, caller authz.Identity, req dto.CreatePTORequest) (*dto.PTOResponse, error)
	Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.PTOResponse, error)
	List(ctx context.Context, caller authz.Identity) ([]dto.PTOResponse, error)
	Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdatePTORequest) (*dto.PTOResponse, error)
	Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error
}

type ptoService struct {
	repo         repository.PTORepository
	userRepo     repository.UserRepository
	scheduleRepo repository.ScheduleRepository
}

func NewPTOService(
	repo repository.PTORepository,
	userRepo repository.UserRepository,
	scheduleRepo repository.ScheduleRepository,
) PTOService {
	return &ptoService{repo: repo, userRepo: userRepo, scheduleRepo: scheduleRepo}
}

func (s *ptoService) Create(ctx context.Context, caller authz.Identity, req dto.CreatePTORequest) (*dto.PTOResponse, error) {
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
	if _, err := s.userRepo.FindByID(ctx, employeeID); err != nil {
		return nil, ErrBadReference
	}

	pto := &model.PTORequest{
		EmployeeID: employeeID,
		Date:       date,
		Reason:     req.Reason,
		Status:     model.PTOPending,
	}
	if err := s.repo.Create(ctx, pto); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePTO
		}
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, pto.ID)
	if err != nil {
		return nil, err
	}
	resp := ptoToResponse(created)
	return &resp, nil
}

func (s *ptoService) Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.PTOResponse, error) {
	pto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, pto.EmployeeID) {
		return nil, ErrNotFound
	}
	resp := ptoToResponse(pto)
	return &resp, nil
}

func (s *ptoService) List(ctx context.Context, caller authz.Identity) ([]dto.PTOResponse, error) {
	var (
		requests []model.PTORequest
		err      error
	)
	if caller.IsAdmin() {
		requests, err = s.repo.List(ctx)
	} else {
		requests, err = s.repo.ListByEmployee(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PTOResponse, len(requests))
	for i := range requests {
		resp[i] = ptoToResponse(&requests[i])
	}
	return resp, nil
}

func (s *ptoService) Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdatePTORequest) (*dto.PTOResponse, error) {
	pto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, pto.EmployeeID) {
		return nil, ErrNotFound
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		pto.Date = date
	}
	if req.Reason != nil {
		pto.Reason = *req.Reason
	}

	if req.Status != "" && req.Status != pto.Status {
		if !caller.IsAdmin() {
			return nil, ErrStatusChangeForbidden
		}
		if pto.Status != model.PTOPending ||
			(req.Status != model.PTOApproved && req.Status != model.PTODenied) {
			return nil, ErrInvalidPTOTransition
		}
		now := time.Now()
		pto.Status = req.Status
		pto.DecidedBy = &caller.UserID
		pto.DecidedAt = &now

		if req.Status == model.PTOApproved {
			s.warnOnExistingAssignment(ctx, pto)
		}
	}

	if err := s.repo.Update(ctx, pto); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePTO
		}
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, pto.ID)
	if err != nil {
		return nil, err
	}
	resp := ptoToResponse(updated)
	return &resp, nil
}

func (s *ptoService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	pto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !authz.CanAccess(caller, pto.EmployeeID) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// warnOnExistingAssignment surfaces the known integrity gap: approving PTO
// does not delete a pre-existing assignment on that date, only future writes
// are blocked. The collision is logged so operators can reconcile manually.
func (s *ptoService) warnOnExistingAssignment(ctx context.Context, pto *model.PTORequest) {
	a, err := s.scheduleRepo.FindByEmployeeAndDate(ctx, pto.EmployeeID, pto.Date)
	if err != nil {
		return
	}
	shiftName := ""
	if a.Shift != nil {
		shiftName = a.Shift.Name
	}
	log.Warn().
		Str("employee_id", pto.EmployeeID.String()).
		Str("date", pto.Date.Format(dateLayout)).
		Str("assignment_id", a.ID.String()).
		Str("shift", shiftName).
		Msg("PTO approved on a date that already has a schedule assignment")
}
