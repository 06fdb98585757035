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

// PreferenceService manages advisory shift preferences — unique per
// (employee, date), never validated against assignments.
type PreferenceService interface {
	Create(ctx context.Context, caller authz.Identity, req dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error)
	Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.PreferenceResponse, error)
	List(ctx context.Context, caller authz.Identity) ([]dto.PreferenceResponse, error)
	Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
	Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error
}

type preferenceService struct {
	repo      repository.PreferenceRepository
	userRepo  repository.UserRepository
	shiftRepo repository.ShiftRepository
}

func NewPreferenceService(
	repo repository.PreferenceRepository,
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
) PreferenceService {
	return &preferenceService{repo: repo, userRepo: userRepo, shiftRepo: shiftRepo}
}

func (s *preferenceService) Create(ctx context.Context, caller authz.Identity, req dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error) {
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
	shiftID, err := uuid.Parse(req.PreferredShiftID)
	if err != nil {
		return nil, ErrBadReference
	}
	if _, err := s.userRepo.FindByID(ctx, employeeID); err != nil {
		return nil, ErrBadReference
	}
	if _, err := s.shiftRepo.FindByID(ctx, shiftID); err != nil {
		return nil, ErrBadReference
	}

	if dup, err := s.repo.ExistsForEmployeeAndDate(ctx, employeeID, date, uuid.Nil); err != nil {
		return nil, err
	} else if dup {
		return nil, ErrDuplicatePreference
	}

	pref := &model.ShiftPreference{
		EmployeeID:       employeeID,
		Date:             date,
		PreferredShiftID: shiftID,
	}
	if err := s.repo.Create(ctx, pref); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePreference
		}
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, pref.ID)
	if err != nil {
		return nil, err
	}
	resp := preferenceToResponse(created)
	return &resp, nil
}

func (s *preferenceService) Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*dto.PreferenceResponse, error) {
	pref, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, pref.EmployeeID) {
		return nil, ErrNotFound
	}
	resp := preferenceToResponse(pref)
	return &resp, nil
}

func (s *preferenceService) List(ctx context.Context, caller authz.Identity) ([]dto.PreferenceResponse, error) {
	var (
		prefs []model.ShiftPreference
		err   error
	)
	if caller.IsAdmin() {
		prefs, err = s.repo.List(ctx)
	} else {
		prefs, err = s.repo.ListByEmployee(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PreferenceResponse, len(prefs))
	for i := range prefs {
		resp[i] = preferenceToResponse(&prefs[i])
	}
	return resp, nil
}

func (s *preferenceService) Update(ctx context.Context, caller authz.Identity, id uuid.UUID, req dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	pref, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !authz.CanAccess(caller, pref.EmployeeID) {
		return nil, ErrNotFound
	}

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		if dup, err := s.repo.ExistsForEmployeeAndDate(ctx, pref.EmployeeID, date, pref.ID); err != nil {
			return nil, err
		} else if dup {
			return nil, ErrDuplicatePreference
		}
		pref.Date = date
	}
	if req.PreferredShiftID != "" {
		shiftID, err := uuid.Parse(req.PreferredShiftID)
		if err != nil {
			return nil, ErrBadReference
		}
		if _, err := s.shiftRepo.FindByID(ctx, shiftID); err != nil {
			return nil, ErrBadReference
		}
		pref.PreferredShiftID = shiftID
	}

	if err := s.repo.Update(ctx, pref); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePreference
		}
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, pref.ID)
	if err != nil {
		return nil, err
	}
	resp := preferenceToResponse(updated)
	return &resp, nil
}

func (s *preferenceService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	pref, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !authz.CanAccess(caller, pref.EmployeeID) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
