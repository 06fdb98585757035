package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/repository"
)

const (
	shiftCacheKey = "shifts:all"
	shiftCacheTTL = time.Hour
)

// ShiftService manages the immutable shared shift templates. The list is
// read by every client on every schedule view, so it is served through a
// redis read-through cache invalidated on admin writes.
type ShiftService interface {
	Create(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ShiftResponse, error)
	List(ctx context.Context) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shiftService struct {
	repo repository.ShiftRepository
	rdb  *redis.Client
}

func NewShiftService(repo repository.ShiftRepository, rdb *redis.Client) ShiftService {
	return &shiftService{repo: repo, rdb: rdb}
}

func (s *shiftService) Create(ctx context.Context, req dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	start, err := normalizeTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if req.DefaultPaidHours.GreaterThan(req.DurationHours) {
		return nil, ErrPaidExceedsDuration
	}

	shift := &model.Shift{
		Name:             req.Name,
		StartTime:        start,
		EndTime:          end,
		DurationHours:    req.DurationHours,
		DefaultPaidHours: req.DefaultPaidHours,
	}
	if err := s.repo.Create(ctx, shift); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	resp := shiftToResponse(shift)
	return &resp, nil
}

func (s *shiftService) Get(ctx context.Context, id uuid.UUID) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := shiftToResponse(shift)
	return &resp, nil
}

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	// 1. Try the cache — best effort, fall through on any error
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, shiftCacheKey).Bytes(); err == nil {
			var resp []dto.ShiftResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	shifts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ShiftResponse, len(shifts))
	for i := range shifts {
		resp[i] = shiftToResponse(&shifts[i])
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, shiftCacheKey, b, shiftCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *shiftService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		shift.Name = req.Name
	}
	if req.StartTime != "" {
		start, err := normalizeTime(req.StartTime)
		if err != nil {
			return nil, err
		}
		shift.StartTime = start
	}
	if req.EndTime != "" {
		end, err := normalizeTime(req.EndTime)
		if err != nil {
			return nil, err
		}
		shift.EndTime = end
	}
	if req.DurationHours != nil {
		shift.DurationHours = *req.DurationHours
	}
	if req.DefaultPaidHours != nil {
		shift.DefaultPaidHours = *req.DefaultPaidHours
	}
	if shift.DefaultPaidHours.GreaterThan(shift.DurationHours) {
		return nil, ErrPaidExceedsDuration
	}

	if err := s.repo.Update(ctx, shift); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	resp := shiftToResponse(shift)
	return &resp, nil
}

func (s *shiftService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *shiftService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, shiftCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate shift cache")
	}
}
