package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/model"
)

type LunchBreakRepository interface {
	Create(ctx context.Context, o *model.LunchBreakOverride) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LunchBreakOverride, error)
	List(ctx context.Context) ([]model.LunchBreakOverride, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.LunchBreakOverride, error)
	Update(ctx context.Context, o *model.LunchBreakOverride) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForSchedule(ctx context.Context, scheduleID uuid.UUID) (bool, error)
}

type lunchBreakRepo struct{ db *gorm.DB }

func NewLunchBreakRepository(db *gorm.DB) LunchBreakRepository { return &lunchBreakRepo{db: db} }

func (r *lunchBreakRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Schedule").Preload("Schedule.Employee").Preload("Schedule.Shift")
}

func (r *lunchBreakRepo) Create(ctx context.Context, o *model.LunchBreakOverride) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *lunchBreakRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.LunchBreakOverride, error) {
	var o model.LunchBreakOverride
	err := r.preloaded(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *lunchBreakRepo) List(ctx context.Context) ([]model.LunchBreakOverride, error) {
	var out []model.LunchBreakOverride
	err := r.preloaded(ctx).Order("created_at ASC").Find(&out).Error
	return out, err
}

// ListByEmployee scopes through the linked assignment's employee.
func (r *lunchBreakRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.LunchBreakOverride, error) {
	var out []model.LunchBreakOverride
	err := r.preloaded(ctx).
		Joins("JOIN schedule_assignments ON schedule_assignments.id = lunch_break_overrides.schedule_id").
		Where("schedule_assignments.employee_id = ?", employeeID).
		Order("lunch_break_overrides.created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *lunchBreakRepo) Update(ctx context.Context, o *model.LunchBreakOverride) error {
	return r.db.WithContext(ctx).Omit("Schedule").Save(o).Error
}

func (r *lunchBreakRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LunchBreakOverride{}, "id = ?", id).Error
}

func (r *lunchBreakRepo) ExistsForSchedule(ctx context.Context, scheduleID uuid.UUID) (bool, error) {
	var o model.LunchBreakOverride
	err := r.db.WithContext(ctx).Where("schedule_id = ?", scheduleID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
