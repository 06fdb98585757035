package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/model"
)

type PreferenceRepository interface {
	Create(ctx context.Context, p *model.ShiftPreference) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ShiftPreference, error)
	List(ctx context.Context) ([]model.ShiftPreference, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ShiftPreference, error)
	Update(ctx context.Context, p *model.ShiftPreference) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
}

type preferenceRepo struct{ db *gorm.DB }

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository { return &preferenceRepo{db: db} }

func (r *preferenceRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Employee").Preload("PreferredShift")
}

func (r *preferenceRepo) Create(ctx context.Context, p *model.ShiftPreference) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *preferenceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ShiftPreference, error) {
	var p model.ShiftPreference
	err := r.preloaded(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *preferenceRepo) List(ctx context.Context) ([]model.ShiftPreference, error) {
	var out []model.ShiftPreference
	err := r.preloaded(ctx).Order("date ASC").Find(&out).Error
	return out, err
}

func (r *preferenceRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ShiftPreference, error) {
	var out []model.ShiftPreference
	err := r.preloaded(ctx).Where("employee_id = ?", employeeID).Order("date ASC").Find(&out).Error
	return out, err
}

func (r *preferenceRepo) Update(ctx context.Context, p *model.ShiftPreference) error {
	return r.db.WithContext(ctx).Omit("Employee", "PreferredShift").Save(p).Error
}

func (r *preferenceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ShiftPreference{}, "id = ?", id).Error
}

func (r *preferenceRepo) ExistsForEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	var p model.ShiftPreference
	q := r.db.WithContext(ctx).Where("employee_id = ? AND date = ?", employeeID, date)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
