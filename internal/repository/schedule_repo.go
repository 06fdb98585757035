package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/model"
)

// ScheduleRepository persists schedule assignments. The *Tx variants run on a
// caller-supplied transaction handle so the consistency validator can re-check
// and write atomically.
type ScheduleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.ScheduleAssignment, error)
	List(ctx context.Context) ([]model.ScheduleAssignment, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ScheduleAssignment, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*model.ScheduleAssignment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateTx(tx *gorm.DB, a *model.ScheduleAssignment) error
	SaveTx(tx *gorm.DB, a *model.ScheduleAssignment) error
	ExistsForEmployeeAndDateTx(tx *gorm.DB, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) ScheduleRepository { return &scheduleRepo{db: db} }

func (r *scheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ScheduleAssignment, error) {
	var a model.ScheduleAssignment
	err := r.db.WithContext(ctx).Preload("Employee").Preload("Shift").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *scheduleRepo) List(ctx context.Context) ([]model.ScheduleAssignment, error) {
	var out []model.ScheduleAssignment
	err := r.db.WithContext(ctx).Preload("Employee").Preload("Shift").
		Order("date ASC, created_at ASC").Find(&out).Error
	return out, err
}

func (r *scheduleRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ScheduleAssignment, error) {
	var out []model.ScheduleAssignment
	err := r.db.WithContext(ctx).Preload("Employee").Preload("Shift").
		Where("employee_id = ?", employeeID).
		Order("date ASC").Find(&out).Error
	return out, err
}

func (r *scheduleRepo) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*model.ScheduleAssignment, error) {
	var a model.ScheduleAssignment
	err := r.db.WithContext(ctx).Preload("Shift").
		Where("employee_id = ? AND date = ?", employeeID, date).First(&a).Error
	return &a, err
}

func (r *scheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ScheduleAssignment{}, "id = ?", id).Error
}

func (r *scheduleRepo) CreateTx(tx *gorm.DB, a *model.ScheduleAssignment) error {
	return tx.Create(a).Error
}

func (r *scheduleRepo) SaveTx(tx *gorm.DB, a *model.ScheduleAssignment) error {
	// Omit associations: Employee/Shift are read-side preloads only.
	return tx.Omit("Employee", "Shift").Save(a).Error
}

func (r *scheduleRepo) ExistsForEmployeeAndDateTx(tx *gorm.DB, employeeID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	var a model.ScheduleAssignment
	q := tx.Where("employee_id = ? AND date = ?", employeeID, date)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
