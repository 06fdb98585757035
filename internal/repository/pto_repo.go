package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/model"
)

type PTORepository interface {
	Create(ctx context.Context, p *model.PTORequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PTORequest, error)
	List(ctx context.Context) ([]model.PTORequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.PTORequest, error)
	Update(ctx context.Context, p *model.PTORequest) error
	Delete(ctx context.Context, id uuid.UUID) error

	// HasApprovedTx is the consistency validator's cross-entity check; it runs
	// on the same transaction as the schedule write.
	HasApprovedTx(tx *gorm.DB, employeeID uuid.UUID, date time.Time) (bool, error)
}

type ptoRepo struct{ db *gorm.DB }

func NewPTORepository(db *gorm.DB) PTORepository { return &ptoRepo{db: db} }

func (r *ptoRepo) Create(ctx context.Context, p *model.PTORequest) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ptoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PTORequest, error) {
	var p model.PTORequest
	err := r.db.WithContext(ctx).Preload("Employee").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *ptoRepo) List(ctx context.Context) ([]model.PTORequest, error) {
	var out []model.PTORequest
	err := r.db.WithContext(ctx).Preload("Employee").Order("date ASC").Find(&out).Error
	return out, err
}

func (r *ptoRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.PTORequest, error) {
	var out []model.PTORequest
	err := r.db.WithContext(ctx).Preload("Employee").
		Where("employee_id = ?", employeeID).Order("date ASC").Find(&out).Error
	return out, err
}

func (r *ptoRepo) Update(ctx context.Context, p *model.PTORequest) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(p).Error
}

func (r *ptoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PTORequest{}, "id = ?", id).Error
}

func (r *ptoRepo) HasApprovedTx(tx *gorm.DB, employeeID uuid.UUID, date time.Time) (bool, error) {
	var p model.PTORequest
	err := tx.Where("employee_id = ? AND date = ? AND status = ?", employeeID, date, model.PTOApproved).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
