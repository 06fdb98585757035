package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shiftdesk/internal/model"
)

type ShiftRepository interface {
	Create(ctx context.Context, s *model.Shift) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	List(ctx context.Context) ([]model.Shift, error)
	Update(ctx context.Context, s *model.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type shiftRepo struct{ db *gorm.DB }

func NewShiftRepository(db *gorm.DB) ShiftRepository { return &shiftRepo{db: db} }

func (r *shiftRepo) Create(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *shiftRepo) List(ctx context.Context) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).Order("start_time ASC, name ASC").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Update(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, "id = ?", id).Error
}
