package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/gorm"
)

type TaskTypeRepo interface {
	List(ctx context.Context) ([]model.TaskType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TaskType, error)
	Create(ctx context.Context, tt *model.TaskType) error
	Save(ctx context.Context, tt *model.TaskType) error
	// Delete removes the type; dependent tasks go with it through the
	// declared cascade.
	Delete(ctx context.Context, tt *model.TaskType) error
}

type taskTypeRepo struct{ db *gorm.DB }

func NewTaskTypeRepo(db *gorm.DB) TaskTypeRepo {
	return &taskTypeRepo{db: db}
}

func (r *taskTypeRepo) List(ctx context.Context) ([]model.TaskType, error) {
	var items []model.TaskType
	return items, r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
}

func (r *taskTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.TaskType, error) {
	var tt model.TaskType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tt).Error; err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *taskTypeRepo) Create(ctx context.Context, tt *model.TaskType) error {
	return r.db.WithContext(ctx).Create(tt).Error
}

func (r *taskTypeRepo) Save(ctx context.Context, tt *model.TaskType) error {
	return r.db.WithContext(ctx).Save(tt).Error
}

func (r *taskTypeRepo) Delete(ctx context.Context, tt *model.TaskType) error {
	return r.db.WithContext(ctx).Select("Tasks").Delete(tt).Error
}
