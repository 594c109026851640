package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HiddenTaskRepo interface {
	// Upsert marks a task hidden for a viewer. Idempotent on the
	// (account, task) unique key.
	Upsert(ctx context.Context, accountID, taskID uuid.UUID) error
	// Exists reports whether a hide marker is already present.
	Exists(ctx context.Context, accountID, taskID uuid.UUID) (bool, error)
	// HiddenIDs returns the task ids hidden for a viewer.
	HiddenIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
}

type hiddenTaskRepo struct{ db *gorm.DB }

func NewHiddenTaskRepo(db *gorm.DB) HiddenTaskRepo {
	return &hiddenTaskRepo{db: db}
}

func (r *hiddenTaskRepo) Upsert(ctx context.Context, accountID, taskID uuid.UUID) error {
	h := model.HiddenTask{AccountID: accountID, TaskID: taskID, IsHidden: true}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}, {Name: "task_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"is_hidden": true}),
	}).Create(&h).Error
}

func (r *hiddenTaskRepo) Exists(ctx context.Context, accountID, taskID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.HiddenTask{}).
		Where("account_id = ? AND task_id = ?", accountID, taskID).
		Count(&n).Error
	return n > 0, err
}

func (r *hiddenTaskRepo) HiddenIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.HiddenTask{}).
		Where("account_id = ? AND is_hidden = ?", accountID, true).
		Pluck("task_id", &ids).Error
	return ids, err
}
