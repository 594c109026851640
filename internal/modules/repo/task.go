package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskFilter narrows task queries. Zero values mean "no constraint":
// an empty Month matches all months, a nil Owner matches all owners and
// an empty Exclude set excludes nothing.
type TaskFilter struct {
	TaskTypeID uuid.UUID
	Month      string
	Owner      *uuid.UUID
	Exclude    []uuid.UUID
}

// DayTotals is the aggregate over a filtered task set: one sum per day
// column plus the sum of the derived totals.
type DayTotals struct {
	Jours [model.DaysInRow]int `json:"jours"`
	Total int                  `json:"total"`
}

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	Save(ctx context.Context, t *model.Task) error

	// GetActive loads a non-deleted task, optionally scoped to an owner.
	// A missing row and an out-of-scope row are the same error.
	GetActive(ctx context.Context, taskID uuid.UUID, owner *uuid.UUID) (*model.Task, error)
	// GetDeleted loads a soft-deleted task.
	GetDeleted(ctx context.Context, taskID uuid.UUID) (*model.Task, error)

	ListActive(ctx context.Context, f TaskFilter) ([]model.Task, error)
	SumActive(ctx context.Context, f TaskFilter) (DayTotals, error)

	// ListAllDeleted returns every soft-deleted task, newest update first.
	ListAllDeleted(ctx context.Context) ([]model.Task, error)
	// ListAllActive returns every non-deleted task not in the exclude set,
	// newest creation first.
	ListAllActive(ctx context.Context, exclude []uuid.UUID) ([]model.Task, error)

	// SoftDelete marks the task deleted and removes the owner's hide
	// markers for it in one transaction.
	SoftDelete(ctx context.Context, t *model.Task, owner uuid.UUID) error
	// HardDelete removes an active row permanently. No audit record.
	HardDelete(ctx context.Context, t *model.Task) error
	// Restore flips a soft-deleted task back to active and appends an
	// UPDATE audit record in one transaction.
	Restore(ctx context.Context, t *model.Task, actor uuid.UUID) error
	// Purge removes a soft-deleted row permanently and appends a DELETE
	// audit record with a nil task reference in one transaction.
	Purge(ctx context.Context, t *model.Task, actor uuid.UUID, snap model.TaskSnapshot) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) Save(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *taskRepo) GetActive(ctx context.Context, taskID uuid.UUID, owner *uuid.UUID) (*model.Task, error) {
	q := r.db.WithContext(ctx).Preload("TaskType").Where("id = ? AND is_deleted = ?", taskID, false)
	if owner != nil {
		q = q.Where("created_by = ?", *owner)
	}
	var t model.Task
	if err := q.First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) GetDeleted(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Preload("TaskType").
		Where("id = ? AND is_deleted = ?", taskID, true).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func applyFilter(q *gorm.DB, f TaskFilter) *gorm.DB {
	q = q.Where("task_type_id = ? AND is_deleted = ?", f.TaskTypeID, false)
	if f.Month != "" {
		q = q.Where("date = ?", f.Month)
	}
	if f.Owner != nil {
		q = q.Where("created_by = ?", *f.Owner)
	}
	if len(f.Exclude) > 0 {
		q = q.Where("id NOT IN ?", f.Exclude)
	}
	return q
}

func (r *taskRepo) ListActive(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	var items []model.Task
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), f)
	return items, q.Order("created_at ASC, id ASC").Find(&items).Error
}

// sumColumns is the select list for SumActive: one COALESCE'd SUM per day
// column plus the total, aliased back to the column names so the result
// scans into a Task-shaped row.
func sumColumns() string {
	cols := make([]string, 0, model.DaysInRow+1)
	for i := 1; i <= model.DaysInRow; i++ {
		cols = append(cols, fmt.Sprintf("COALESCE(SUM(jour_%d), 0) AS jour_%d", i, i))
	}
	cols = append(cols, "COALESCE(SUM(total), 0) AS total")
	return strings.Join(cols, ", ")
}

func (r *taskRepo) SumActive(ctx context.Context, f TaskFilter) (DayTotals, error) {
	var sums model.Task
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), f)
	if err := q.Select(sumColumns()).Scan(&sums).Error; err != nil {
		return DayTotals{}, err
	}
	return DayTotals{Jours: sums.Days(), Total: sums.Total}, nil
}

func (r *taskRepo) ListAllDeleted(ctx context.Context) ([]model.Task, error) {
	var items []model.Task
	err := r.db.WithContext(ctx).Preload("TaskType").Preload("Creator").
		Where("is_deleted = ?", true).
		Order("updated_at DESC").Find(&items).Error
	return items, err
}

func (r *taskRepo) ListAllActive(ctx context.Context, exclude []uuid.UUID) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Preload("TaskType").Preload("Creator").
		Where("is_deleted = ?", false)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var items []model.Task
	return items, q.Order("created_at DESC").Find(&items).Error
}

func (r *taskRepo) SoftDelete(ctx context.Context, t *model.Task, owner uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t.IsDeleted = true
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		// Drop the owner's hide markers so a later restore is visible again.
		return tx.Where("account_id = ? AND task_id = ?", owner, t.ID).
			Delete(&model.HiddenTask{}).Error
	})
}

func (r *taskRepo) HardDelete(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Delete(t).Error
}

func (r *taskRepo) Restore(ctx context.Context, t *model.Task, actor uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t.IsDeleted = false
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		taskID := t.ID
		return tx.Create(&model.TaskHistory{
			TaskID:    &taskID,
			AccountID: &actor,
			Action:    model.ActionUpdate,
		}).Error
	})
}

func (r *taskRepo) Purge(ctx context.Context, t *model.Task, actor uuid.UUID, snap model.TaskSnapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(t).Error; err != nil {
			return err
		}
		return tx.Create(&model.TaskHistory{
			TaskID:    nil,
			AccountID: &actor,
			Action:    model.ActionDelete,
			Snapshot:  datatypes.NewJSONType(snap),
		}).Error
	})
}
