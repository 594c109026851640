package model

import (
	"time"

	"github.com/google/uuid"
)

// HiddenTask is a per-viewer suppression marker, independent of the task's
// soft-delete flag. Hiding is one-way: no operation clears IsHidden. The
// markers for a task are removed when its owner soft-deletes it, so a later
// restore surfaces the task again.
type HiddenTask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_hidden_account_task,priority:1" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	TaskID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_hidden_account_task,priority:2" json:"task_id"`
	Task   *Task     `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	IsHidden bool      `gorm:"not null;default:false" json:"is_hidden"`
	HiddenAt time.Time `gorm:"autoCreateTime" json:"hidden_at"`
}

func (HiddenTask) TableName() string { return "hidden_tasks" }
