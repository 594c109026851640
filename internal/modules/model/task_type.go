package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is the category registry for tasks. Deleting a type deletes its
// tasks: the cascade is declared on Task.TaskType, not left to the database
// defaults.
type TaskType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// TaskType <-> Task
	Tasks []Task `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (TaskType) TableName() string { return "task_types" }
