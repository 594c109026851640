package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit actions. ActionCreate is declared for completeness but the current
// flows only write ActionUpdate (restore) and ActionDelete (purge).
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// TaskSnapshot is the task state captured into a purge audit record, so
// DELETE entries stay meaningful after the row itself is gone.
type TaskSnapshot struct {
	TaskID       uuid.UUID      `json:"task_id"`
	TaskTypeID   uuid.UUID      `json:"task_type_id"`
	TaskTypeName string         `json:"task_type_name,omitempty"`
	Quartier     string         `json:"quartier"`
	Date         string         `json:"date"`
	Days         [DaysInRow]int `json:"days"`
	Total        int            `json:"total"`
	CreatedBy    *uuid.UUID     `json:"created_by"`
}

// TaskHistory is the append-only audit log of lifecycle transitions.
// TaskID is null for purge records.
type TaskHistory struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID *uuid.UUID `gorm:"type:uuid;index" json:"task_id"`
	Task   *Task      `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`

	AccountID *uuid.UUID `gorm:"type:uuid;index" json:"account_id"`
	Account   *Account   `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`

	Action   string                           `gorm:"type:varchar(20);not null" json:"action"`
	Snapshot datatypes.JSONType[TaskSnapshot] `gorm:"type:jsonb" swaggertype:"object" json:"snapshot"`

	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (TaskHistory) TableName() string { return "task_histories" }
