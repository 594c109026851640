package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the stored role registry. Access decisions are made on the
// closed enum in internal/pkg/role; these rows exist so user
// administration can reassign roles by id.
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string { return "roles" }
