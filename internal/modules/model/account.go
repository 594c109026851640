package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record a session authenticates against.
// Usernames mirror the registration email.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(254);not null" json:"email"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Account <-> Identity
	Identity *Identity `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"identity,omitempty"`
}

func (Account) TableName() string { return "accounts" }
