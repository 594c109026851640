package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity binds an account to a role and an active flag. Every protected
// operation is gated on this record; an inactive identity loses all of its
// sessions the moment it is deactivated.
type Identity struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	Account   *Account   `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	RoleID uuid.UUID `gorm:"type:uuid;not null;index" json:"role_id"`
	Role   *Role     `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"role,omitempty"`

	Active bool    `gorm:"not null;default:true" json:"active"`
	Email  *string `gorm:"type:varchar(254);uniqueIndex" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Identity) TableName() string { return "identities" }

// RoleName returns the stored role name, empty when the role is not loaded.
func (i *Identity) RoleName() string {
	if i.Role == nil {
		return ""
	}
	return i.Role.Name
}
