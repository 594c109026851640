package model

import (
	"time"

	"github.com/google/uuid"
)

// ExcelFile records a spreadsheet upload. The import flow itself is out of
// scope; only the model is kept so existing rows stay readable.
type ExcelFile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename  string    `gorm:"type:varchar(200);not null" json:"filename"`
	Path      string    `gorm:"type:varchar(500);not null" json:"path"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	UsageType string    `gorm:"type:varchar(100);not null;default:''" json:"usage_type"`
	SentAt    time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (ExcelFile) TableName() string { return "excel_files" }
