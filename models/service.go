// models/service.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a due: an amount a user owes under a category for a given year.
type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CategoryID uint `gorm:"index;not null" json:"category_id"`
	UserID     uint `gorm:"index;not null" json:"user_id"`

	DueAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"due_amount"`
	DueDate     time.Time       `gorm:"type:date;not null" json:"due_date"`
	Year        int             `gorm:"index;not null" json:"year"`
	Description string          `gorm:"type:text" json:"description"`

	// Cached copy of ServiceStatus(DueAmount, total paid); rewritten inside
	// the same transaction as every payment insert.
	Status string `gorm:"size:10;not null;default:pending" json:"status"`

	Category Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
