// models/payment.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one recorded transfer against a service's due amount.
// Rows are append-only; there is no update or delete path.
type Payment struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"uniqueIndex;size:36;not null" json:"ref"` // receipt reference

	UserID    uint `gorm:"index;not null" json:"user_id"`
	ServiceID uint `gorm:"index;not null" json:"service_id"`
	// Denormalized from the service so category reports never join through it.
	CategoryID uint `gorm:"index;not null" json:"category_id"`

	AmountPaid  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	PaymentDate time.Time       `gorm:"index;not null" json:"payment_date"`

	// full only when this single payment covered the whole due amount.
	Status string `gorm:"size:10;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
