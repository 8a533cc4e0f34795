package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:120;not null" json:"username"`
	Email        string `gorm:"size:180" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // never sent to clients
	IsAdmin      bool   `gorm:"not null;default:false" json:"is_admin"`

	// Account removal takes the user's dues and payment history with it.
	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Payments []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
