package models

import "time"

// Transaction represents a single recorded monetary event. A transaction
// belongs to at most one user; rows with a nil UserID back the global,
// unscoped view.
type Transaction struct {
	Base
	UserID      *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `gorm:"not null" json:"description"`
	Category    Category  `gorm:"not null;index" json:"category"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
