package models

// User represents a registered username owning zero or more transactions.
// Users are created idempotently on first sign-in and never updated or
// deleted afterwards.
type User struct {
	Base
	Username     string        `gorm:"uniqueIndex;not null" json:"username"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
