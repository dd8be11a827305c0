package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates an unowned transaction.
func CreateTestTransaction(t *testing.T, db *gorm.DB, amount float64, date time.Time, category models.Category) *models.Transaction {
	t.Helper()
	return CreateTestUserTransaction(t, db, nil, amount, date, category)
}

// CreateTestUserTransaction creates a transaction owned by the given user id
// (nil for the global, unowned variant).
func CreateTestUserTransaction(t *testing.T, db *gorm.DB, userID *string, amount float64, date time.Time, category models.Category) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Date:        date,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Category:    category,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
