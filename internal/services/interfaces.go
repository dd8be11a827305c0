package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	// GetOrCreateUser is the idempotent sign-in primitive: it returns the
	// existing user, or creates one, and reports whether a create happened.
	GetOrCreateUser(username string) (*models.User, bool, error)
	GetUserByUsername(username string) (*models.User, error)
}

// TransactionPatch holds the optional fields of a partial update. Nil fields
// are left untouched.
type TransactionPatch struct {
	Amount      *float64
	Date        *time.Time
	Description *string
	Category    *models.Category
}

// TransactionList is the display-ready result of a list query: the page of
// transactions in newest-first order plus the total number of matches.
type TransactionList struct {
	Transactions []models.Transaction
	Total        int
}

// TransactionServicer defines the contract for transaction-related business
// logic. Owner scoping is by user id; a nil owner means the global view.
type TransactionServicer interface {
	CreateTransaction(ownerID *string, amount float64, date time.Time, description string, category models.Category) (*models.Transaction, error)
	ListTransactions(ownerID *string, category models.Category, page pagination.PageRequest) (*TransactionList, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(id string) error
	DeleteUserTransaction(ownerID, id string) error
	DeleteUserTransactions(ownerID string) (int64, error)
	DeleteAllTransactions() (int64, error)
}

// CategoryBreakdown is one slice of the category pie: a category's total
// amount plus its display metadata.
type CategoryBreakdown struct {
	Category models.Category     `json:"category"`
	Amount   float64             `json:"amount"`
	Meta     report.CategoryMeta `json:"meta"`
}

// ReportServicer assembles dashboard views by loading a transaction snapshot
// and running the report engine over it.
type ReportServicer interface {
	Summary(ownerID *string) (*report.Summary, error)
	MonthlyTotals(ownerID *string) (map[string]float64, []report.MonthTotal, error)
	CategoryTotals(ownerID *string) ([]CategoryBreakdown, error)
}
