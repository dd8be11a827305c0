package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/report"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction validates and stores a new transaction. Invalid input
// never reaches the store: negative amounts, blank descriptions, zero dates,
// and unknown categories are rejected here.
func (s *transactionService) CreateTransaction(
	ownerID *string,
	amount float64,
	date time.Time,
	description string,
	category models.Category,
) (*models.Transaction, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if !category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}

	transaction := &models.Transaction{
		UserID:      ownerID,
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	return transaction, nil
}

// ListTransactions loads the relevant snapshot and hands it to the report
// engine: category filter first, then newest-first ordering, then the page
// window. Total counts the matches before paging.
func (s *transactionService) ListTransactions(
	ownerID *string,
	category models.Category,
	page pagination.PageRequest,
) (*TransactionList, error) {
	q := s.db.Model(&models.Transaction{})
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}

	// Insertion order makes engine tie-breaking deterministic.
	var transactions []models.Transaction
	if err := q.Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	matched := report.SortByDateDesc(report.FilterByCategory(transactions, category))
	total := len(matched)
	if page.Requested() {
		matched = pagination.Slice(matched, page)
	}

	return &TransactionList{Transactions: matched, Total: total}, nil
}

// GetTransactionByID retrieves a transaction by id.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. Supplied fields go through the
// same validation as create; nil fields are untouched.
func (s *transactionService) UpdateTransaction(id string, patch TransactionPatch) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		transaction.Amount = *patch.Amount
	}
	if patch.Date != nil {
		if patch.Date.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must not be empty")
		}
		transaction.Date = *patch.Date
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description must not be empty")
		}
		transaction.Description = *patch.Description
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return nil, apperrors.ErrInvalidCategory
		}
		transaction.Category = *patch.Category
	}

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transaction, nil
}

// DeleteTransaction removes a single transaction by id.
func (s *transactionService) DeleteTransaction(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteUserTransaction removes a single transaction owned by the given user.
func (s *transactionService) DeleteUserTransaction(ownerID, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteUserTransactions removes every transaction owned by the given user
// and returns how many rows matched. Zero matches is a not-found signal.
func (s *transactionService) DeleteUserTransactions(ownerID string) (int64, error) {
	res := s.db.Where("user_id = ?", ownerID).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrTransactionNotFound
	}
	return res.RowsAffected, nil
}

// DeleteAllTransactions removes every transaction in the store.
func (s *transactionService) DeleteAllTransactions() (int64, error) {
	res := s.db.Where("1 = 1").Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrTransactionNotFound
	}
	return res.RowsAffected, nil
}
