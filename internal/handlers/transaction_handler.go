package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	userService        services.UserServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, userService services.UserServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, userService: userService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is a pointer so a legitimate zero amount survives required-field binding.
type CreateTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Date        string   `json:"date" binding:"required"`
	Description string   `json:"description" binding:"required,max=500"`
	Category    string   `json:"category" binding:"required,tx_category"`
	Username    string   `json:"username" binding:"omitempty,username"`
}

// UpdateTransactionRequest represents the request payload for a partial update.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Date        *string  `json:"date"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Category    *string  `json:"category" binding:"omitempty,tx_category"`
}

// listTransactionsQuery holds the optional list filters.
type listTransactionsQuery struct {
	Category string `form:"category" binding:"omitempty,filter_category"`
	pagination.PageRequest
}

// BulkDeleteRequest selects which transactions a DELETE /transactions call
// removes: one record for a user, all records for a user, or everything.
type BulkDeleteRequest struct {
	Username      string `json:"username" binding:"omitempty,username"`
	TransactionID string `json:"transaction_id"`
}

// resolveOwner maps a username to the owning user's id. Empty username means
// the global, unscoped view.
func (h *TransactionHandler) resolveOwner(username string) (*string, error) {
	if username == "" {
		return nil, nil
	}
	user, err := h.userService.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	return &user.ID, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new transaction, optionally owned by a user
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string]interface{} "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ownerID, err := h.resolveOwner(req.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, _ := models.ParseCategory(req.Category)
	transaction, err := h.transactionService.CreateTransaction(ownerID, *req.Amount, date, req.Description, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": newTransactionView(*transaction),
		"message":     "Transaction added successfully",
	})
}

// GetTransactions handles the retrieval of all transactions
// @Summary     List transactions
// @Description List all transactions newest-first, optionally filtered by category and paginated
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       category  query string false "Category filter (daily_expenses, miscellaneous, groceries_and_food, bills, all)"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Items per page (max 100)"
// @Success     200 {object} map[string]interface{} "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	h.listTransactions(c, nil)
}

// GetUserTransactions handles the retrieval of one user's transactions
// @Summary     List a user's transactions
// @Description List the named user's transactions newest-first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       username  path  string true  "Username"
// @Param       category  query string false "Category filter"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Items per page (max 100)"
// @Success     200 {object} map[string]interface{} "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{username} [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	ownerID, err := h.resolveOwner(c.Param("username"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.listTransactions(c, ownerID)
}

func (h *TransactionHandler) listTransactions(c *gin.Context, ownerID *string) {
	var query listTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category := models.CategoryAll
	if query.Category != "" {
		category, _ = models.ParseFilterCategory(query.Category)
	}

	list, err := h.transactionService.ListTransactions(ownerID, category, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": newTransactionViews(list.Transactions),
		"count":        list.Total,
		"message":      "Transactions retrieved successfully",
	})
}

// UpdateTransaction handles a partial update of a transaction
// @Summary     Update a transaction
// @Description Partially update a transaction's amount, date, description, or category
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.TransactionPatch{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != nil {
		date, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		patch.Date = &date
	}
	if req.Category != nil {
		category, _ := models.ParseCategory(*req.Category)
		patch.Category = &category
	}

	transaction, err := h.transactionService.UpdateTransaction(id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction": newTransactionView(*transaction),
		"message":     "Transaction updated successfully",
	})
}

// DeleteTransaction handles the deletion of a single transaction
// @Summary     Delete a transaction
// @Description Delete one transaction by id
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// BulkDelete handles scoped bulk deletion of transactions
// @Summary     Bulk delete transactions
// @Description Delete one record for a user, all records for a user, or all records globally
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body BulkDeleteRequest false "Deletion scope"
// @Success     200 {object} map[string]interface{} "Transactions deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Nothing matched"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [delete]
func (h *TransactionHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	switch {
	case req.Username != "" && req.TransactionID != "":
		ownerID, err := h.resolveOwner(req.Username)
		if err != nil {
			respondWithError(c, err)
			return
		}
		if err := h.transactionService.DeleteUserTransaction(*ownerID, req.TransactionID); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})

	case req.Username != "":
		ownerID, err := h.resolveOwner(req.Username)
		if err != nil {
			respondWithError(c, err)
			return
		}
		deleted, err := h.transactionService.DeleteUserTransactions(*ownerID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transactions deleted successfully", "deleted": deleted})

	case req.TransactionID != "":
		if err := h.transactionService.DeleteTransaction(req.TransactionID); err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})

	default:
		deleted, err := h.transactionService.DeleteAllTransactions()
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transactions deleted successfully", "deleted": deleted})
	}
}
