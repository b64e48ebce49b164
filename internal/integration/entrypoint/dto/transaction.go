// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cashbook/backend/internal/domain/entity"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is a pointer so that binding distinguishes an absent field from a
// valid zero amount.
type CreateTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required,min=1,max=255"`
	Type        string   `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string  `json:"category_id,omitempty"`
	Date        string   `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Date          *string  `json:"date,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Amount      string                       `json:"amount"`
	Description string                       `json:"description"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Date        string                       `json:"date"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Amount:      txn.Amount.String(),
		Description: txn.Description,
		Type:        string(txn.Type),
		Date:        txn.Date.Format(ledger.DateLayout),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.CategoryID != nil {
		categoryID := txn.CategoryID.String()
		response.CategoryID = &categoryID
	}
	return response
}

// ToTransactionWithCategoryResponse converts a TransactionWithCategory to a
// TransactionResponse DTO including the category block.
func ToTransactionWithCategoryResponse(item *entity.TransactionWithCategory) TransactionResponse {
	response := ToTransactionResponse(item.Transaction)
	if item.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    item.Category.ID.String(),
			Name:  item.Category.Name,
			Type:  string(item.Category.Type),
			Color: item.Category.Color,
		}
	}
	return response
}

// ToTransactionTotalsResponse converts ledger totals to a response DTO.
func ToTransactionTotalsResponse(totals ledger.Totals) TransactionTotalsResponse {
	return TransactionTotalsResponse{
		TotalIncome:  totals.Income.String(),
		TotalExpense: totals.Expense.String(),
		Balance:      totals.Balance.String(),
	}
}

// ToTransactionListResponse converts transactions and totals to a list response.
func ToTransactionListResponse(items []*entity.TransactionWithCategory, totals ledger.Totals) TransactionListResponse {
	transactions := make([]TransactionResponse, len(items))
	for i, item := range items {
		transactions[i] = ToTransactionWithCategoryResponse(item)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Totals:       ToTransactionTotalsResponse(totals),
	}
}
