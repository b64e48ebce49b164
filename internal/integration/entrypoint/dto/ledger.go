// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/cashbook/backend/internal/domain/ledger"
)

// LedgerEntryResponse represents one row of the general ledger: the
// transaction with the cumulative balance after applying it.
type LedgerEntryResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     string              `json:"balance"`
}

// LedgerResponse represents the response for the general-ledger query.
type LedgerResponse struct {
	Entries   []LedgerEntryResponse     `json:"entries"`
	Totals    TransactionTotalsResponse `json:"totals"`
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
}

// ToLedgerResponse converts running-balance entries and totals to a LedgerResponse.
func ToLedgerResponse(entries []ledger.BalanceEntry, totals ledger.Totals, startDate, endDate string) LedgerResponse {
	rows := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		row := LedgerEntryResponse{
			Transaction: ToTransactionResponse(e.Transaction),
			Balance:     e.Balance.String(),
		}
		if e.Category != nil {
			row.Transaction.Category = &TransactionCategoryResponse{
				ID:    e.Category.ID.String(),
				Name:  e.Category.Name,
				Type:  string(e.Category.Type),
				Color: e.Category.Color,
			}
		}
		rows[i] = row
	}
	return LedgerResponse{
		Entries:   rows,
		Totals:    ToTransactionTotalsResponse(totals),
		StartDate: startDate,
		EndDate:   endDate,
	}
}
