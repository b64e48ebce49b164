// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/cashbook/backend/internal/application/usecase/dashboard"
	"github.com/cashbook/backend/internal/domain/ledger"
)

// DashboardStatsResponse represents rolling-window totals and outstanding
// debt positions for the dashboard cards.
type DashboardStatsResponse struct {
	Period          string `json:"period"`
	TotalIncome     string `json:"total_income"`
	TotalExpense    string `json:"total_expense"`
	Balance         string `json:"balance"`
	TotalDebt       string `json:"total_debt"`
	TotalReceivable string `json:"total_receivable"`
}

// ChartBucketResponse represents one date bucket of the dashboard chart.
type ChartBucketResponse struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// DashboardChartResponse represents the response for the dashboard chart.
type DashboardChartResponse struct {
	Data []ChartBucketResponse `json:"data"`
}

// ToDashboardStatsResponse converts stats output to a DashboardStatsResponse DTO.
func ToDashboardStatsResponse(output *dashboard.GetStatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		Period:          string(output.Period),
		TotalIncome:     output.Totals.Income.String(),
		TotalExpense:    output.Totals.Expense.String(),
		Balance:         output.Totals.Balance.String(),
		TotalDebt:       output.TotalDebt.String(),
		TotalReceivable: output.TotalReceivable.String(),
	}
}

// ToDashboardChartResponse converts chart buckets to a DashboardChartResponse DTO.
func ToDashboardChartResponse(buckets []ledger.ChartBucket) DashboardChartResponse {
	data := make([]ChartBucketResponse, len(buckets))
	for i, b := range buckets {
		data[i] = ChartBucketResponse{
			Date:    b.Date.Format(ledger.DateLayout),
			Income:  b.Income.String(),
			Expense: b.Expense.String(),
		}
	}
	return DashboardChartResponse{
		Data: data,
	}
}
