package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// missingFieldPlaceholder fills the category and description columns when a
// ledger entry has neither.
const missingFieldPlaceholder = "-"

// exportHeader is the CSV header row of the general-ledger export.
var exportHeader = []string{"Tanggal", "Kategori", "Deskripsi", "Debit", "Kredit", "Saldo"}

// ExportRow is one flat line of the general-ledger export: debit carries the
// amount for income entries, credit for expense entries.
type ExportRow struct {
	Date        string
	Category    string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// BuildExportRows maps running-balance entries to export rows in the order
// given, which is ascending by date when the entries come from
// ComputeRunningBalance.
func BuildExportRows(entries []BalanceEntry) []ExportRow {
	rows := make([]ExportRow, len(entries))
	for i, e := range entries {
		row := ExportRow{
			Date:        e.Transaction.Date.Format(DateLayout),
			Category:    missingFieldPlaceholder,
			Description: e.Transaction.Description,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
			Balance:     e.Balance,
		}
		if e.Category != nil {
			row.Category = e.Category.Name
		}
		if row.Description == "" {
			row.Description = missingFieldPlaceholder
		}
		if e.Transaction.Type == entity.TransactionTypeIncome {
			row.Debit = e.Transaction.Amount
		} else {
			row.Credit = e.Transaction.Amount
		}
		rows[i] = row
	}
	return rows
}

// WriteCSV serializes export rows as comma-delimited text with a header row.
// Fields containing the delimiter are quoted by the encoder; the system this
// replaces emitted them unescaped, which is treated as a defect rather than a
// format contract.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			row.Category,
			row.Description,
			row.Debit.String(),
			row.Credit.String(),
			row.Balance.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename builds the download filename for a ledger export covering
// [start, end], e.g. jurnal-besar-2024-01-01-2024-01-31.csv.
func ExportFilename(start, end string) string {
	return fmt.Sprintf("jurnal-besar-%s-%s.csv", start, end)
}
