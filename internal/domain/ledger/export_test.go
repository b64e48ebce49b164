package ledger

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

func TestBuildExportRows(t *testing.T) {
	t.Run("income fills debit and expense fills credit", func(t *testing.T) {
		income := txn(entity.TransactionTypeIncome, "1000", "2024-01-01")
		income.Transaction.Description = "Sales"
		expense := txn(entity.TransactionTypeExpense, "400", "2024-01-02")
		expense.Transaction.Description = "Supplies"

		entries := ComputeRunningBalance([]*entity.TransactionWithCategory{income, expense})
		rows := BuildExportRows(entries)

		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if !rows[0].Debit.Equal(decimal.RequireFromString("1000")) || !rows[0].Credit.IsZero() {
			t.Errorf("expected income row debit=1000 credit=0, got debit=%s credit=%s", rows[0].Debit, rows[0].Credit)
		}
		if !rows[1].Credit.Equal(decimal.RequireFromString("400")) || !rows[1].Debit.IsZero() {
			t.Errorf("expected expense row credit=400 debit=0, got debit=%s credit=%s", rows[1].Debit, rows[1].Credit)
		}
		if !rows[1].Balance.Equal(decimal.RequireFromString("600")) {
			t.Errorf("expected running balance 600, got %s", rows[1].Balance)
		}
	})

	t.Run("missing category and description fall back to a dash", func(t *testing.T) {
		entry := txn(entity.TransactionTypeIncome, "10", "2024-01-01")

		rows := BuildExportRows(ComputeRunningBalance([]*entity.TransactionWithCategory{entry}))

		if rows[0].Category != "-" {
			t.Errorf("expected category placeholder '-', got %q", rows[0].Category)
		}
		if rows[0].Description != "-" {
			t.Errorf("expected description placeholder '-', got %q", rows[0].Description)
		}
	})

	t.Run("category name is carried through when present", func(t *testing.T) {
		entry := txn(entity.TransactionTypeExpense, "25", "2024-01-01")
		entry.Category = &entity.Category{ID: uuid.New(), Name: "Bahan Baku", Type: entity.CategoryTypeExpense}

		rows := BuildExportRows(ComputeRunningBalance([]*entity.TransactionWithCategory{entry}))

		if rows[0].Category != "Bahan Baku" {
			t.Errorf("expected category 'Bahan Baku', got %q", rows[0].Category)
		}
	})
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes header then rows", func(t *testing.T) {
		income := txn(entity.TransactionTypeIncome, "1000", "2024-01-01")
		income.Transaction.Description = "Sales"
		rows := BuildExportRows(ComputeRunningBalance([]*entity.TransactionWithCategory{income}))

		var buf bytes.Buffer
		if err := WriteCSV(&buf, rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
		}
		if lines[0] != "Tanggal,Kategori,Deskripsi,Debit,Kredit,Saldo" {
			t.Errorf("unexpected header: %q", lines[0])
		}
		if lines[1] != "2024-01-01,-,Sales,1000,0,1000" {
			t.Errorf("unexpected row: %q", lines[1])
		}
	})

	t.Run("fields containing commas are quoted", func(t *testing.T) {
		entry := txn(entity.TransactionTypeExpense, "50", "2024-01-01")
		entry.Transaction.Description = "flour, sugar"
		rows := BuildExportRows(ComputeRunningBalance([]*entity.TransactionWithCategory{entry}))

		var buf bytes.Buffer
		if err := WriteCSV(&buf, rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), `"flour, sugar"`) {
			t.Errorf("expected quoted description, got %q", buf.String())
		}
	})

	t.Run("re-parsing the output reproduces the numeric columns", func(t *testing.T) {
		income := txn(entity.TransactionTypeIncome, "1000.55", "2024-01-01")
		income.Transaction.Description = "Sales"
		expense := txn(entity.TransactionTypeExpense, "400.05", "2024-01-02")
		expense.Transaction.Description = "flour, sugar"
		rows := BuildExportRows(ComputeRunningBalance([]*entity.TransactionWithCategory{income, expense}))

		var buf bytes.Buffer
		if err := WriteCSV(&buf, rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("failed to re-read csv: %v", err)
		}
		if len(records) != len(rows)+1 {
			t.Fatalf("expected %d records, got %d", len(rows)+1, len(records))
		}
		for i, row := range rows {
			record := records[i+1]
			if record[2] != row.Description {
				t.Errorf("row %d: expected description %q, got %q", i, row.Description, record[2])
			}
			for col, want := range map[int]decimal.Decimal{3: row.Debit, 4: row.Credit, 5: row.Balance} {
				got, parseErr := decimal.NewFromString(record[col])
				if parseErr != nil {
					t.Fatalf("row %d column %d: %v", i, col, parseErr)
				}
				if !got.Equal(want) {
					t.Errorf("row %d column %d: expected %s, got %s", i, col, want, got)
				}
			}
		}
	})

	t.Run("empty range still produces the header row", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.TrimRight(buf.String(), "\n") != "Tanggal,Kategori,Deskripsi,Debit,Kredit,Saldo" {
			t.Errorf("expected only the header, got %q", buf.String())
		}
	})
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename("2024-01-01", "2024-01-31")
	want := "jurnal-besar-2024-01-01-2024-01-31.csv"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
