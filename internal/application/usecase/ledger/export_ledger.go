package ledger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	domainledger "github.com/cashbook/backend/internal/domain/ledger"
)

// ExportLedgerInput represents the input for the CSV export.
type ExportLedgerInput struct {
	UserID    uuid.UUID
	StartDate string
	EndDate   string
}

// ExportLedgerOutput holds the rendered CSV document and the suggested
// download filename.
type ExportLedgerOutput struct {
	Filename string
	Content  []byte
}

// ExportLedgerUseCase renders the general ledger as a CSV download.
type ExportLedgerUseCase struct {
	getLedger *GetLedgerUseCase
}

// NewExportLedgerUseCase creates a new ExportLedgerUseCase instance.
func NewExportLedgerUseCase(getLedger *GetLedgerUseCase) *ExportLedgerUseCase {
	return &ExportLedgerUseCase{
		getLedger: getLedger,
	}
}

// Execute computes the ledger for the range and serializes it as CSV. An
// empty range still produces a document with the header row.
func (uc *ExportLedgerUseCase) Execute(ctx context.Context, input ExportLedgerInput) (*ExportLedgerOutput, error) {
	result, err := uc.getLedger.Execute(ctx, GetLedgerInput{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	rows := domainledger.BuildExportRows(result.Entries)

	var buf bytes.Buffer
	if err := domainledger.WriteCSV(&buf, rows); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &ExportLedgerOutput{
		Filename: domainledger.ExportFilename(input.StartDate, input.EndDate),
		Content:  buf.Bytes(),
	}, nil
}
