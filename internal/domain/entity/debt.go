// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType represents the direction of a debt record.
type DebtType string

const (
	// DebtTypeDebt is money the user owes to someone else.
	DebtTypeDebt DebtType = "debt"
	// DebtTypeReceivable is money someone else owes to the user.
	DebtTypeReceivable DebtType = "receivable"
)

// DebtStatus represents the settlement status of a debt record.
// It is derived from the (total_amount, paid_amount) pair and is never
// independently settable.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusPartial DebtStatus = "partial"
	DebtStatusPaid    DebtStatus = "paid"
)

// Debt represents a debt or receivable tracked by a user.
type Debt struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        DebtType
	PersonName  string
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Description string
	DueDate     *time.Time
	Status      DebtStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDebt creates a new Debt entity. Paid amount is clamped to the total and
// the settlement status is derived from the resulting amounts.
func NewDebt(
	userID uuid.UUID,
	debtType DebtType,
	personName string,
	totalAmount decimal.Decimal,
	paidAmount decimal.Decimal,
	description string,
	dueDate *time.Time,
) *Debt {
	now := time.Now().UTC()
	debt := &Debt{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        debtType,
		PersonName:  personName,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	debt.ApplyAmounts(totalAmount, paidAmount)
	return debt
}

// ApplyAmounts sets the total and paid amounts, clamping paid_amount down to
// total_amount, and recomputes the settlement status from scratch. Every write
// path goes through this method so a stored status can never contradict the
// stored amounts.
func (d *Debt) ApplyAmounts(totalAmount, paidAmount decimal.Decimal) {
	if paidAmount.GreaterThan(totalAmount) {
		paidAmount = totalAmount
	}
	d.TotalAmount = totalAmount
	d.PaidAmount = paidAmount
	d.Status = DeriveDebtStatus(totalAmount, paidAmount)
}

// DeriveDebtStatus classifies the settlement state of a debt:
// paid_amount = 0 is pending, 0 < paid_amount < total_amount is partial,
// paid_amount >= total_amount is paid.
func DeriveDebtStatus(totalAmount, paidAmount decimal.Decimal) DebtStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(totalAmount):
		return DebtStatusPaid
	case paidAmount.IsZero():
		return DebtStatusPending
	default:
		return DebtStatusPartial
	}
}

// RemainingBalance returns the unpaid portion of the debt.
func (d *Debt) RemainingBalance() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// ProgressPercent returns the settlement progress as a percentage.
// A zero total amount yields 0 rather than a division error.
func (d *Debt) ProgressPercent() decimal.Decimal {
	if d.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return d.PaidAmount.Mul(decimal.NewFromInt(100)).Div(d.TotalAmount)
}

// OutstandingTotal sums the remaining balances of the given kind, excluding
// fully paid records. Used for dashboard summary cards.
func OutstandingTotal(debts []*Debt, kind DebtType) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		if d.Type != kind || d.Status == DebtStatusPaid {
			continue
		}
		total = total.Add(d.RemainingBalance())
	}
	return total
}
