// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbook/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database. Status is stored
// denormalized for filtering but is always rewritten from the amounts on
// every save.
type DebtModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(12);not null;index"`
	PersonName  string          `gorm:"type:varchar(100);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:text"`
	DueDate     *time.Time      `gorm:"type:date"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.DebtType(m.Type),
		PersonName:  m.PersonName,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		Description: m.Description,
		DueDate:     m.DueDate,
		Status:      entity.DebtStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:          debt.ID,
		UserID:      debt.UserID,
		Type:        string(debt.Type),
		PersonName:  debt.PersonName,
		TotalAmount: debt.TotalAmount,
		PaidAmount:  debt.PaidAmount,
		Description: debt.Description,
		DueDate:     debt.DueDate,
		Status:      string(debt.Status),
		CreatedAt:   debt.CreatedAt,
		UpdatedAt:   debt.UpdatedAt,
	}
}
