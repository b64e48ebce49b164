// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt record in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByUser retrieves all debt records for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// Update replaces an existing debt record in the database. The write is a
	// full-record replace; concurrent edits are last-write-wins.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
