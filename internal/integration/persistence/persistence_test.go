package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cashbook/backend/internal/application/adapter"
	"github.com/cashbook/backend/internal/domain/entity"
	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/persistence/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.DebtModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func day(value string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCategoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	txnRepo := NewTransactionRepository(db)
	userID := uuid.New()

	category := entity.NewCategory(userID, "Supplies", entity.CategoryTypeExpense, entity.DefaultCategoryColor)
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	txn := entity.NewTransaction(userID, decimal.NewFromInt(100), "Flour", entity.TransactionTypeExpense, &category.ID, day("2024-01-01"))
	if err := txnRepo.Create(ctx, txn); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	if err := categoryRepo.Delete(ctx, category.ID); err != nil {
		t.Fatalf("failed to delete category: %v", err)
	}

	if _, err := categoryRepo.FindByID(ctx, category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}

	// The transaction survives with its category reference cleared.
	kept, err := txnRepo.FindByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("expected transaction to survive, got %v", err)
	}
	if kept.CategoryID != nil {
		t.Errorf("expected cleared category reference, got %v", kept.CategoryID)
	}
}

func TestCategoryRepositoryQueries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	userID := uuid.New()

	for _, c := range []*entity.Category{
		entity.NewCategory(userID, "Zutaten", entity.CategoryTypeExpense, entity.DefaultCategoryColor),
		entity.NewCategory(userID, "Sales", entity.CategoryTypeIncome, entity.DefaultCategoryColor),
		entity.NewCategory(uuid.New(), "Other user", entity.CategoryTypeExpense, entity.DefaultCategoryColor),
	} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}

	t.Run("FindByUser returns only the user's categories sorted by name", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[0].Name != "Sales" || categories[1].Name != "Zutaten" {
			t.Errorf("expected name order [Sales Zutaten], got [%s %s]", categories[0].Name, categories[1].Name)
		}
	})

	t.Run("FindByUserAndType filters by type", func(t *testing.T) {
		categories, err := repo.FindByUserAndType(ctx, userID, entity.CategoryTypeIncome)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 1 || categories[0].Name != "Sales" {
			t.Errorf("expected only Sales, got %v", categories)
		}
	})

	t.Run("ExistsByNameAndUser is scoped per user", func(t *testing.T) {
		exists, err := repo.ExistsByNameAndUser(ctx, "Sales", userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected Sales to exist for the user")
		}
		exists, _ = repo.ExistsByNameAndUser(ctx, "Other user", userID)
		if exists {
			t.Error("expected another user's category name to not count")
		}
	})
}

func TestTransactionRepositoryFindByFilter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)
	userID := uuid.New()

	category := entity.NewCategory(userID, "Sales", entity.CategoryTypeIncome, entity.DefaultCategoryColor)
	if err := categoryRepo.Create(ctx, category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	seed := []*entity.Transaction{
		entity.NewTransaction(userID, decimal.NewFromInt(1000), "Morning sales", entity.TransactionTypeIncome, &category.ID, day("2024-01-01")),
		entity.NewTransaction(userID, decimal.NewFromInt(400), "Supplies", entity.TransactionTypeExpense, nil, day("2024-01-02")),
		entity.NewTransaction(userID, decimal.NewFromInt(50), "Snacks", entity.TransactionTypeExpense, nil, day("2024-02-01")),
		entity.NewTransaction(uuid.New(), decimal.NewFromInt(77), "Other user", entity.TransactionTypeIncome, nil, day("2024-01-01")),
	}
	for _, txn := range seed {
		if err := repo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	t.Run("filters by user and inclusive date range, ascending by date", func(t *testing.T) {
		start := day("2024-01-01")
		end := day("2024-01-31")
		items, err := repo.FindByFilter(ctx, adapter.TransactionFilter{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(items))
		}
		if items[0].Transaction.Description != "Morning sales" {
			t.Errorf("expected earliest first, got %q", items[0].Transaction.Description)
		}
	})

	t.Run("preloads the category", func(t *testing.T) {
		items, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, CategoryID: &category.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(items))
		}
		if items[0].Category == nil || items[0].Category.Name != "Sales" {
			t.Errorf("expected preloaded category Sales, got %v", items[0].Category)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		items, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: userID, Type: &expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(items))
		}
	})

	t.Run("FindByID returns the sentinel for unknown ids", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDebtRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewDebtRepository(db)
	userID := uuid.New()

	first := entity.NewDebt(userID, entity.DebtTypeDebt, "Budi", decimal.NewFromInt(1000), decimal.Zero, "", nil)
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := entity.NewDebt(userID, entity.DebtTypeReceivable, "Siti", decimal.NewFromInt(300), decimal.NewFromInt(100), "", nil)
	for _, d := range []*entity.Debt{first, second} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("failed to create debt: %v", err)
		}
	}

	t.Run("FindByUser returns newest first", func(t *testing.T) {
		debts, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(debts) != 2 {
			t.Fatalf("expected 2 debts, got %d", len(debts))
		}
		if debts[0].PersonName != "Siti" {
			t.Errorf("expected newest debt first, got %q", debts[0].PersonName)
		}
	})

	t.Run("updates persist rederived status", func(t *testing.T) {
		first.ApplyAmounts(decimal.NewFromInt(1000), decimal.NewFromInt(1000))
		if err := repo.Update(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, err := repo.FindByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Status != entity.DebtStatusPaid {
			t.Errorf("expected stored status paid, got %s", stored.Status)
		}
	})

	t.Run("FindByID returns the sentinel for unknown ids", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrDebtNotFound) {
			t.Errorf("expected ErrDebtNotFound, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("owner@example.com", "hashed")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	t.Run("FindByEmail returns the user", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
	})

	t.Run("unknown email returns the sentinel", func(t *testing.T) {
		if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("ExistsByEmail reflects stored users", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected existing email to be reported")
		}
		exists, _ = repo.ExistsByEmail(ctx, "missing@example.com")
		if exists {
			t.Error("expected missing email to not be reported")
		}
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewTokenRepository(db)
	userID := uuid.New()

	t.Run("refresh token lifecycle", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-1", userID, time.Now().UTC().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected fresh token to be valid")
		}

		if err := repo.InvalidateRefreshToken(ctx, "token-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid, _ := repo.IsRefreshTokenValid(ctx, "token-1"); valid {
			t.Error("expected invalidated token to be invalid")
		}
	})

	t.Run("expired refresh token is invalid without error", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-2", userID, time.Now().UTC().Add(-time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := repo.IsRefreshTokenValid(ctx, "token-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("invalidate all user refresh tokens", func(t *testing.T) {
		otherUser := uuid.New()
		_ = repo.SaveRefreshToken(ctx, "token-3", userID, time.Now().UTC().Add(time.Hour))
		_ = repo.SaveRefreshToken(ctx, "token-4", otherUser, time.Now().UTC().Add(time.Hour))

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid, _ := repo.IsRefreshTokenValid(ctx, "token-3"); valid {
			t.Error("expected the user's token to be invalidated")
		}
		if valid, _ := repo.IsRefreshTokenValid(ctx, "token-4"); !valid {
			t.Error("expected the other user's token to stay valid")
		}
	})

	t.Run("password reset token round trip", func(t *testing.T) {
		if err := repo.SavePasswordResetToken(ctx, "reset-1", userID, "owner@example.com", time.Now().UTC().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reset, err := repo.GetPasswordResetToken(ctx, "reset-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reset == nil || reset.Email != "owner@example.com" {
			t.Fatalf("expected stored token, got %v", reset)
		}

		if err := repo.InvalidatePasswordResetToken(ctx, "reset-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		reset, _ = repo.GetPasswordResetToken(ctx, "reset-1")
		if reset == nil || !reset.Used {
			t.Errorf("expected token marked used, got %v", reset)
		}
	})

	t.Run("unknown reset token yields nil without error", func(t *testing.T) {
		reset, err := repo.GetPasswordResetToken(ctx, "unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reset != nil {
			t.Errorf("expected nil, got %v", reset)
		}
	})
}
