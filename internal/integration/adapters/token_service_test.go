package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cashbook/backend/internal/integration/persistence/model"
)

// fakeTokenRepository is an in-memory TokenRepository for service tests.
type fakeTokenRepository struct {
	refreshTokens map[string]bool // token -> invalidated
	resetTokens   map[string]*model.PasswordResetTokenModel
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		refreshTokens: make(map[string]bool),
		resetTokens:   make(map[string]*model.PasswordResetTokenModel),
	}
}

func (r *fakeTokenRepository) SaveRefreshToken(_ context.Context, token string, _ uuid.UUID, _ time.Time) error {
	r.refreshTokens[token] = false
	return nil
}

func (r *fakeTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	invalidated, ok := r.refreshTokens[token]
	return ok && !invalidated, nil
}

func (r *fakeTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.refreshTokens[token] = true
	return nil
}

func (r *fakeTokenRepository) InvalidateAllUserRefreshTokens(_ context.Context, _ uuid.UUID) error {
	for token := range r.refreshTokens {
		r.refreshTokens[token] = true
	}
	return nil
}

func (r *fakeTokenRepository) SavePasswordResetToken(_ context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	r.resetTokens[token] = &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *fakeTokenRepository) GetPasswordResetToken(_ context.Context, token string) (*model.PasswordResetTokenModel, error) {
	return r.resetTokens[token], nil
}

func (r *fakeTokenRepository) InvalidatePasswordResetToken(_ context.Context, token string) error {
	if reset, ok := r.resetTokens[token]; ok {
		reset.Used = true
	}
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	service := NewTokenService("test-secret", repo)
	userID := uuid.New()

	t.Run("generated access token validates with its claims", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "owner@example.com" {
			t.Errorf("expected email owner@example.com, got %s", claims.Email)
		}
	})

	t.Run("refresh token is persisted for rotation", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, userID, "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected refresh token to be valid after generation")
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, _ = service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if valid {
			t.Error("expected refresh token to be invalid after invalidation")
		}
	})

	t.Run("access token is rejected as a refresh token", func(t *testing.T) {
		pair, _ := service.GenerateTokenPair(ctx, userID, "owner@example.com")

		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected a token type error")
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewTokenService("another-secret", newFakeTokenRepository())
		pair, _ := other.GenerateTokenPair(ctx, userID, "owner@example.com")

		if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected a signature error")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-jwt"); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestPasswordResetTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	service := NewPasswordResetTokenService(repo)
	userID := uuid.New()

	t.Run("generated token validates and carries the email", func(t *testing.T) {
		reset, err := service.GenerateResetToken(ctx, userID, "owner@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reset.Token) != 64 {
			t.Errorf("expected 64 hex characters, got %d", len(reset.Token))
		}

		validated, err := service.ValidateResetToken(ctx, reset.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated.Email != "owner@example.com" {
			t.Errorf("expected email owner@example.com, got %s", validated.Email)
		}
	})

	t.Run("used token is rejected", func(t *testing.T) {
		reset, _ := service.GenerateResetToken(ctx, userID, "owner@example.com")

		if err := service.InvalidateResetToken(ctx, reset.Token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateResetToken(ctx, reset.Token); err == nil {
			t.Error("expected a used token to be rejected")
		}
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		if _, err := service.ValidateResetToken(ctx, "unknown"); err == nil {
			t.Error("expected an unknown token to be rejected")
		}
	})
}
