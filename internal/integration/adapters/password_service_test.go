package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round trip", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "SecurePass123" {
			t.Error("expected hash to differ from the plain password")
		}
		if err := service.VerifyPassword(hash, "SecurePass123"); err != nil {
			t.Errorf("expected password to verify, got %v", err)
		}
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := service.HashPassword("SecurePass123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := service.VerifyPassword(hash, "WrongPass456"); err == nil {
			t.Error("expected verification to fail")
		}
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, _ := service.HashPassword("SecurePass123")
		second, _ := service.HashPassword("SecurePass123")
		if first == second {
			t.Error("expected distinct hashes for the same password")
		}
	})

	t.Run("short passwords fail the strength check", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short1"); err == nil {
			t.Error("expected a strength error for a 6-character password")
		}
	})

	t.Run("eight characters pass the strength check", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
