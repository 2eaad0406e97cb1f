package config

import (
	"strings"
	"testing"
)

func TestNewPasswordConfig_CostBounds(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{name: "unset uses default", cost: "", wantCost: 12},
		{name: "minimum cost", cost: "10", wantCost: 10},
		{name: "maximum cost", cost: "14", wantCost: 14},
		{name: "below minimum", cost: "9", wantErr: true},
		{name: "above maximum", cost: "15", wantErr: true},
		{name: "negative", cost: "-5", wantErr: true},
		{name: "zero", cost: "0", wantErr: true},
		{name: "non-numeric", cost: "twelve", wantErr: true},
		{name: "float", cost: "12.5", wantErr: true},
		{name: "whitespace not trimmed", cost: "  12  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PASSWORD_PEPPER", "")
			t.Setenv("BCRYPT_COST", tt.cost)

			cfg, err := NewPasswordConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPasswordConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if cfg != nil {
					t.Error("NewPasswordConfig() should return nil config on error")
				}
				return
			}
			if cfg.BcryptCost != tt.wantCost {
				t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, tt.wantCost)
			}
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	const password = "correct horse battery staple"
	hash, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty hash")
	}

	if !cfg.VerifyPassword(password, hash) {
		t.Error("VerifyPassword() rejected the correct password")
	}
	if cfg.VerifyPassword("incorrect horse", hash) {
		t.Error("VerifyPassword() accepted the wrong password")
	}

	// Salt makes every hash of the same password distinct.
	rehash, err := cfg.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == rehash {
		t.Error("two hashes of the same password should differ")
	}
}

func TestPasswordConfig_EmptyPassword(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	hash, err := cfg.HashPassword("")
	if err != nil {
		t.Fatalf("HashPassword(\"\") error = %v", err)
	}
	if !cfg.VerifyPassword("", hash) {
		t.Error("empty password should verify against its own hash")
	}
	if cfg.VerifyPassword("not-empty", hash) {
		t.Error("non-empty password should not verify against the empty-password hash")
	}
}

func TestPasswordConfig_BcryptLengthLimit(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	// 72 bytes is bcrypt's hard limit; it errors rather than truncating.
	atLimit := strings.Repeat("a", 72)
	hash, err := cfg.HashPassword(atLimit)
	if err != nil {
		t.Fatalf("HashPassword() at 72 bytes should succeed: %v", err)
	}
	if !cfg.VerifyPassword(atLimit, hash) {
		t.Error("72-byte password should verify")
	}

	over, err := cfg.HashPassword(strings.Repeat("a", 73))
	if err == nil {
		t.Error("HashPassword() should error beyond 72 bytes")
	}
	if over != "" {
		t.Error("HashPassword() should return empty hash on error")
	}
}

func TestPasswordConfig_Pepper(t *testing.T) {
	const password = "user-chosen-password"

	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "deployment-pepper-a")
	withPepper, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	hash, err := withPepper.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !withPepper.VerifyPassword(password, hash) {
		t.Error("password should verify under the pepper it was hashed with")
	}

	// A different pepper, or no pepper, must reject the same hash.
	t.Setenv("PASSWORD_PEPPER", "deployment-pepper-b")
	rotated, _ := NewPasswordConfig()
	if rotated.VerifyPassword(password, hash) {
		t.Error("hash should not verify after a pepper rotation")
	}

	t.Setenv("PASSWORD_PEPPER", "")
	plain, _ := NewPasswordConfig()
	if plain.VerifyPassword(password, hash) {
		t.Error("peppered hash should not verify without the pepper")
	}
}

func TestPasswordConfig_PepperPlusPasswordLength(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")

	// Pepper and password together must fit in bcrypt's 72 bytes.
	t.Setenv("PASSWORD_PEPPER", strings.Repeat("p", 63))
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}
	hash, err := cfg.HashPassword("nine chrs")
	if err != nil {
		t.Fatalf("HashPassword() at combined limit should succeed: %v", err)
	}
	if hash == "" {
		t.Error("expected a hash at the combined 72-byte limit")
	}

	t.Setenv("PASSWORD_PEPPER", strings.Repeat("p", 64))
	cfg, err = NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}
	if _, err := cfg.HashPassword("nine chrs"); err == nil {
		t.Error("HashPassword() should error when pepper plus password exceeds 72 bytes")
	}
}

func TestPasswordConfig_MalformedHashes(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	for _, malformed := range []string{
		"",
		"not-a-hash",
		"$2a$12$truncated",
		"plain$text$with$dollars",
	} {
		if cfg.VerifyPassword("anything", malformed) {
			t.Errorf("VerifyPassword() accepted malformed hash %q", malformed)
		}
	}
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	const password = "repeat-me"
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		hash, err := cfg.HashPassword(password)
		if err != nil {
			t.Fatalf("HashPassword() iteration %d: %v", i, err)
		}
		if seen[hash] {
			t.Fatalf("duplicate hash at iteration %d", i)
		}
		seen[hash] = true
		if !cfg.VerifyPassword(password, hash) {
			t.Fatalf("hash from iteration %d failed to verify", i)
		}
	}
}

func TestPasswordConfig_ConcurrentHashing(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}

	const password = "shared-password"
	results := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func() {
			hash, err := cfg.HashPassword(password)
			results <- err == nil && cfg.VerifyPassword(password, hash)
		}()
	}
	for i := 0; i < 8; i++ {
		if !<-results {
			t.Error("concurrent hash/verify failed")
		}
	}
}

func BenchmarkHashPassword(b *testing.B) {
	b.Setenv("BCRYPT_COST", "10")
	cfg, _ := NewPasswordConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cfg.HashPassword("benchmark-password")
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	b.Setenv("BCRYPT_COST", "10")
	cfg, _ := NewPasswordConfig()
	hash, _ := cfg.HashPassword("benchmark-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.VerifyPassword("benchmark-password", hash)
	}
}
