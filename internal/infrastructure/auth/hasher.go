package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// timingGuardSecret only feeds the throwaway hash; nothing ever matches it.
const timingGuardSecret = "contracthub-login-timing-guard"

// BcryptPasswordHasher hashes account passwords. It also keeps a throwaway
// hash at the same cost so a login for an unknown email spends as long in
// bcrypt as one with a wrong password.
type BcryptPasswordHasher struct {
	cost      int
	guardHash []byte
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	guard, err := bcrypt.GenerateFromPassword([]byte(timingGuardSecret), cost)
	if err != nil {
		guard = nil
	}
	return &BcryptPasswordHasher{cost: cost, guardHash: guard}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify returns the same error for a wrong password and a corrupt hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// Burn runs one comparison against the throwaway hash and discards the
// outcome.
func (h *BcryptPasswordHasher) Burn(password string) {
	if h.guardHash == nil {
		return
	}
	_ = bcrypt.CompareHashAndPassword(h.guardHash, []byte(password))
}
