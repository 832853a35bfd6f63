// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMismatch = errors.New("password does not match")
	ErrHash     = errors.New("failed to hash password")
	ErrTooLong  = errors.New("password exceeds 72 bytes")
	ErrBadCost  = errors.New("bcrypt cost out of range")
)

// DefaultCost is used when a Hasher is created with cost 0.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes passwords at a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A zero cost selects DefaultCost.
func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, ErrBadCost
	}
	return &Hasher{cost: cost}, nil
}

// Hash returns the bcrypt hash of plain.
func (h *Hasher) Hash(plain string) ([]byte, error) {
	if len(plain) > 72 {
		return nil, ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return nil, errors.Join(ErrHash, err)
	}
	return hash, nil
}

// Compare checks plain against hash. A wrong password yields ErrMismatch.
func Compare(hash []byte, plain string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
