// Package parentauth gates the parent dashboard behind a PIN.
package parentauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PINLength is the required PIN length.
const PINLength = 4

// ErrNotSet is returned when no PIN has been configured.
var ErrNotSet = errors.New("parentauth: no PIN set")

// SettingRepo stores the PIN hash as a keyed setting.
type SettingRepo interface {
	// Get returns the value for a key, or "" when unset.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const pinHashKey = "parent_pin_hash"

// Guard manages the parent PIN.
type Guard struct {
	settings SettingRepo
}

// NewGuard creates a guard over the given settings repo.
func NewGuard(settings SettingRepo) *Guard {
	return &Guard{settings: settings}
}

// IsSet reports whether a PIN has been configured.
func (g *Guard) IsSet(ctx context.Context) (bool, error) {
	hash, err := g.settings.Get(ctx, pinHashKey)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

// SetPIN stores a new PIN, replacing any existing one. Only the bcrypt
// hash is persisted.
func (g *Guard) SetPIN(ctx context.Context, pin string) error {
	if err := validatePIN(pin); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("parentauth: hash PIN: %w", err)
	}
	return g.settings.Set(ctx, pinHashKey, string(hash))
}

// Verify checks a PIN attempt against the stored hash. It returns
// ErrNotSet when no PIN is configured and false for a wrong PIN.
func (g *Guard) Verify(ctx context.Context, pin string) (bool, error) {
	hash, err := g.settings.Get(ctx, pinHashKey)
	if err != nil {
		return false, err
	}
	if hash == "" {
		return false, ErrNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return false, nil
	}
	return true, nil
}

// Reset removes the stored PIN.
func (g *Guard) Reset(ctx context.Context) error {
	return g.settings.Delete(ctx, pinHashKey)
}

func validatePIN(pin string) error {
	if len(pin) != PINLength {
		return fmt.Errorf("parentauth: PIN must be %d digits", PINLength)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return errors.New("parentauth: PIN must be digits only")
		}
	}
	return nil
}
