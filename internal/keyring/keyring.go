package keyring

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/auraq/auraq-cli/internal/constants"
)

var (
	// ErrNotFound is returned when no remembered session exists in the keyring
	ErrNotFound = errors.New("remembered session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Remembered is the longer-lived duplicate of a session stored when the user
// asks to stay signed in. It carries its own expiry, independent of the
// active session's.
type Remembered struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Save stores a remembered session in the OS keyring.
func Save(r Remembered) error {
	if r.Token == "" {
		return errors.New("token cannot be empty")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode remembered session: %w", err)
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, string(data)); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// Get retrieves the remembered session from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func Get() (Remembered, error) {
	data, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return Remembered{}, ErrNotFound
		}
		return Remembered{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	var r Remembered
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return Remembered{}, fmt.Errorf("failed to decode remembered session: %w", err)
	}
	return r, nil
}

// Delete removes the remembered session from the OS keyring.
func Delete() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty
	return err == nil || err == keyring.ErrNotFound
}
