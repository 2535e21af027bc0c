// Package session owns the authentication token lifecycle: the active
// session in the local state store and the optional remembered copy in the
// OS keyring.
package session

import (
	"errors"
	"time"

	"github.com/auraq/auraq-cli/internal/constants"
	"github.com/auraq/auraq-cli/internal/keyring"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
)

// ErrNoSession is returned when there is no usable session. The caller
// should direct the user to log in again; this is recoverable, not fatal.
var ErrNoSession = errors.New("no active session, please log in")

type Manager struct {
	store storage.Provider
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store}
}

// SetToken stores a new active session. When persistent is true a duplicate
// is written to the OS keyring with its own, longer expiry so the session
// survives beyond the token TTL on this machine.
func (m *Manager) SetToken(token, username string, persistent bool, ttl time.Duration) error {
	sess := models.Session{
		Token:      token,
		Username:   username,
		ExpiresAt:  time.Now().Add(ttl),
		Persistent: persistent,
	}
	if err := m.store.SaveSession(sess); err != nil {
		return err
	}

	if persistent {
		remembered := keyring.Remembered{
			Token:     token,
			Username:  username,
			ExpiresAt: time.Now().Add(constants.RememberTTL),
		}
		if err := keyring.Save(remembered); err != nil {
			// Keyring failures degrade to a non-persistent session.
			logger.Warn("Failed to store remembered session", "error", err)
		}
	}

	return nil
}

// Current returns the active session. An expired session is cleared and
// reported as absent; a stale token is never handed to a caller.
func (m *Manager) Current() (models.Session, error) {
	sess, err := m.store.GetSession()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, err
	}

	if sess.ExpiredAt(time.Now()) {
		if err := m.Clear(); err != nil {
			logger.Warn("Failed to clear expired session", "error", err)
		}
		return models.Session{}, ErrNoSession
	}

	return sess, nil
}

// Token returns the active token, or ErrNoSession when absent or expired.
func (m *Manager) Token() (string, error) {
	sess, err := m.Current()
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

// IsExpired reports whether the stored session is expired. A missing
// session counts as expired.
func (m *Manager) IsExpired() bool {
	sess, err := m.store.GetSession()
	if err != nil {
		return true
	}
	return sess.ExpiredAt(time.Now())
}

// Clear erases the active session, the remembered keyring copy, and the
// cached last analysis tied to the session user.
func (m *Manager) Clear() error {
	if sess, err := m.store.GetSession(); err == nil && sess.Username != "" {
		if err := m.store.DeleteLastAnalysis(sess.Username); err != nil {
			logger.Warn("Failed to clear cached analysis", "username", sess.Username, "error", err)
		}
	}

	if err := m.store.DeleteSession(); err != nil {
		return err
	}

	if err := keyring.Delete(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("Failed to clear remembered session", "error", err)
	}

	return nil
}

// MigrateRemembered promotes a still-valid remembered session to the active
// one when no usable active session exists. Returns whether a migration
// occurred.
func (m *Manager) MigrateRemembered() (bool, error) {
	if sess, err := m.store.GetSession(); err == nil && !sess.ExpiredAt(time.Now()) {
		return false, nil
	}

	remembered, err := keyring.Get()
	if err != nil {
		// Nothing remembered, or no keyring on this system.
		return false, nil
	}

	if time.Now().After(remembered.ExpiresAt) {
		if err := keyring.Delete(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Failed to delete expired remembered session", "error", err)
		}
		return false, nil
	}

	sess := models.Session{
		Token:      remembered.Token,
		Username:   remembered.Username,
		ExpiresAt:  remembered.ExpiresAt,
		Persistent: true,
	}
	if err := m.store.SaveSession(sess); err != nil {
		return false, err
	}

	logger.Info("Promoted remembered session", "username", remembered.Username)
	return true, nil
}
