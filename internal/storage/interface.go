package storage

import (
	"errors"

	"github.com/auraq/auraq-cli/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Provider is the local state cache behind the CLI. It holds the active
// session, the provisional credit counters, the most recent analysis per
// user, and application settings. The remote service remains the system of
// record for credits and mood history.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Session
	GetSession() (models.Session, error)
	SaveSession(models.Session) error
	DeleteSession() error

	// Credit state cache, keyed by username
	GetCreditState(username string) (models.CreditState, error)
	SaveCreditState(username string, state models.CreditState) error

	// Last analysis cache, keyed by username so results never leak across users
	GetLastAnalysis(username string) (models.AnalysisResult, error)
	SaveLastAnalysis(username string, result models.AnalysisResult) error
	DeleteLastAnalysis(username string) error

	// Utils
	GetConfigPath() string
}
