package constants

import "time"

const (
	AppName            = "auraq"
	DefaultKeyringUser = "remembered-session"
	DefaultConfigPath  = "~/.config/auraq/auraq.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultServerURL points at a local development server
	DefaultServerURL = "http://127.0.0.1:5000"

	// Credit scheme defaults. The free limit, the paid cost, and the
	// reward granted for a free submission are settings, not hardwired.
	DefaultFreeLimit    = 2
	DefaultPaidCost     = 1
	DefaultRewardOnFree = 0

	// Session lifetimes
	DefaultTokenTTL = 24 * time.Hour
	RememberTTL     = 30 * 24 * time.Hour

	// Submission retry bounds
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 10 * time.Second
	DefaultBackoffStep    = time.Second

	// MaxStoryLen bounds a single journal entry
	MaxStoryLen = 10000

	// Environment variables
	EnvServerURL    = "AURAQ_SERVER_URL"
	EnvDBConnection = "AURAQ_DB_CONNECTION"
	EnvDebug        = "AURAQ_DEBUG"
)
