package models

// Settings represents application-wide settings
type Settings struct {
	ServerURL         string `json:"server_url"`          // base URL of the AuraQ service
	FreeLimit         int    `json:"free_limit"`          // free submissions per day
	PaidCost          int    `json:"paid_cost"`           // reward points consumed by a submission past the free limit
	RewardOnFree      int    `json:"reward_on_free"`      // reward points granted after a successful free submission
	TokenTTLSec       int    `json:"token_ttl_sec"`       // session token lifetime in seconds
	MaxAttempts       int    `json:"max_attempts"`        // analysis attempts before giving up
	AttemptTimeoutSec int    `json:"attempt_timeout_sec"` // per-attempt timeout in seconds
}
