package api

import "github.com/auraq/auraq-cli/internal/models"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in,omitempty"`
	Error     string `json:"error,omitempty"`
}

type analyzeRequest struct {
	Story string `json:"story"`
}

type analyzeResponse struct {
	Mood     string `json:"mood"`
	Feedback string `json:"feedback"`
	Error    string `json:"error,omitempty"`
}

// RewardsState is the server's authoritative view of the credit counters.
type RewardsState struct {
	Rewards    int `json:"rewards"`
	DailyCount int `json:"daily_count"`
}

type updateRewardsRequest struct {
	Rewards int `json:"rewards"`
}

type dailyCountResponse struct {
	DailyCount int `json:"daily_count"`
}

type weeklyMoodResponse struct {
	WeeklyData []models.MoodEntry `json:"weekly_data"`
}

type errorResponse struct {
	Error string `json:"error"`
}
