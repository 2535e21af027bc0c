package models

import "time"

// AnalysisResult is the outcome of one remote mood analysis.
type AnalysisResult struct {
	Mood     string `json:"mood"`
	Feedback string `json:"feedback"`
}

// MoodEntry is one recorded mood, owned by the remote service. The client
// only reads these back for the weekly view and caches the most recent
// analysis locally.
type MoodEntry struct {
	ID       string    `json:"id,omitempty"`
	Mood     string    `json:"mood"`
	Date     time.Time `json:"date"`
	DayName  string    `json:"dayName"`
	DayIndex int       `json:"dayIndex"` // 0=Sunday .. 6=Saturday
}
