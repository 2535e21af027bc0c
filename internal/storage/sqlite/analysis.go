package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
)

func (s *Store) GetLastAnalysis(username string) (models.AnalysisResult, error) {
	var result models.AnalysisResult
	row := s.db.QueryRow("SELECT mood, feedback FROM last_analysis WHERE username = ?", username)
	if err := row.Scan(&result.Mood, &result.Feedback); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AnalysisResult{}, storage.ErrNotFound
		}
		return models.AnalysisResult{}, err
	}
	return result, nil
}

func (s *Store) SaveLastAnalysis(username string, result models.AnalysisResult) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO last_analysis (username, mood, feedback, created_at) VALUES (?, ?, ?, ?)",
		username, result.Mood, result.Feedback, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) DeleteLastAnalysis(username string) error {
	_, err := s.db.Exec("DELETE FROM last_analysis WHERE username = ?", username)
	return err
}
