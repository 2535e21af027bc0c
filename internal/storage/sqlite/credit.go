package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
)

func (s *Store) GetCreditState(username string) (models.CreditState, error) {
	var state models.CreditState
	row := s.db.QueryRow("SELECT daily_count, rewards FROM credit_state WHERE username = ?", username)
	if err := row.Scan(&state.DailyCount, &state.Rewards); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CreditState{}, storage.ErrNotFound
		}
		return models.CreditState{}, err
	}
	return state, nil
}

func (s *Store) SaveCreditState(username string, state models.CreditState) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO credit_state (username, daily_count, rewards, synced_at) VALUES (?, ?, ?, ?)",
		username, state.DailyCount, state.Rewards, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
