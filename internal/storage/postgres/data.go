package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
)

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not initialized, run 'auraq init' first")
	}
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "server_url":
			settings.ServerURL = value
		case "free_limit":
			if _, err := fmt.Sscanf(value, "%d", &settings.FreeLimit); err != nil {
				return models.Settings{}, fmt.Errorf("parsing free_limit: %w", err)
			}
		case "paid_cost":
			if _, err := fmt.Sscanf(value, "%d", &settings.PaidCost); err != nil {
				return models.Settings{}, fmt.Errorf("parsing paid_cost: %w", err)
			}
		case "reward_on_free":
			if _, err := fmt.Sscanf(value, "%d", &settings.RewardOnFree); err != nil {
				return models.Settings{}, fmt.Errorf("parsing reward_on_free: %w", err)
			}
		case "token_ttl_sec":
			if _, err := fmt.Sscanf(value, "%d", &settings.TokenTTLSec); err != nil {
				return models.Settings{}, fmt.Errorf("parsing token_ttl_sec: %w", err)
			}
		case "max_attempts":
			if _, err := fmt.Sscanf(value, "%d", &settings.MaxAttempts); err != nil {
				return models.Settings{}, fmt.Errorf("parsing max_attempts: %w", err)
			}
		case "attempt_timeout_sec":
			if _, err := fmt.Sscanf(value, "%d", &settings.AttemptTimeoutSec); err != nil {
				return models.Settings{}, fmt.Errorf("parsing attempt_timeout_sec: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{"server_url", settings.ServerURL},
		{"free_limit", fmt.Sprintf("%d", settings.FreeLimit)},
		{"paid_cost", fmt.Sprintf("%d", settings.PaidCost)},
		{"reward_on_free", fmt.Sprintf("%d", settings.RewardOnFree)},
		{"token_ttl_sec", fmt.Sprintf("%d", settings.TokenTTLSec)},
		{"max_attempts", fmt.Sprintf("%d", settings.MaxAttempts)},
		{"attempt_timeout_sec", fmt.Sprintf("%d", settings.AttemptTimeoutSec)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetSession() (models.Session, error) {
	var (
		sess      models.Session
		expiresAt string
	)
	row := s.db.QueryRow("SELECT token, username, expires_at, persistent FROM session WHERE id = 1")
	if err := row.Scan(&sess.Token, &sess.Username, &expiresAt, &sess.Persistent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, storage.ErrNotFound
		}
		return models.Session{}, err
	}

	t, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return models.Session{}, err
	}
	sess.ExpiresAt = t

	return sess, nil
}

func (s *Store) SaveSession(sess models.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO session (id, token, username, expires_at, persistent) VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, username = EXCLUDED.username,
		 expires_at = EXCLUDED.expires_at, persistent = EXCLUDED.persistent`,
		sess.Token, sess.Username, sess.ExpiresAt.UTC().Format(time.RFC3339), sess.Persistent,
	)
	return err
}

func (s *Store) DeleteSession() error {
	_, err := s.db.Exec("DELETE FROM session WHERE id = 1")
	return err
}

func (s *Store) GetCreditState(username string) (models.CreditState, error) {
	var state models.CreditState
	row := s.db.QueryRow("SELECT daily_count, rewards FROM credit_state WHERE username = $1", username)
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
		`INSERT INTO credit_state (username, daily_count, rewards, synced_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO UPDATE SET daily_count = EXCLUDED.daily_count,
		 rewards = EXCLUDED.rewards, synced_at = EXCLUDED.synced_at`,
		username, state.DailyCount, state.Rewards, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetLastAnalysis(username string) (models.AnalysisResult, error) {
	var result models.AnalysisResult
	row := s.db.QueryRow("SELECT mood, feedback FROM last_analysis WHERE username = $1", username)
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
		`INSERT INTO last_analysis (username, mood, feedback, created_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO UPDATE SET mood = EXCLUDED.mood, feedback = EXCLUDED.feedback,
		 created_at = EXCLUDED.created_at`,
		username, result.Mood, result.Feedback, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) DeleteLastAnalysis(username string) error {
	_, err := s.db.Exec("DELETE FROM last_analysis WHERE username = $1", username)
	return err
}
