package sqlite

import (
	"fmt"

	"github.com/auraq/auraq-cli/internal/models"
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

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("server_url", settings.ServerURL); err != nil {
		return err
	}
	if _, err := stmt.Exec("free_limit", fmt.Sprintf("%d", settings.FreeLimit)); err != nil {
		return err
	}
	if _, err := stmt.Exec("paid_cost", fmt.Sprintf("%d", settings.PaidCost)); err != nil {
		return err
	}
	if _, err := stmt.Exec("reward_on_free", fmt.Sprintf("%d", settings.RewardOnFree)); err != nil {
		return err
	}
	if _, err := stmt.Exec("token_ttl_sec", fmt.Sprintf("%d", settings.TokenTTLSec)); err != nil {
		return err
	}
	if _, err := stmt.Exec("max_attempts", fmt.Sprintf("%d", settings.MaxAttempts)); err != nil {
		return err
	}
	if _, err := stmt.Exec("attempt_timeout_sec", fmt.Sprintf("%d", settings.AttemptTimeoutSec)); err != nil {
		return err
	}

	return tx.Commit()
}
