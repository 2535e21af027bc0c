package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
)

func (s *Store) GetSession() (models.Session, error) {
	var (
		sess       models.Session
		expiresAt  string
		persistent int
	)
	row := s.db.QueryRow("SELECT token, username, expires_at, persistent FROM session WHERE id = 1")
	if err := row.Scan(&sess.Token, &sess.Username, &expiresAt, &persistent); err != nil {
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
	sess.Persistent = persistent != 0

	return sess, nil
}

func (s *Store) SaveSession(sess models.Session) error {
	persistent := 0
	if sess.Persistent {
		persistent = 1
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO session (id, token, username, expires_at, persistent) VALUES (1, ?, ?, ?, ?)",
		sess.Token, sess.Username, sess.ExpiresAt.UTC().Format(time.RFC3339), persistent,
	)
	return err
}

func (s *Store) DeleteSession() error {
	_, err := s.db.Exec("DELETE FROM session WHERE id = 1")
	return err
}
