package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/auraq/auraq-cli/internal/keyring"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/storage"
	"github.com/auraq/auraq-cli/internal/storage/sqlite"
)

func setupManager(t *testing.T) (*Manager, storage.Provider) {
	t.Helper()
	gokeyring.MockInit()
	_ = keyring.Delete()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return NewManager(store), store
}

func TestSetTokenAndGet(t *testing.T) {
	mgr, _ := setupManager(t)

	if err := mgr.SetToken("tok-1", "alice", false, time.Hour); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}

	token, err := mgr.Token()
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	if token != "tok-1" {
		t.Errorf("Token() = %q, want %q", token, "tok-1")
	}
}

func TestTokenNeverReturnsExpired(t *testing.T) {
	mgr, store := setupManager(t)

	// Store a session that expired a minute ago.
	sess := models.Session{
		Token:     "stale",
		Username:  "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	_, err := mgr.Token()
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("Token() error = %v, want ErrNoSession", err)
	}

	// The expired session must have been cleared.
	if _, err := store.GetSession(); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expired session was not cleared, GetSession() error = %v", err)
	}
}

func TestTokenValidUntilExpiry(t *testing.T) {
	mgr, store := setupManager(t)

	sess := models.Session{
		Token:     "tok-ok",
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	token, err := mgr.Token()
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	if token != "tok-ok" {
		t.Errorf("Token() = %q, want %q", token, "tok-ok")
	}
}

func TestIsExpired(t *testing.T) {
	mgr, store := setupManager(t)

	if !mgr.IsExpired() {
		t.Error("IsExpired() = false with no session, want true")
	}

	sess := models.Session{Token: "tok", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if mgr.IsExpired() {
		t.Error("IsExpired() = true for valid session, want false")
	}
}

func TestClearRemovesEverything(t *testing.T) {
	mgr, store := setupManager(t)

	if err := mgr.SetToken("tok-1", "alice", true, time.Hour); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	if err := store.SaveLastAnalysis("alice", models.AnalysisResult{Mood: "joy", Feedback: "nice"}); err != nil {
		t.Fatalf("SaveLastAnalysis() failed: %v", err)
	}

	if err := mgr.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	if _, err := store.GetSession(); !errors.Is(err, storage.ErrNotFound) {
		t.Error("Clear() did not remove the session")
	}
	if _, err := store.GetLastAnalysis("alice"); !errors.Is(err, storage.ErrNotFound) {
		t.Error("Clear() did not remove the cached analysis")
	}
	if _, err := keyring.Get(); !errors.Is(err, keyring.ErrNotFound) {
		t.Error("Clear() did not remove the remembered session")
	}
}

func TestMigrateRemembered(t *testing.T) {
	mgr, store := setupManager(t)

	remembered := keyring.Remembered{
		Token:     "tok-remembered",
		Username:  "alice",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := keyring.Save(remembered); err != nil {
		t.Fatalf("keyring.Save() failed: %v", err)
	}

	migrated, err := mgr.MigrateRemembered()
	if err != nil {
		t.Fatalf("MigrateRemembered() failed: %v", err)
	}
	if !migrated {
		t.Fatal("MigrateRemembered() = false, want true")
	}

	sess, err := store.GetSession()
	if err != nil {
		t.Fatalf("GetSession() failed: %v", err)
	}
	if sess.Token != "tok-remembered" || sess.Username != "alice" || !sess.Persistent {
		t.Errorf("migrated session = %+v", sess)
	}
}

func TestMigrateRememberedSkipsWhenActive(t *testing.T) {
	mgr, _ := setupManager(t)

	if err := mgr.SetToken("tok-active", "alice", false, time.Hour); err != nil {
		t.Fatalf("SetToken() failed: %v", err)
	}
	if err := keyring.Save(keyring.Remembered{Token: "tok-old", Username: "bob", ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("keyring.Save() failed: %v", err)
	}

	migrated, err := mgr.MigrateRemembered()
	if err != nil {
		t.Fatalf("MigrateRemembered() failed: %v", err)
	}
	if migrated {
		t.Error("MigrateRemembered() = true with valid active session, want false")
	}

	token, err := mgr.Token()
	if err != nil || token != "tok-active" {
		t.Errorf("active session was replaced: token=%q err=%v", token, err)
	}
}

func TestMigrateRememberedExpired(t *testing.T) {
	mgr, _ := setupManager(t)

	if err := keyring.Save(keyring.Remembered{Token: "tok-old", Username: "alice", ExpiresAt: time.Now().Add(-time.Hour)}); err != nil {
		t.Fatalf("keyring.Save() failed: %v", err)
	}

	migrated, err := mgr.MigrateRemembered()
	if err != nil {
		t.Fatalf("MigrateRemembered() failed: %v", err)
	}
	if migrated {
		t.Error("MigrateRemembered() = true for expired remembered session, want false")
	}

	// The expired remembered copy should have been discarded.
	if _, err := keyring.Get(); !errors.Is(err, keyring.ErrNotFound) {
		t.Error("expired remembered session was not deleted")
	}
}

func TestMigrateRememberedNothingStored(t *testing.T) {
	mgr, _ := setupManager(t)

	migrated, err := mgr.MigrateRemembered()
	if err != nil {
		t.Fatalf("MigrateRemembered() failed: %v", err)
	}
	if migrated {
		t.Error("MigrateRemembered() = true with empty keyring, want false")
	}
}
