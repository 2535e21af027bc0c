package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
)

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func moodEntryFixture() models.MoodEntry {
	return models.MoodEntry{Mood: "joy", Date: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), DayName: "Sun", DayIndex: 0}
}

func TestAnalyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization header = %q, want %q", got, "Bearer tok-1")
		}
		w.Write([]byte(`{"mood": "joy", "feedback": "Keep it up!"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-1")

	result, err := c.Analyze(context.Background(), "a good day")
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if result.Mood != "joy" || result.Feedback != "Keep it up!" {
		t.Errorf("Analyze() = %+v", result)
	}
}

func TestAnalyzeMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mood": "joy"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Analyze(context.Background(), "text")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Analyze() error = %v, want ErrInvalidResponse", err)
	}
}

func TestUnauthorizedMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("stale")

	_, err := c.Rewards(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Rewards() error = %v, want ErrUnauthorized", err)
	}
}

func TestServerErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "model unavailable"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Analyze(context.Background(), "text")
	if !errors.Is(err, ErrServer) {
		t.Errorf("Analyze() error = %v, want ErrServer", err)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"token": "tok-xyz", "expires_in": 3600}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	token, ttl, err := c.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if token != "tok-xyz" {
		t.Errorf("Login() token = %q, want %q", token, "tok-xyz")
	}
	if ttl != 3600 {
		t.Errorf("Login() ttl = %d, want 3600", ttl)
	}
}

func TestLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.Login(context.Background(), "alice", "secret")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Login() error = %v, want ErrInvalidResponse", err)
	}
}

func TestWeeklyMood(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weekly_data": [{"mood": "joy", "date": "2026-08-30T10:00:00Z", "dayName": "Sun", "dayIndex": 0}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	entries, err := c.WeeklyMood(context.Background())
	if err != nil {
		t.Fatalf("WeeklyMood() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("WeeklyMood() returned %d entries, want 1", len(entries))
	}
	if entries[0].Mood != "joy" || entries[0].DayName != "Sun" {
		t.Errorf("WeeklyMood()[0] = %+v", entries[0])
	}
}

func TestSaveWeeklyMoodAssignsID(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := jsonDecode(r, &gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.SaveWeeklyMood(context.Background(), moodEntryFixture())
	if err != nil {
		t.Fatalf("SaveWeeklyMood() failed: %v", err)
	}
	if id, ok := gotBody["id"].(string); !ok || id == "" {
		t.Error("SaveWeeklyMood() should assign a non-empty entry id")
	}
}

func TestIncrementDailyCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.Write([]byte(`{"daily_count": 3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	count, err := c.IncrementDailyCount(context.Background())
	if err != nil {
		t.Fatalf("IncrementDailyCount() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("IncrementDailyCount() = %d, want 3", count)
	}
}
