// Package api is the HTTP client for the remote AuraQ service. Mood analysis
// happens entirely server-side; this package only moves JSON over HTTPS.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/auraq/auraq-cli/internal/models"
)

var (
	// ErrUnauthorized is returned for any 401 response; the caller must
	// treat the session as expired and re-authenticate.
	ErrUnauthorized = errors.New("authentication failed")
	// ErrServer is returned for any other non-2xx response.
	ErrServer = errors.New("server error")
	// ErrInvalidResponse is returned when a 2xx response is missing
	// required fields or is not valid JSON.
	ErrInvalidResponse = errors.New("invalid response from server")
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// SetToken sets the bearer token attached to authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, int, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", 0, err
	}
	if resp.Token == "" {
		if resp.Error != "" {
			return "", 0, fmt.Errorf("%w: %s", ErrInvalidResponse, resp.Error)
		}
		return "", 0, fmt.Errorf("%w: missing token", ErrInvalidResponse)
	}
	return resp.Token, resp.ExpiresIn, nil
}

// Register creates a new account and returns the initial session token,
// which may be empty if the server requires a separate login.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Analyze submits a journal entry for mood analysis. A 2xx response missing
// either the mood or the feedback is reported as ErrInvalidResponse.
func (c *Client) Analyze(ctx context.Context, story string) (models.AnalysisResult, error) {
	var resp analyzeResponse
	err := c.do(ctx, http.MethodPost, "/analyze", analyzeRequest{Story: story}, &resp)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	if resp.Error != "" {
		return models.AnalysisResult{}, fmt.Errorf("%w: %s", ErrServer, resp.Error)
	}
	if resp.Mood == "" || resp.Feedback == "" {
		return models.AnalysisResult{}, fmt.Errorf("%w: missing mood or feedback", ErrInvalidResponse)
	}
	return models.AnalysisResult{Mood: resp.Mood, Feedback: resp.Feedback}, nil
}

// Rewards fetches the authoritative credit counters.
func (c *Client) Rewards(ctx context.Context) (RewardsState, error) {
	var resp RewardsState
	if err := c.do(ctx, http.MethodGet, "/user/rewards", nil, &resp); err != nil {
		return RewardsState{}, err
	}
	return resp, nil
}

// UpdateRewards pushes the reward balance to the server.
func (c *Client) UpdateRewards(ctx context.Context, rewards int) error {
	return c.do(ctx, http.MethodPut, "/user/rewards", updateRewardsRequest{Rewards: rewards}, nil)
}

// IncrementDailyCount asks the server to bump the daily submission count and
// returns the new count.
func (c *Client) IncrementDailyCount(ctx context.Context) (int, error) {
	var resp dailyCountResponse
	if err := c.do(ctx, http.MethodPost, "/user/daily-count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.DailyCount, nil
}

// WeeklyMood fetches the recorded mood history for the weekly view.
func (c *Client) WeeklyMood(ctx context.Context) ([]models.MoodEntry, error) {
	var resp weeklyMoodResponse
	if err := c.do(ctx, http.MethodGet, "/user/weekly-mood", nil, &resp); err != nil {
		return nil, err
	}
	return resp.WeeklyData, nil
}

// SaveWeeklyMood records a mood entry for the weekly view. A fresh entry ID
// is assigned when the caller has not set one.
func (c *Client) SaveWeeklyMood(ctx context.Context, entry models.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return c.do(ctx, http.MethodPost, "/user/weekly-mood", entry, nil)
}

// Health checks whether the server is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("%w: %s (status %d)", ErrServer, errResp.Error, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
