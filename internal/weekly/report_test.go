package weekly

import (
	"strings"
	"testing"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
)

func entryOn(mood string, date time.Time) models.MoodEntry {
	return models.MoodEntry{
		Mood:     mood,
		Date:     date,
		DayName:  date.Format("Mon"),
		DayIndex: int(date.Weekday()),
	}
}

func TestBuildFiltersToTrailingWeek(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	entries := []models.MoodEntry{
		entryOn("joy", now),
		entryOn("sadness", now.AddDate(0, 0, -3)),
		entryOn("anger", now.AddDate(0, 0, -10)), // outside the window
	}

	r := Build(entries, now)
	if r.Entries != 2 {
		t.Errorf("Entries = %d, want 2", r.Entries)
	}
	for _, share := range r.Distribution {
		if share.Mood == "anger" {
			t.Error("entry older than 7 days appeared in the distribution")
		}
	}
}

func TestBuildWindowStartsAtMidnight(t *testing.T) {
	// Monday evening. An entry from the previous Monday, later in the day,
	// is more than six calendar days old and must not land in today's
	// column just because the weekday name matches.
	now := time.Date(2026, 3, 16, 18, 0, 0, 0, time.UTC)
	lastMonday := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)

	entries := []models.MoodEntry{
		entryOn("joy", now),
		entryOn("anger", lastMonday),
	}

	r := Build(entries, now)
	if r.Entries != 1 {
		t.Errorf("Entries = %d, want 1", r.Entries)
	}
	if r.Days[6].Mood != "joy" || r.Days[6].Count != 1 {
		t.Errorf("Days[6] = %+v, want joy with 1 entry", r.Days[6])
	}

	// Midnight of the earliest window day is still inside.
	edge := entryOn("sadness", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	r = Build(append(entries, edge), now)
	if r.Entries != 2 {
		t.Errorf("Entries with edge-of-window entry = %d, want 2", r.Entries)
	}
	if r.Days[0].Mood != "sadness" {
		t.Errorf("Days[0].Mood = %q, want sadness", r.Days[0].Mood)
	}
}

func TestBuildEmpty(t *testing.T) {
	r := Build(nil, time.Now())
	if r.Entries != 0 {
		t.Errorf("Entries = %d, want 0", r.Entries)
	}
	if r.Predominant != "" {
		t.Errorf("Predominant = %q, want empty", r.Predominant)
	}
	if r.Insight == "" {
		t.Error("Insight is empty for an empty week")
	}
}

func TestBuildDistributionAndPredominant(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	entries := []models.MoodEntry{
		entryOn("joy", now),
		entryOn("joy", now.AddDate(0, 0, -1)),
		entryOn("joy", now.AddDate(0, 0, -2)),
		entryOn("sadness", now.AddDate(0, 0, -3)),
	}

	r := Build(entries, now)
	if r.Predominant != "joy" {
		t.Errorf("Predominant = %q, want %q", r.Predominant, "joy")
	}
	if len(r.Distribution) != 2 {
		t.Fatalf("len(Distribution) = %d, want 2", len(r.Distribution))
	}
	if r.Distribution[0].Percentage != 75 {
		t.Errorf("joy percentage = %d, want 75", r.Distribution[0].Percentage)
	}
	if r.Distribution[1].Mood != "sadness" || r.Distribution[1].Percentage != 25 {
		t.Errorf("Distribution[1] = %+v, want sadness at 25%%", r.Distribution[1])
	}
}

func TestBuildDays(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) // a Saturday

	entries := []models.MoodEntry{
		entryOn("joy", now),
		entryOn("joy", now),
		entryOn("sadness", now.AddDate(0, 0, -2)),
	}

	r := Build(entries, now)

	today := r.Days[6]
	if !today.IsToday {
		t.Error("Days[6].IsToday = false, want true")
	}
	if today.DayName != "Sat" {
		t.Errorf("Days[6].DayName = %q, want Sat", today.DayName)
	}
	if today.Mood != "joy" || today.Count != 2 {
		t.Errorf("Days[6] = %+v, want joy with 2 entries", today)
	}

	if r.Days[4].Mood != "sadness" {
		t.Errorf("Days[4].Mood = %q, want sadness", r.Days[4].Mood)
	}
	if r.Days[0].Mood != "" {
		t.Errorf("Days[0].Mood = %q, want empty for a day without entries", r.Days[0].Mood)
	}
}

func TestInsightThresholds(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	week := func(moods ...string) []models.MoodEntry {
		var entries []models.MoodEntry
		for i, m := range moods {
			entries = append(entries, entryOn(m, now.AddDate(0, 0, -(i%7))))
		}
		return entries
	}

	tests := []struct {
		name  string
		moods []models.MoodEntry
		want  string
	}{
		{"single mood", week("joy", "joy"), "consistently joy"},
		{"dominated", week("joy", "joy", "joy", "joy", "sadness"), "joy"},
		{"mostly", week("joy", "joy", "joy", "sadness", "anger"), "joy"},
		{"varied", week("joy", "joy", "sadness", "sadness", "anger", "fear"), "varied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Build(tt.moods, now)
			if !strings.Contains(strings.ToLower(r.Insight), tt.want) {
				t.Errorf("Insight = %q, want it to mention %q", r.Insight, tt.want)
			}
		})
	}
}

func TestInsightDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		entryOn("joy", now),
		entryOn("joy", now.AddDate(0, 0, -1)),
		entryOn("sadness", now.AddDate(0, 0, -2)),
	}

	first := Build(entries, now).Insight
	for i := 0; i < 5; i++ {
		if got := Build(entries, now).Insight; got != first {
			t.Fatalf("Insight changed between renders: %q vs %q", first, got)
		}
	}
}

func TestRenderContainsSections(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	r := Build([]models.MoodEntry{entryOn("joy", now)}, now)

	out := Render(r)
	for _, want := range []string{"Last 7 Days Overview", "Daily Breakdown", "joy"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(Build(nil, time.Now()))
	if !strings.Contains(out, "No mood data recorded this week.") {
		t.Error("Render() of an empty week missing the empty-state message")
	}
}
