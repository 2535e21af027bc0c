// Package weekly aggregates mood history into the trailing-7-day report
// shown by the week command and the dashboard.
package weekly

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/auraq/auraq-cli/internal/models"
)

// MoodShare is one mood's slice of the week.
type MoodShare struct {
	Mood       string
	Count      int
	Percentage int
}

// DaySummary is the most frequent mood recorded on one calendar day.
type DaySummary struct {
	DayName string
	Date    time.Time
	Mood    string
	Count   int
	IsToday bool
}

// Report is the derived weekly view. Days always holds seven entries ending
// with today; days without entries carry an empty Mood.
type Report struct {
	Entries      int
	Predominant  string
	Distribution []MoodShare
	Days         [7]DaySummary
	Insight      string
}

// Build filters entries to the seven calendar days ending today and derives
// the distribution, per-day breakdown, and insight sentence. The window
// starts at midnight six days back so an entry from a week ago can never
// share a column with today.
func Build(entries []models.MoodEntry, now time.Time) Report {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)

	var week []models.MoodEntry
	for _, e := range entries {
		if !e.Date.Before(start) {
			week = append(week, e)
		}
	}

	var report Report
	report.Entries = len(week)

	counts := map[string]int{}
	byDay := map[string][]string{}
	for _, e := range week {
		counts[e.Mood]++
		day := e.DayName
		if day == "" {
			day = e.Date.Format("Mon")
		}
		byDay[day] = append(byDay[day], e.Mood)
	}

	report.Distribution = distribution(counts, len(week))
	if len(report.Distribution) > 0 {
		report.Predominant = report.Distribution[0].Mood
	}

	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i-6)
		day := DaySummary{
			DayName: date.Format("Mon"),
			Date:    date,
			IsToday: i == 6,
		}
		if moods := byDay[day.DayName]; len(moods) > 0 {
			day.Mood = topMood(moods)
			day.Count = len(moods)
		}
		report.Days[i] = day
	}

	report.Insight = insight(report.Distribution, len(week))
	return report
}

// distribution returns shares sorted by count descending, with mood name as
// a tiebreaker so the output is stable.
func distribution(counts map[string]int, total int) []MoodShare {
	if total == 0 {
		return nil
	}
	shares := make([]MoodShare, 0, len(counts))
	for mood, count := range counts {
		shares = append(shares, MoodShare{
			Mood:       mood,
			Count:      count,
			Percentage: int(float64(count)/float64(total)*100 + 0.5),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Mood < shares[j].Mood
	})
	return shares
}

func topMood(moods []string) string {
	counts := map[string]int{}
	for _, m := range moods {
		counts[m]++
	}
	best, bestCount := "", 0
	for mood, count := range counts {
		if count > bestCount || (count == bestCount && mood < best) {
			best, bestCount = mood, count
		}
	}
	return best
}

// insight mirrors the dashboard copy: >70% dominated, >50% mostly, else
// varied. The option picked within each bucket keys off the entry count so
// repeated renders of the same week agree.
func insight(shares []MoodShare, total int) string {
	if total == 0 {
		return "Start journaling to see your mood patterns!"
	}

	primary := shares[0]
	if len(shares) == 1 {
		return fmt.Sprintf("You've been feeling consistently %s this week.", strings.ToLower(primary.Mood))
	}
	secondary := shares[1]

	var options []string
	switch {
	case primary.Percentage > 70:
		options = []string{
			fmt.Sprintf("Your week has been dominated by %s feelings (%d%%). Keep tracking to see how your mood evolves.", strings.ToLower(primary.Mood), primary.Percentage),
			fmt.Sprintf("You've been predominantly %s (%d%%) this week. Keep journaling to track your emotional patterns!", strings.ToLower(primary.Mood), primary.Percentage),
		}
	case primary.Percentage > 50:
		options = []string{
			fmt.Sprintf("You've been mostly %s (%d%%), with some %s (%d%%) moments this week.", strings.ToLower(primary.Mood), primary.Percentage, strings.ToLower(secondary.Mood), secondary.Percentage),
			fmt.Sprintf("This week shows a mix of emotions with %s leading at %d%%, followed by %s at %d%%.", primary.Mood, primary.Percentage, secondary.Mood, secondary.Percentage),
		}
	default:
		options = []string{
			fmt.Sprintf("Your mood has been varied this week, with a mix of %s (%d%%) and %s (%d%%).", strings.ToLower(primary.Mood), primary.Percentage, strings.ToLower(secondary.Mood), secondary.Percentage),
			fmt.Sprintf("You've experienced a balance of different emotions, primarily %s (%d%%) and %s (%d%%).", strings.ToLower(primary.Mood), primary.Percentage, strings.ToLower(secondary.Mood), secondary.Percentage),
		}
	}
	return options[total%len(options)]
}
