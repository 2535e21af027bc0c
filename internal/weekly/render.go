package weekly

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var moodColors = map[string]lipgloss.Color{
	"joy":      lipgloss.Color("#4CAF50"),
	"sadness":  lipgloss.Color("#2196F3"),
	"anger":    lipgloss.Color("#F44336"),
	"fear":     lipgloss.Color("#9C27B0"),
	"surprise": lipgloss.Color("#FF9800"),
	"disgust":  lipgloss.Color("#795548"),
	"neutral":  lipgloss.Color("#607D8B"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dayTodayStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	emptyDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	insightStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("252"))
)

const barWidth = 20

// MoodColor returns the display color for a mood, defaulting to the neutral
// gray for moods the palette does not know.
func MoodColor(mood string) lipgloss.Color {
	if c, ok := moodColors[strings.ToLower(mood)]; ok {
		return c
	}
	return moodColors["neutral"]
}

// Render formats the report for terminal output.
func Render(r Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Last 7 Days Overview"))
	b.WriteString("\n\n")

	if r.Entries == 0 {
		b.WriteString(labelStyle.Render("No mood data recorded this week."))
		b.WriteString("\n")
		b.WriteString(insightStyle.Render(r.Insight))
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Predominant mood:"), r.Predominant)
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("Total entries:"), r.Entries)

	for _, share := range r.Distribution {
		filled := share.Percentage * barWidth / 100
		bar := lipgloss.NewStyle().
			Foreground(MoodColor(share.Mood)).
			Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%-10s %s %3d%%\n", share.Mood, bar, share.Percentage)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Daily Breakdown"))
	b.WriteString("\n")

	for _, day := range r.Days {
		name := day.DayName
		if day.IsToday {
			name = dayTodayStyle.Render(name)
		}
		if day.Mood == "" {
			fmt.Fprintf(&b, "  %s  %s\n", name, emptyDayStyle.Render("no entries"))
			continue
		}
		dot := lipgloss.NewStyle().Foreground(MoodColor(day.Mood)).Render("●")
		fmt.Fprintf(&b, "  %s  %s %s (%d)\n", name, dot, day.Mood, day.Count)
	}

	b.WriteString("\n")
	b.WriteString(insightStyle.Render(r.Insight))
	b.WriteString("\n")

	return b.String()
}
