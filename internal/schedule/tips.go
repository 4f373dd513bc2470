package schedule

import (
	"fmt"
	"strings"
	"time"
)

var defaultSubjects = []string{"Math", "Physics", "Chemistry", "English"}

// ParseSubjects splits a comma-separated subject list, dropping empty
// entries. An empty input falls back to the default subject set.
func ParseSubjects(input string) []string {
	if strings.TrimSpace(input) == "" {
		return append([]string(nil), defaultSubjects...)
	}

	var subjects []string
	for _, s := range strings.Split(input, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			subjects = append(subjects, s)
		}
	}
	if len(subjects) == 0 {
		return append([]string(nil), defaultSubjects...)
	}
	return subjects
}

// FormatTimeDisplay converts HH:MM into a 12-hour display string.
// Invalid input is returned unchanged.
func FormatTimeDisplay(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("03:04 PM")
}

// FormatDuration renders minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60

	if remaining == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

var timeOfDayTips = map[string][]string{
	"morning": {
		"Perfect time for challenging subjects - your brain is fresh!",
		"Start with the most difficult material while energy is high",
		"Use active learning techniques like summarizing and questioning",
	},
	"afternoon": {
		"Good time for review and practice problems",
		"Take advantage of stable energy levels",
		"Consider group study or collaborative learning",
	},
	"evening": {
		"Focus on review and consolidation",
		"Light reading and note organization work well",
		"Avoid starting new complex topics",
	},
	"night": {
		"Time to wind down - avoid intensive studying",
		"Light review or planning for tomorrow",
		"Consider relaxation techniques instead",
	},
}

var subjectTips = map[string][]string{
	"math":      {"Work through problems step by step", "Use visual aids and diagrams"},
	"physics":   {"Connect concepts to real-world examples", "Practice problem-solving methods"},
	"chemistry": {"Use molecular models and periodic table", "Practice balancing equations"},
	"english":   {"Read actively with note-taking", "Analyze themes and literary devices"},
	"history":   {"Create timelines and concept maps", "Connect events to modern contexts"},
}

// StudyTips combines time-of-day advice with subject-specific pointers.
func StudyTips(subject, timeOfDay string) []string {
	general, ok := timeOfDayTips[timeOfDay]
	if !ok {
		general = timeOfDayTips["afternoon"]
	}

	specific, ok := subjectTips[strings.ToLower(subject)]
	if !ok {
		specific = []string{"Stay focused and take notes"}
	}

	tips := make([]string, 0, len(general)+len(specific))
	tips = append(tips, general...)
	tips = append(tips, specific...)
	return tips
}
