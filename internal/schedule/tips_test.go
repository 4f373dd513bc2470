package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubjects(t *testing.T) {
	assert.Equal(t, []string{"Math", "Physics"}, ParseSubjects("Math, Physics"))
	assert.Equal(t, []string{"Biology"}, ParseSubjects(" Biology , "))
	assert.Equal(t, defaultSubjects, ParseSubjects(""))
	assert.Equal(t, defaultSubjects, ParseSubjects(" , ,"))
}

func TestFormatTimeDisplay(t *testing.T) {
	assert.Equal(t, "09:30 AM", FormatTimeDisplay("09:30"))
	assert.Equal(t, "02:15 PM", FormatTimeDisplay("14:15"))
	assert.Equal(t, "bogus", FormatTimeDisplay("bogus"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 minutes", FormatDuration(45))
	assert.Equal(t, "1 hour", FormatDuration(60))
	assert.Equal(t, "2 hours", FormatDuration(120))
	assert.Equal(t, "1h 30m", FormatDuration(90))
}

func TestTimeOfDayCategory(t *testing.T) {
	assert.Equal(t, "morning", TimeOfDayCategory(9))
	assert.Equal(t, "afternoon", TimeOfDayCategory(12))
	assert.Equal(t, "evening", TimeOfDayCategory(18))
	assert.Equal(t, "night", TimeOfDayCategory(23))
	assert.Equal(t, "night", TimeOfDayCategory(3))
}

func TestStudyTips(t *testing.T) {
	tips := StudyTips("Math", "morning")
	assert.Contains(t, tips, "Work through problems step by step")
	assert.Contains(t, tips, "Perfect time for challenging subjects - your brain is fresh!")

	// unknown subject and period fall back to generic advice
	tips = StudyTips("Basket Weaving", "noon")
	assert.Contains(t, tips, "Stay focused and take notes")
	assert.Contains(t, tips, "Good time for review and practice problems")
}
