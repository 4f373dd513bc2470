package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByDifficulty(t *testing.T) {
	ordered := OrderByDifficulty([]string{"English", "Math", "History"})
	assert.Equal(t, []string{"Math", "History", "English"}, ordered)
}

func TestOrderByDifficultyStableTies(t *testing.T) {
	// math, calculus and algorithms all rate 9; input order must survive
	ordered := OrderByDifficulty([]string{"Calculus", "Math", "Algorithms", "English"})
	assert.Equal(t, []string{"Calculus", "Math", "Algorithms", "English"}, ordered)

	// unknown subjects share the default rating and keep their order too
	ordered = OrderByDifficulty([]string{"Basket Weaving", "Knitting", "Math"})
	assert.Equal(t, []string{"Math", "Basket Weaving", "Knitting"}, ordered)
}

func TestSubjectDifficulty(t *testing.T) {
	assert.Equal(t, 9, SubjectDifficulty("Math"))
	assert.Equal(t, 9, SubjectDifficulty("MATHEMATICS"))
	assert.Equal(t, 7, SubjectDifficulty("chemistry"))
	assert.Equal(t, 5, SubjectDifficulty("underwater basket weaving"))
}

func TestDurationMultiplierBoundaries(t *testing.T) {
	// boundary hours belong to both bands; the first band checked wins
	assert.Equal(t, 1.0, DurationMultiplier(11))
	assert.Equal(t, 1.0, DurationMultiplier(15))
	assert.Equal(t, 1.0, DurationMultiplier(17))

	assert.Equal(t, 1.0, DurationMultiplier(9))
	assert.Equal(t, 0.9, DurationMultiplier(12))
	assert.Equal(t, 0.9, DurationMultiplier(20))
	assert.Equal(t, 0.8, DurationMultiplier(21))
	assert.Equal(t, 0.8, DurationMultiplier(8))
	assert.Equal(t, 0.8, DurationMultiplier(0))
}

func TestDifficultyPenalty(t *testing.T) {
	assert.Equal(t, 0.9, DifficultyPenalty(12, 8))
	assert.Equal(t, 0.9, DifficultyPenalty(18, 9))
	assert.Equal(t, 1.0, DifficultyPenalty(11, 9))
	assert.Equal(t, 1.0, DifficultyPenalty(14, 7))
}

func TestIsOptimalWindow(t *testing.T) {
	// hard subjects want morning or mid-afternoon
	assert.True(t, IsOptimalWindow(9, 8))
	assert.True(t, IsOptimalWindow(12, 7))
	assert.True(t, IsOptimalWindow(16, 9))
	assert.False(t, IsOptimalWindow(13, 8))
	assert.False(t, IsOptimalWindow(19, 8))

	// easy subjects just need waking hours
	assert.True(t, IsOptimalWindow(13, 5))
	assert.True(t, IsOptimalWindow(20, 6))
	assert.False(t, IsOptimalWindow(21, 5))
	assert.False(t, IsOptimalWindow(8, 5))
}

func TestPlaceBlocksEndToEnd(t *testing.T) {
	sched, err := PlaceBlocks(Preferences{
		StudyDuration: 90,
		BreakDuration: 15,
		Subjects:      []string{"Math", "English"},
		StartTime:     "09:00",
		EndTime:       "17:00",
	})
	require.NoError(t, err)
	require.Len(t, sched.StudyBlocks, 3)

	math := sched.StudyBlocks[0]
	assert.Equal(t, "Math", math.Subject)
	assert.Equal(t, "09:00", math.StartTime)
	assert.Equal(t, "10:30", math.EndTime)
	assert.Equal(t, 90, math.Duration)
	assert.Equal(t, 9, math.Difficulty)
	require.NotNil(t, math.OptimalTime)
	assert.True(t, *math.OptimalTime)

	// the 90-minute block bumps the 15-minute break to 20
	brk := sched.StudyBlocks[1]
	assert.Equal(t, "break", brk.Type)
	assert.Equal(t, "10:30", brk.StartTime)
	assert.Equal(t, "10:50", brk.EndTime)
	assert.Equal(t, 20, brk.Duration)
	assert.Equal(t, "Short walk or hydration", brk.Activity)

	english := sched.StudyBlocks[2]
	assert.Equal(t, "English", english.Subject)
	assert.Equal(t, "10:50", english.StartTime)
	assert.Equal(t, "12:20", english.EndTime)
	assert.Equal(t, 90, english.Duration)

	assert.Equal(t, 180, sched.TotalStudyTime)
	assert.Equal(t, 20, sched.TotalBreakTime)
	assert.Equal(t, 9.0, sched.WellnessScore)
	assert.Equal(t, 10.0, sched.EfficiencyScore)
	assert.Equal(t, "Excellent", sched.ScheduleRating)
}

func TestPlaceBlocksContiguous(t *testing.T) {
	sched, err := PlaceBlocks(Preferences{
		StudyDuration: 60,
		BreakDuration: 10,
		Subjects:      []string{"Math", "Physics", "Chemistry", "English", "History"},
		StartTime:     "08:15",
		EndTime:       "20:00",
	})
	require.NoError(t, err)

	blocks := sched.StudyBlocks
	require.NotEmpty(t, blocks)
	assert.Equal(t, "08:15", blocks[0].StartTime)

	for i := 1; i < len(blocks); i++ {
		assert.Equal(t, blocks[i-1].EndTime, blocks[i].StartTime,
			"block %d must start where block %d ends", i, i-1)
	}
}

func TestPlaceBlocksAfternoonPenalty(t *testing.T) {
	sched, err := PlaceBlocks(Preferences{
		StudyDuration: 90,
		BreakDuration: 10,
		Subjects:      []string{"Math"},
		StartTime:     "13:00",
	})
	require.NoError(t, err)

	// hour 13: band 2 multiplier 0.9, difficulty 9 penalty 0.9 -> 72 (truncated)
	assert.Equal(t, 72, sched.StudyBlocks[0].Duration)
}

func TestPlaceBlocksNoBreakAfterLastSubject(t *testing.T) {
	sched, err := PlaceBlocks(Preferences{
		StudyDuration: 60,
		BreakDuration: 10,
		Subjects:      []string{"English"},
		StartTime:     "09:00",
	})
	require.NoError(t, err)
	require.Len(t, sched.StudyBlocks, 1)
	assert.Equal(t, "study", sched.StudyBlocks[0].Type)
	assert.Equal(t, 0, sched.TotalBreakTime)
}

func TestPlaceBlocksValidation(t *testing.T) {
	_, err := PlaceBlocks(Preferences{StudyDuration: 60, Subjects: nil, StartTime: "09:00"})
	assert.Error(t, err)

	_, err = PlaceBlocks(Preferences{StudyDuration: 0, Subjects: []string{"Math"}, StartTime: "09:00"})
	assert.Error(t, err)

	_, err = PlaceBlocks(Preferences{StudyDuration: 60, Subjects: []string{"Math"}, StartTime: "9:75"})
	assert.Error(t, err)

	_, err = PlaceBlocks(Preferences{StudyDuration: 60, Subjects: []string{"Math"}, StartTime: "25:00"})
	assert.Error(t, err)

	_, err = PlaceBlocks(Preferences{StudyDuration: 60, Subjects: []string{"Math"}, StartTime: "0900"})
	assert.Error(t, err)
}

func TestPlaceBlocksOverrunNote(t *testing.T) {
	sched, err := PlaceBlocks(Preferences{
		StudyDuration: 90,
		BreakDuration: 15,
		Subjects:      []string{"Math", "Physics", "Chemistry", "English", "History", "Biology"},
		StartTime:     "09:00",
		EndTime:       "12:00",
	})
	require.NoError(t, err)

	// placement never truncates; the overrun shows up as a note instead
	hasOverrun := false
	for _, note := range sched.OptimizationNotes {
		if strings.Contains(note, "past the requested end time") {
			hasOverrun = true
		}
	}
	assert.True(t, hasOverrun, "expected an end-of-day overrun note")
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.True(t, ValidClock("9:30"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9:75"))
	assert.False(t, ValidClock("0900"))
	assert.False(t, ValidClock(""))
}

func TestAdjustBreakDuration(t *testing.T) {
	assert.Equal(t, 20, adjustBreakDuration(15, 90))
	assert.Equal(t, 15, adjustBreakDuration(15, 89))
	assert.Equal(t, 20, adjustBreakDuration(18, 95))
	assert.Equal(t, 10, adjustBreakDuration(5, 120))
}

func TestSuggestBreakActivity(t *testing.T) {
	assert.Equal(t, "Deep breathing or stretching", SuggestBreakActivity(10))
	assert.Equal(t, "Short walk or hydration", SuggestBreakActivity(15))
	assert.Equal(t, "Short walk or hydration", SuggestBreakActivity(20))
	assert.Equal(t, "Physical exercise or snack", SuggestBreakActivity(25))
}
