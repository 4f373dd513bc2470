package schedule

import (
	"errors"
	"fmt"
	"regexp"
)

var clockRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClock reports whether s is a valid 24-hour HH:MM time.
func ValidClock(s string) bool {
	return clockRe.MatchString(s)
}

func parseClock(s string) (int, error) {
	if !ValidClock(s) {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	var h, m int
	fmt.Sscanf(s, "%d:%d", &h, &m)
	return h*60 + m, nil
}

// formatClock renders minutes-since-midnight as HH:MM, wrapping past 24h.
func formatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", (mins/60)%24, mins%60)
}

// PlaceBlocks lays out study and break blocks sequentially from the
// requested start time, hardest subjects first, adjusting each block length
// for the hour of day. Blocks are contiguous: every block starts where the
// previous one ended.
//
// Placement does not truncate against EndTime; a long subject list can run
// past the end of day. When that happens the schedule carries a warning note
// instead of a silently shortened plan.
func PlaceBlocks(prefs Preferences) (*Schedule, error) {
	if len(prefs.Subjects) == 0 {
		return nil, errors.New("at least one subject is required")
	}
	if prefs.StudyDuration <= 0 {
		return nil, errors.New("study_duration must be positive")
	}
	if prefs.BreakDuration < 0 {
		return nil, errors.New("break_duration must not be negative")
	}

	cur, err := parseClock(prefs.StartTime)
	if err != nil {
		return nil, err
	}

	ordered := OrderByDifficulty(prefs.Subjects)

	var (
		blocks         []Block
		totalStudyTime int
		totalBreakTime int
	)

	for i, subject := range ordered {
		hour := (cur / 60) % 24
		difficulty := SubjectDifficulty(subject)

		multiplier := DurationMultiplier(hour) * DifficultyPenalty(hour, difficulty)
		duration := int(float64(prefs.StudyDuration) * multiplier) // truncate, not round

		optimal := IsOptimalWindow(hour, difficulty)
		blocks = append(blocks, Block{
			Subject:     subject,
			StartTime:   formatClock(cur),
			EndTime:     formatClock(cur + duration),
			Type:        "study",
			Duration:    duration,
			Difficulty:  difficulty,
			OptimalTime: &optimal,
		})

		totalStudyTime += duration
		cur += duration

		if i < len(ordered)-1 {
			adjusted := adjustBreakDuration(prefs.BreakDuration, duration)
			blocks = append(blocks, Block{
				Subject:   "Break",
				StartTime: formatClock(cur),
				EndTime:   formatClock(cur + adjusted),
				Type:      "break",
				Duration:  adjusted,
				Activity:  SuggestBreakActivity(adjusted),
			})

			totalBreakTime += adjusted
			cur += adjusted
		}
	}

	wellness := CalculateWellnessScore(blocks, totalStudyTime, totalBreakTime)

	sched := &Schedule{
		StudyBlocks:       blocks,
		TotalStudyTime:    totalStudyTime,
		TotalBreakTime:    totalBreakTime,
		WellnessScore:     wellness,
		EfficiencyScore:   CalculateEfficiencyScore(blocks),
		ScheduleRating:    RatingFor(wellness),
		OptimizationNotes: GenerateOptimizationNotes(blocks),
	}

	if endMins, err := parseClock(prefs.EndTime); err == nil && cur > endMins {
		sched.OptimizationNotes = append(sched.OptimizationNotes,
			fmt.Sprintf("⚠️ Planned blocks run until %s, past the requested end time %s",
				formatClock(cur), prefs.EndTime))
	}

	metrics := StudyEfficiency(blocks, totalStudyTime+totalBreakTime)
	sched.EfficiencyMetrics = &metrics

	return sched, nil
}

// adjustBreakDuration lengthens the break after an intense study block,
// capped at 20 minutes.
func adjustBreakDuration(baseBreak, studyDuration int) int {
	if studyDuration >= 90 {
		adjusted := baseBreak + 5
		if adjusted > 20 {
			adjusted = 20
		}
		return adjusted
	}
	return baseBreak
}

// SuggestBreakActivity picks a recovery activity that fits the break length.
func SuggestBreakActivity(breakDuration int) string {
	if breakDuration <= 10 {
		return "Deep breathing or stretching"
	}
	if breakDuration <= 20 {
		return "Short walk or hydration"
	}
	return "Physical exercise or snack"
}
