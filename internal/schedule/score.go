package schedule

import (
	"fmt"
	"math"
)

const optimalBreakRatio = 0.15

// CalculateWellnessScore rates the balance of a finished block sequence on a
// 0-10 scale. It weighs the break-to-study ratio against the 15% target and
// the quality of individual study block lengths.
func CalculateWellnessScore(blocks []Block, studyTime, breakTime int) float64 {
	denom := studyTime
	if denom < 1 {
		denom = 1
	}
	balanceRatio := float64(breakTime) / float64(denom)

	// Can go negative for extreme ratios; the final clamp handles it.
	balanceScore := 10 * (1 - math.Abs(balanceRatio-optimalBreakRatio)/optimalBreakRatio)

	durationScore := 0.0
	studyCount := 0
	for _, b := range blocks {
		if b.Type != "study" {
			continue
		}
		studyCount++
		switch {
		case 60 <= b.Duration && b.Duration <= 120:
			durationScore += 10
		case 45 <= b.Duration && b.Duration <= 150:
			durationScore += 8
		default:
			durationScore += 5
		}
	}
	if studyCount > 0 {
		durationScore /= float64(studyCount)
	}

	wellness := balanceScore*0.4 + durationScore*0.6
	return round1(math.Min(10, math.Max(0, wellness)))
}

// CalculateEfficiencyScore rates how many study blocks landed in an optimal
// time window. Returns 0 when there are no study blocks.
func CalculateEfficiencyScore(blocks []Block) float64 {
	efficiency := 0.0
	studyCount := 0
	for _, b := range blocks {
		if b.Type != "study" {
			continue
		}
		studyCount++
		if b.OptimalTime != nil && *b.OptimalTime {
			efficiency += 10
		} else {
			efficiency += 6
		}
	}
	if studyCount == 0 {
		return 0
	}
	return round1(efficiency / float64(studyCount))
}

// RatingFor turns a wellness score into a display label.
func RatingFor(wellness float64) string {
	if wellness > 8.5 {
		return "Excellent"
	}
	if wellness > 7 {
		return "Good"
	}
	return "Needs Improvement"
}

// GenerateOptimizationNotes describes what the placement got right.
func GenerateOptimizationNotes(blocks []Block) []string {
	notes := []string{}

	var studyBlocks, breakBlocks []Block
	for _, b := range blocks {
		if b.Type == "study" {
			studyBlocks = append(studyBlocks, b)
		} else if b.Type == "break" {
			breakBlocks = append(breakBlocks, b)
		}
	}

	hardInMorning := false
	for _, b := range studyBlocks {
		var h int
		fmt.Sscanf(b.StartTime, "%d:", &h)
		if h < 12 && b.Difficulty >= 8 {
			hardInMorning = true
			break
		}
	}
	if hardInMorning {
		notes = append(notes, "✅ Difficult subjects scheduled during peak morning hours")
	}

	if len(breakBlocks) > 0 && float64(len(breakBlocks)) >= float64(len(studyBlocks))*0.8 {
		notes = append(notes, "✅ Adequate break frequency maintained")
	}

	activities := map[string]struct{}{}
	for _, b := range breakBlocks {
		activities[b.Activity] = struct{}{}
	}
	if len(activities) > 1 {
		notes = append(notes, "✅ Variety in break activities promotes better recovery")
	}

	return notes
}

// StudyEfficiency computes secondary quality metrics over a finished plan:
// average block length, break ratio, and a consistency-based focus score.
func StudyEfficiency(blocks []Block, totalTime int) EfficiencyMetrics {
	var studySessions, breakSessions []Block
	for _, b := range blocks {
		if b.Type == "study" {
			studySessions = append(studySessions, b)
		} else if b.Type == "break" {
			breakSessions = append(breakSessions, b)
		}
	}

	if len(studySessions) == 0 {
		return EfficiencyMetrics{Recommendations: []string{}}
	}

	sumStudy := 0
	minDur, maxDur := studySessions[0].Duration, studySessions[0].Duration
	for _, s := range studySessions {
		sumStudy += s.Duration
		if s.Duration < minDur {
			minDur = s.Duration
		}
		if s.Duration > maxDur {
			maxDur = s.Duration
		}
	}
	avgStudy := float64(sumStudy) / float64(len(studySessions))

	totalBreak := 0
	for _, b := range breakSessions {
		totalBreak += b.Duration
	}
	denom := totalTime
	if denom < 1 {
		denom = 1
	}
	breakRatio := float64(totalBreak) / float64(denom)

	efficiency := 8.0
	if 60 <= avgStudy && avgStudy <= 120 {
		efficiency += 1.0
	} else if avgStudy > 120 {
		efficiency -= 0.5
	}
	if 0.1 <= breakRatio && breakRatio <= 0.2 {
		efficiency += 1.0
	} else if breakRatio < 0.05 {
		efficiency -= 1.0
	}

	spread := maxDur
	if spread < 1 {
		spread = 1
	}
	consistency := 1.0 - float64(maxDur-minDur)/float64(spread)
	focusScore := consistency * 10

	recommendations := []string{}
	if avgStudy > 120 {
		recommendations = append(recommendations, "Consider shorter study blocks (60-90 minutes) for better focus")
	}
	if breakRatio < 0.1 {
		recommendations = append(recommendations, "Add more breaks to prevent fatigue")
	}
	if breakRatio > 0.25 {
		recommendations = append(recommendations, "Consider longer study blocks with fewer breaks")
	}

	return EfficiencyMetrics{
		Efficiency:       round1(efficiency),
		FocusScore:       round1(focusScore),
		AvgStudyDuration: round1(avgStudy),
		BreakRatio:       round1(breakRatio * 100),
		Recommendations:  recommendations,
	}
}

// OptimalBreakTime sizes a break from the preceding study duration and
// subject difficulty, clamped to 5-30 minutes.
func OptimalBreakTime(studyDuration, difficulty int) int {
	baseBreak := 10
	if studyDuration >= 120 {
		baseBreak = 20
	} else if studyDuration >= 90 {
		baseBreak = 15
	}

	optimal := baseBreak + (difficulty-5)*2
	if optimal < 5 {
		optimal = 5
	}
	if optimal > 30 {
		optimal = 30
	}
	return optimal
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
