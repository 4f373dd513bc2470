package schedule

import (
	"sort"
	"strings"
)

// difficultyMap rates the cognitive load of known subjects on a 1-10 scale.
var difficultyMap = map[string]int{
	"math": 9, "mathematics": 9, "calculus": 9, "algebra": 8,
	"physics": 8, "chemistry": 7, "biology": 6,
	"computer science": 8, "programming": 8, "algorithms": 9,
	"english": 5, "literature": 5, "history": 6,
	"psychology": 6, "sociology": 5, "philosophy": 7,
}

const defaultDifficulty = 5

// SubjectDifficulty returns the 1-10 difficulty rating for a subject.
// Lookup is case-insensitive; unknown subjects get the calibration midpoint.
func SubjectDifficulty(subject string) int {
	if d, ok := difficultyMap[strings.ToLower(subject)]; ok {
		return d
	}
	return defaultDifficulty
}

// OrderByDifficulty sorts subjects hardest-first so demanding material lands
// in the prime early slots. The sort is stable: equally difficult subjects
// keep their input order.
func OrderByDifficulty(subjects []string) []string {
	ordered := make([]string, len(subjects))
	copy(ordered, subjects)

	sort.SliceStable(ordered, func(i, j int) bool {
		return SubjectDifficulty(ordered[i]) > SubjectDifficulty(ordered[j])
	})

	return ordered
}
