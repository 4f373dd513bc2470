package schedule

// DurationMultiplier maps an hour of day to a productivity multiplier.
// Bands are checked in order, so boundary hours (11, 15, 17) resolve to the
// first band that contains them.
func DurationMultiplier(hour int) float64 {
	if (9 <= hour && hour <= 11) || (15 <= hour && hour <= 17) {
		return 1.0
	}
	if (11 <= hour && hour <= 15) || (17 <= hour && hour <= 20) {
		return 0.9
	}
	return 0.8
}

// DifficultyPenalty returns an extra multiplier for hard subjects studied
// after noon. Hard material loses effectiveness in the afternoon.
func DifficultyPenalty(hour, difficulty int) float64 {
	if difficulty >= 8 && hour >= 12 {
		return 0.9
	}
	return 1.0
}

// IsOptimalWindow reports whether the hour is a good slot for a subject of
// the given difficulty. Hard subjects want the morning or the mid-afternoon
// recovery window; everything else just needs waking hours.
func IsOptimalWindow(hour, difficulty int) bool {
	if difficulty >= 7 {
		return (9 <= hour && hour <= 12) || (15 <= hour && hour <= 17)
	}
	return hour >= 9 && hour <= 20
}

// TimeOfDayCategory buckets an hour into a coarse label used by study tips.
func TimeOfDayCategory(hour int) string {
	switch {
	case 6 <= hour && hour < 12:
		return "morning"
	case 12 <= hour && hour < 17:
		return "afternoon"
	case 17 <= hour && hour < 21:
		return "evening"
	default:
		return "night"
	}
}
