package schedule

import (
	"sort"
	"strings"
	"time"
)

// FreeTimeBlocks walks existing commitments in start order and returns the
// open stretches between them, starting the day at 09:00. Gaps shorter than
// 30 minutes are not worth scheduling and are dropped. Commitments with
// unparsable timestamps are skipped, not fatal.
//
// With no commitments at all the whole default day window is free.
func FreeTimeBlocks(events []BusyInterval) []FreeBlock {
	if len(events) == 0 {
		return []FreeBlock{{
			Start:         "09:00",
			End:           "17:00",
			DurationHours: 8,
		}}
	}

	sorted := make([]BusyInterval, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	// Anchor the day on the first dated commitment; bare HH:MM inputs all
	// land on the same reference day.
	anchor := time.Now()
	for _, e := range sorted {
		if t, ok := parseDatedTime(e.Start); ok {
			anchor = t
			break
		}
	}
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	cursor := day.Add(9 * time.Hour)

	var free []FreeBlock
	for _, e := range sorted {
		start, ok := parseEventTime(e.Start, day)
		if !ok {
			continue
		}

		if cursor.Before(start) {
			gap := start.Sub(cursor)
			if gap >= 30*time.Minute {
				free = append(free, FreeBlock{
					Start:         cursor.Format("15:04"),
					End:           start.Format("15:04"),
					DurationHours: round1(gap.Hours()),
				})
			}
		}

		if end, ok := parseEventTime(e.End, day); ok && end.After(cursor) {
			cursor = end
		}
	}

	return free
}

var datedLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04",
}

func parseDatedTime(s string) (time.Time, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	for _, layout := range datedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseEventTime accepts ISO datetimes (a trailing Z is ignored) and bare
// HH:MM clock times, which are placed on the given day.
func parseEventTime(s string, day time.Time) (time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, false
	}
	if t, ok := parseDatedTime(s); ok {
		return t, true
	}
	if mins, err := parseClock(strings.TrimSpace(s)); err == nil {
		return day.Add(time.Duration(mins) * time.Minute), true
	}
	return time.Time{}, false
}
