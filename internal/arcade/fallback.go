package arcade

import (
	"fmt"
	"math/rand"
	"time"
)

// SimulatedEvents stands in for the calendar provider when it is missing or
// failing. The events land on today's date so free-time computation stays
// meaningful.
func SimulatedEvents() []CalendarEvent {
	day := time.Now().Format("2006-01-02")
	return []CalendarEvent{
		{
			Summary: "Data Structures Lecture",
			Start:   EventTime{DateTime: day + "T10:00:00"},
			End:     EventTime{DateTime: day + "T11:30:00"},
		},
		{
			Summary: "Algorithm Analysis Lab",
			Start:   EventTime{DateTime: day + "T14:00:00"},
			End:     EventTime{DateTime: day + "T17:00:00"},
		},
	}
}

// SimulatedMessageID fabricates a delivery id for simulated reminder sends.
func SimulatedMessageID() string {
	return fmt.Sprintf("sim_%d", 10000+rand.Intn(90000))
}
