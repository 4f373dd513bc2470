package schedule

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/AyaanRathod/arcade-hackathon/internal/analytics"
	"github.com/AyaanRathod/arcade-hackathon/internal/arcade"
)

type Handler struct {
	Calendar *arcade.Client // nil when the provider is not configured
	DB       *sql.DB        // nil when no analytics store is attached
}

func NewHandler(calendar *arcade.Client, db *sql.DB) *Handler {
	return &Handler{Calendar: calendar, DB: db}
}

type optimizeRequest struct {
	StudyDuration *int     `json:"study_duration"`
	BreakDuration *int     `json:"break_duration"`
	Subjects      []string `json:"subjects"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
}

// ------------------------------------------------------------------
// POST /api/optimize_schedule
// ------------------------------------------------------------------

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	prefs := Preferences{
		StudyDuration: 90,
		BreakDuration: 15,
		Subjects:      defaultSubjects,
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
	if req.StudyDuration != nil {
		prefs.StudyDuration = *req.StudyDuration
	}
	if req.BreakDuration != nil {
		prefs.BreakDuration = *req.BreakDuration
	}
	if len(req.Subjects) > 0 {
		prefs.Subjects = req.Subjects
	}
	if req.StartTime != "" {
		prefs.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		prefs.EndTime = req.EndTime
	}

	sched, err := PlaceBlocks(prefs)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	_ = analytics.Log(r.Context(), h.DB, analytics.FromRequest(r), analytics.EventScheduleOptimized, map[string]interface{}{
		"subjects":         len(prefs.Subjects),
		"wellness_score":   sched.WellnessScore,
		"efficiency_score": sched.EfficiencyScore,
	})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"schedule":  sched,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ------------------------------------------------------------------
// GET /api/get_calendar_events
// ------------------------------------------------------------------

type processedEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Type  string `json:"type"`
}

func (h *Handler) CalendarEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days := 7
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 {
		days = v
	}
	_ = days // the provider window is fixed to today/tomorrow for now

	var (
		events     []arcade.CalendarEvent
		dataSource = "simulated"
	)
	if h.Calendar != nil {
		fetched, err := h.Calendar.ListCalendarEvents(r.Context())
		if err != nil {
			log.Printf("calendar fetch failed, using simulated events: %v", err)
			events = arcade.SimulatedEvents()
		} else {
			events = fetched
			dataSource = "real"
		}
	} else {
		events = arcade.SimulatedEvents()
	}

	processed := make([]processedEvent, 0, len(events))
	busy := make([]BusyInterval, 0, len(events))
	for _, e := range events {
		title := e.Summary
		if title == "" {
			title = "Untitled"
		}
		processed = append(processed, processedEvent{
			Title: title,
			Start: e.Start.DateTime,
			End:   e.End.DateTime,
			Type:  "existing",
		})
		busy = append(busy, BusyInterval{Start: e.Start.DateTime, End: e.End.DateTime})
	}

	freeBlocks := FreeTimeBlocks(busy)
	totalFreeHours := 0.0
	for _, b := range freeBlocks {
		totalFreeHours += b.DurationHours
	}

	_ = analytics.Log(r.Context(), h.DB, analytics.FromRequest(r), analytics.EventCalendarFetched, map[string]interface{}{
		"total_events": len(processed),
		"data_source":  dataSource,
	})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"events": map[string]interface{}{
			"events":           processed,
			"free_time_blocks": freeBlocks,
			"total_events":     len(processed),
			"total_free_hours": totalFreeHours,
		},
		"data_source": dataSource,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
