package stress

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/AyaanRathod/arcade-hackathon/internal/analytics"
	"github.com/AyaanRathod/arcade-hackathon/internal/arcade"
)

type Handler struct {
	Mail *arcade.Client // nil when the provider is not configured
	DB   *sql.DB
}

func NewHandler(mail *arcade.Client, db *sql.DB) *Handler {
	return &Handler{Mail: mail, DB: db}
}

const fetchLimit = 50

// ------------------------------------------------------------------
// POST /api/analyze_gmail
// ------------------------------------------------------------------

func (h *Handler) AnalyzeGmail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Days <= 0 {
		req.Days = 7
	}

	var (
		emails     []EmailRecord
		dataSource = "simulated"
	)
	if h.Mail != nil {
		raw, err := h.Mail.ListEmails(r.Context(), fetchLimit)
		switch {
		case errors.Is(err, arcade.ErrAuthorizationRequired):
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":       false,
				"error":         "gmail authorization required",
				"auth_required": true,
				"auth_url":      "https://api.arcade.dev/dashboard",
				"instructions": []string{
					"Visit your arcade.dev dashboard",
					"Authorize Gmail toolkit access",
					"Return and try analysis again",
				},
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		case err != nil:
			log.Printf("gmail fetch failed, using simulated inbox: %v", err)
			emails = SimulatedEmails()
		default:
			if err := json.Unmarshal(raw, &emails); err != nil {
				log.Printf("gmail payload decode failed, using simulated inbox: %v", err)
				emails = SimulatedEmails()
			} else {
				dataSource = "real"
			}
		}
	} else {
		emails = SimulatedEmails()
	}

	analysis := Analyze(emails, req.Days)

	_ = analytics.Log(r.Context(), h.DB, analytics.FromRequest(r), analytics.EventGmailAnalyzed, map[string]interface{}{
		"total_emails":   analysis.TotalEmails,
		"workload_score": analysis.WorkloadScore,
		"burnout_risk":   analysis.BurnoutRisk,
		"data_source":    dataSource,
	})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":     true,
		"analysis":    analysis,
		"data_source": dataSource,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
