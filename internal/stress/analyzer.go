package stress

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// EmailRecord is one message as delivered by the mail provider. Only text
// content and the send time matter here; every field is optional.
type EmailRecord struct {
	Subject   string  `json:"subject,omitempty"`
	Body      string  `json:"body,omitempty"`
	Snippet   string  `json:"snippet,omitempty"`
	Text      string  `json:"text,omitempty"`
	Sender    string  `json:"sender,omitempty"`
	From      string  `json:"from,omitempty"`
	Date      string  `json:"date,omitempty"`      // ISO datetime
	Timestamp float64 `json:"timestamp,omitempty"` // epoch seconds
}

// Analysis is the result of scanning a mailbox window for stress signals.
type Analysis struct {
	TotalEmails         int         `json:"total_emails"`
	UrgentEmails        int         `json:"urgent_emails"`
	WorkEmails          int         `json:"work_emails"`
	StressKeywordsFound []string    `json:"stress_keywords_found"`
	PeakHours           []string    `json:"peak_hours"`
	WorkloadScore       float64     `json:"workload_score"`
	BurnoutRisk         string      `json:"burnout_risk"`
	Recommendations     []string    `json:"recommendations"`
	AnalysisDate        string      `json:"analysis_date"`
	DaysAnalyzed        int         `json:"days_analyzed"`
	HourlyDistribution  map[int]int `json:"hourly_distribution"`
	WellnessScore       float64     `json:"wellness_score"`
}

var stressKeywords = []string{
	"urgent", "deadline", "asap", "emergency", "critical",
	"overdue", "late", "failed", "missing", "important",
	"immediately", "quickly", "rush", "priority",
}

var workKeywords = []string{
	"assignment", "homework", "project", "exam", "test",
	"quiz", "submission", "grade", "course", "class",
	"study", "lecture", "professor", "teacher",
}

// Analyze scans emails from the last daysBack days for stress and workload
// signals. Emails without a parseable timestamp are kept, not dropped: a
// malformed date is no reason to ignore a stressful message.
func Analyze(emails []EmailRecord, daysBack int) Analysis {
	return analyzeAt(emails, daysBack, time.Now())
}

func analyzeAt(emails []EmailRecord, daysBack int, now time.Time) Analysis {
	cutoff := now.AddDate(0, 0, -daysBack)

	var recent []EmailRecord
	for _, email := range emails {
		when, ok := emailTime(email)
		if !ok || !when.Before(cutoff) {
			recent = append(recent, email)
		}
	}

	totalEmails := len(recent)
	urgentCount := 0
	workCount := 0
	var keywordsFound []string
	hourly := map[int]int{}

	for _, email := range recent {
		body := email.Body
		if body == "" {
			body = email.Snippet
		}
		if body == "" {
			body = email.Text
		}
		sender := email.Sender
		if sender == "" {
			sender = email.From
		}

		text := strings.ToLower(email.Subject + " " + body + " " + sender)

		// At most one stress keyword counted per email.
		for _, keyword := range stressKeywords {
			if strings.Contains(text, keyword) {
				urgentCount++
				if !contains(keywordsFound, keyword) {
					keywordsFound = append(keywordsFound, keyword)
				}
				break
			}
		}

		for _, keyword := range workKeywords {
			if strings.Contains(text, keyword) {
				workCount++
				break
			}
		}

		if when, ok := emailTime(email); ok {
			hourly[when.Hour()]++
		}
	}

	peakHours := peakHourRanges(hourly)

	workloadScore := 0.0
	if totalEmails > 0 {
		urgentRatio := float64(urgentCount) / float64(totalEmails)
		workRatio := float64(workCount) / float64(totalEmails)
		workloadScore = math.Min(10, (urgentRatio*5+workRatio*3)*10)
	}

	burnoutRisk := "low"
	if workloadScore >= 7 {
		burnoutRisk = "high"
	} else if workloadScore >= 4 {
		burnoutRisk = "moderate"
	}

	analysis := Analysis{
		TotalEmails:         totalEmails,
		UrgentEmails:        urgentCount,
		WorkEmails:          workCount,
		StressKeywordsFound: emptyIfNil(keywordsFound),
		PeakHours:           peakHours,
		WorkloadScore:       round1(workloadScore),
		BurnoutRisk:         burnoutRisk,
		AnalysisDate:        now.Format(time.RFC3339),
		DaysAnalyzed:        daysBack,
		HourlyDistribution:  hourly,
	}
	analysis.Recommendations = recommendations(analysis)
	analysis.WellnessScore = WellnessScore(analysis)
	return analysis
}

// emailTime extracts the send time, preferring the ISO date field over the
// epoch timestamp.
func emailTime(email EmailRecord) (time.Time, bool) {
	if email.Date != "" {
		if !strings.Contains(email.Date, "T") {
			return time.Time{}, false
		}
		s := strings.TrimSuffix(email.Date, "Z")
		for _, layout := range []string{"2006-01-02T15:04:05-07:00", "2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	if email.Timestamp > 0 {
		sec := int64(email.Timestamp)
		return time.Unix(sec, 0), true
	}
	return time.Time{}, false
}

// peakHourRanges lists the hours that carry at least 70% of the busiest
// hour's traffic, rendered as "HH:00-HH:00" ranges.
func peakHourRanges(hourly map[int]int) []string {
	if len(hourly) == 0 {
		return []string{}
	}

	maxCount := 0
	for _, count := range hourly {
		if count > maxCount {
			maxCount = count
		}
	}

	hours := make([]int, 0, len(hourly))
	for hour := range hourly {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	var peaks []string
	for _, hour := range hours {
		if float64(hourly[hour]) >= float64(maxCount)*0.7 {
			peaks = append(peaks, fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24))
		}
	}
	return peaks
}

func recommendations(a Analysis) []string {
	var recs []string
	if a.TotalEmails > 0 {
		if float64(a.UrgentEmails) > float64(a.TotalEmails)*0.25 {
			recs = append(recs, "High urgency emails detected - consider prioritization techniques")
		}
		if len(a.PeakHours) > 3 {
			recs = append(recs, "Email scattered throughout day - try batching email checks")
		}
		for hour := range a.HourlyDistribution {
			if hour >= 22 || hour <= 6 {
				recs = append(recs, "Late night/early morning emails - set email boundaries")
				break
			}
		}
		if float64(a.WorkEmails) > float64(a.TotalEmails)*0.6 {
			recs = append(recs, "High volume of academic emails - consider organizing with filters")
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Email patterns look healthy - keep up the good work!")
	}
	return recs
}

// WellnessScore derives a 0-10 wellness number from the workload metrics:
// the inverse of stress.
func WellnessScore(a Analysis) float64 {
	total := a.TotalEmails
	if total < 1 {
		total = 1
	}
	stressFactor := math.Min(float64(a.UrgentEmails)/float64(total), 1.0)

	wellness := 10 - (a.WorkloadScore*0.6 + stressFactor*4.0)
	return round1(math.Max(0, math.Min(10, wellness)))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
