package stress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC)

func recentDate(hoursAgo int) string {
	return testNow.Add(-time.Duration(hoursAgo) * time.Hour).Format("2006-01-02T15:04:05")
}

func TestAnalyzeFirstMatchOnly(t *testing.T) {
	emails := []EmailRecord{
		{Subject: "urgent: deadline tomorrow", Date: recentDate(1)},
	}

	a := analyzeAt(emails, 7, testNow)

	// both "urgent" and "deadline" appear, but only the first match counts
	assert.Equal(t, 1, a.UrgentEmails)
	assert.Equal(t, []string{"urgent"}, a.StressKeywordsFound)
}

func TestAnalyzeKeywordDedup(t *testing.T) {
	emails := []EmailRecord{
		{Subject: "urgent request", Date: recentDate(1)},
		{Subject: "another urgent thing", Date: recentDate(2)},
		{Subject: "deadline looming", Date: recentDate(3)},
	}

	a := analyzeAt(emails, 7, testNow)

	assert.Equal(t, 3, a.UrgentEmails)
	assert.Equal(t, []string{"urgent", "deadline"}, a.StressKeywordsFound)
}

func TestAnalyzeWorkKeywordsIndependent(t *testing.T) {
	emails := []EmailRecord{
		{Subject: "urgent: exam rescheduled", Date: recentDate(1)},
		{Subject: "homework 4 posted", Date: recentDate(2)},
	}

	a := analyzeAt(emails, 7, testNow)

	assert.Equal(t, 1, a.UrgentEmails)
	assert.Equal(t, 2, a.WorkEmails)
}

func TestAnalyzeFailOpenOnBadDates(t *testing.T) {
	emails := []EmailRecord{
		{Subject: "no date at all"},
		{Subject: "garbage date", Date: "yesterday-ish"},
		{Subject: "too old", Date: "2020-01-01T10:00:00"},
		{Subject: "recent enough", Date: recentDate(2)},
	}

	a := analyzeAt(emails, 7, testNow)

	// unparsable/missing dates are kept; only the genuinely old one drops
	assert.Equal(t, 3, a.TotalEmails)
}

func TestAnalyzeBodyFallbackChain(t *testing.T) {
	emails := []EmailRecord{
		{Snippet: "please submit the assignment", Date: recentDate(1)},
		{Text: "lecture notes attached", Date: recentDate(1)},
		{Sender: "professor.smith@university.edu", Date: recentDate(1)},
	}

	a := analyzeAt(emails, 7, testNow)
	assert.Equal(t, 3, a.WorkEmails)
}

func TestAnalyzeHourlyDistributionAndPeaks(t *testing.T) {
	emails := []EmailRecord{
		{Subject: "a", Date: "2025-09-12T09:10:00"},
		{Subject: "b", Date: "2025-09-12T09:40:00"},
		{Subject: "c", Date: "2025-09-12T09:55:00"},
		{Subject: "d", Date: "2025-09-12T14:30:00"},
		{Subject: "e", Date: "2025-09-12T23:15:00"},
		{Subject: "f", Date: "2025-09-12T23:45:00"},
		{Subject: "g", Date: "2025-09-12T23:50:00"},
	}

	a := analyzeAt(emails, 7, testNow)

	assert.Equal(t, 3, a.HourlyDistribution[9])
	assert.Equal(t, 1, a.HourlyDistribution[14])
	assert.Equal(t, 3, a.HourlyDistribution[23])

	// max bucket is 3; hours at >= 70% of it qualify, 23 wraps to 00
	assert.Equal(t, []string{"09:00-10:00", "23:00-00:00"}, a.PeakHours)
}

func TestAnalyzeEpochTimestamps(t *testing.T) {
	ts := testNow.Add(-3 * time.Hour)
	emails := []EmailRecord{
		{Subject: "quiz results", Timestamp: float64(ts.Unix())},
	}

	a := analyzeAt(emails, 7, testNow)

	assert.Equal(t, 1, a.TotalEmails)
	assert.Equal(t, 1, a.HourlyDistribution[time.Unix(ts.Unix(), 0).Hour()])
}

func TestAnalyzeWorkloadAndBurnout(t *testing.T) {
	var emails []EmailRecord
	for i := 0; i < 10; i++ {
		e := EmailRecord{Subject: "newsletter", Date: recentDate(i + 1)}
		if i < 5 {
			e.Subject = "urgent assignment due"
		}
		emails = append(emails, e)
	}

	a := analyzeAt(emails, 7, testNow)

	// urgent 5/10, work 5/10 -> (0.5*5 + 0.5*3)*10 = 40 -> capped at 10
	assert.Equal(t, 10.0, a.WorkloadScore)
	assert.Equal(t, "high", a.BurnoutRisk)
}

func TestAnalyzeEmptyInbox(t *testing.T) {
	a := analyzeAt(nil, 7, testNow)

	assert.Equal(t, 0, a.TotalEmails)
	assert.Equal(t, 0.0, a.WorkloadScore)
	assert.Equal(t, "low", a.BurnoutRisk)
	assert.Equal(t, []string{}, a.PeakHours)
	assert.Equal(t, []string{"Email patterns look healthy - keep up the good work!"}, a.Recommendations)
}

func TestAnalyzeRecommendationThresholds(t *testing.T) {
	// 4 of 10 urgent (>25%), 8 work-related (>60%), plus a late night email
	var emails []EmailRecord
	for i := 0; i < 10; i++ {
		e := EmailRecord{Date: "2025-09-12T10:00:00"}
		switch {
		case i < 4:
			e.Subject = "urgent exam notice"
		case i < 8:
			e.Subject = "course project update"
		default:
			e.Subject = "campus news"
		}
		emails = append(emails, e)
	}
	emails[9].Date = "2025-09-12T23:30:00"

	a := analyzeAt(emails, 7, testNow)

	assert.Contains(t, a.Recommendations, "High urgency emails detected - consider prioritization techniques")
	assert.Contains(t, a.Recommendations, "High volume of academic emails - consider organizing with filters")
	assert.Contains(t, a.Recommendations, "Late night/early morning emails - set email boundaries")
	assert.NotContains(t, a.Recommendations, "Email patterns look healthy - keep up the good work!")
}

func TestWellnessScore(t *testing.T) {
	a := Analysis{TotalEmails: 67, UrgentEmails: 12, WorkloadScore: 7.8}
	// stress factor 12/67 ≈ 0.179; 10 - (7.8*0.6 + 0.179*4) ≈ 4.6
	assert.Equal(t, 4.6, WellnessScore(a))

	// fully stressed inbox clamps at 0
	a = Analysis{TotalEmails: 10, UrgentEmails: 10, WorkloadScore: 10}
	assert.Equal(t, 0.0, WellnessScore(a))

	// empty inbox scores 10
	a = Analysis{}
	assert.Equal(t, 10.0, WellnessScore(a))
}

func TestSimulatedEmailsFlowThroughAnalyzer(t *testing.T) {
	a := Analyze(SimulatedEmails(), 7)

	require.Greater(t, a.TotalEmails, 0)
	assert.Greater(t, a.UrgentEmails, 0)
	assert.Greater(t, a.WorkEmails, 0)
	assert.NotEmpty(t, a.StressKeywordsFound)
	assert.NotEmpty(t, a.Recommendations)
}
