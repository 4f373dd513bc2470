package stress

import (
	"fmt"
	"time"
)

// SimulatedEmails is the stand-in inbox used when the mail provider is
// unavailable. It runs through the same analyzer as live data and is shaped
// to trip a realistic mix of stress and work signals.
func SimulatedEmails() []EmailRecord {
	day := func(daysAgo, hour int) string {
		t := time.Now().AddDate(0, 0, -daysAgo)
		return fmt.Sprintf("%sT%02d:30:00", t.Format("2006-01-02"), hour)
	}

	return []EmailRecord{
		{Subject: "URGENT: Assignment 3 deadline moved up", Sender: "prof.keller@university.edu", Date: day(0, 9)},
		{Subject: "Reminder: Chemistry lab report submission", Sender: "chem-dept@university.edu", Date: day(0, 10)},
		{Subject: "Your exam schedule for next week", Sender: "registrar@university.edu", Date: day(1, 9)},
		{Subject: "Study group tonight?", Snippet: "We're reviewing lecture 8 before the quiz", Sender: "sam@students.edu", Date: day(1, 15)},
		{Subject: "Overdue: library book return", Sender: "library@university.edu", Date: day(2, 14)},
		{Subject: "Project milestone feedback", Body: "Please address the missing sections quickly", Sender: "ta-team@university.edu", Date: day(2, 23)},
		{Subject: "Campus newsletter", Sender: "news@university.edu", Date: day(3, 10)},
		{Subject: "Grade posted for Calculus midterm", Sender: "grades@university.edu", Date: day(3, 15)},
	}
}
