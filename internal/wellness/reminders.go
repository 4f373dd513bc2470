package wellness

import (
	"fmt"
	"time"

	"github.com/AyaanRathod/arcade-hackathon/internal/schedule"
)

// Content is one rendered reminder email.
type Content struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Reminder is a scheduled wellness nudge derived from a study plan.
type Reminder struct {
	Type          string            `json:"type"`
	ScheduledTime string            `json:"scheduled_time"`
	Context       map[string]string `json:"context"`
}

// Plan is the full reminder timetable for one study schedule.
type Plan struct {
	ScheduledReminders []Reminder `json:"scheduled_reminders"`
	TotalReminders     int        `json:"total_reminders"`
	ReminderTypes      []string   `json:"reminder_types"`
}

const (
	TypeBreakReminder = "break_reminder"
	TypeHydration     = "hydration"
	TypePostureCheck  = "posture_check"
	TypeEyeRest       = "eye_rest"
	TypeStressRelief  = "stress_relief"
	TypeAchievement   = "achievement"
)

// GenerateContent renders the reminder email for the given type,
// personalized from the context map and the current hour. Unknown types fall
// back to the break reminder.
func GenerateContent(reminderType string, ctx map[string]string, hour int) Content {
	var content Content

	switch reminderType {
	case TypeHydration:
		content = Content{
			Subject: "💧 Hydration Reminder",
			Body: `Hi! 💙

Don't forget to stay hydrated! Your brain needs water to function optimally.

Quick hydration tips:
- Drink a full glass of water now
- Keep a water bottle at your study space
- Set hourly hydration reminders
- Try herbal tea for variety

Stay healthy and keep learning! 🌊

StudyBalance AI`,
		}

	case TypePostureCheck:
		content = Content{
			Subject: "🪑 Posture Check-In",
			Body: `Hello! 🙋

Time for a quick posture check! Good posture reduces fatigue and improves concentration.

Quick adjustments:
- Sit up straight with shoulders back
- Keep feet flat on the floor
- Position screen at eye level
- Take micro-breaks to stretch

Your future self will thank you! 💪

StudyBalance AI`,
		}

	case TypeEyeRest:
		content = Content{
			Subject: "👁️ Eye Rest Reminder",
			Body: `Hi there! 👀

Following the 20-20-20 rule: Every 20 minutes, look at something 20 feet away for 20 seconds.

Eye care tips:
- Blink frequently to moisten eyes
- Adjust screen brightness
- Consider blue light filters
- Close eyes and rest for 30 seconds

Protect your vision for lifelong learning! 🌟

StudyBalance AI`,
		}

	case TypeStressRelief:
		content = Content{
			Subject: "😌 Stress Relief Moment",
			Body: fmt.Sprintf(`Hey! 🌸

Feeling stressed? That's completely normal! Here's a quick stress-buster routine:

Try this 2-minute reset:
- Take 5 deep breaths (4 counts in, 6 counts out)
- Do 10 gentle neck rolls
- Think of one thing you're grateful for

%s 💪

StudyBalance AI`, ctxValue(ctx, "encouragement", "You've got this!")),
		}

	case TypeAchievement:
		content = Content{
			Subject: "🎉 Great Progress!",
			Body: fmt.Sprintf(`Congratulations! 🎊

You've completed %s study sessions today - that's fantastic progress!

Your achievements:
- Study time: %s
- Subjects covered: %s
- Breaks taken: %s

Keep up the excellent work! Remember to celebrate small wins along the way. 🌟

Proud of you,
StudyBalance AI`,
				ctxValue(ctx, "completed_sessions", "several"),
				ctxValue(ctx, "total_study_time", "Good amount"),
				ctxValue(ctx, "subjects_studied", "Multiple areas"),
				ctxValue(ctx, "breaks_taken", "Regular intervals")),
		}

	default: // break_reminder
		content = Content{
			Subject: "🌟 Time for a Study Break!",
			Body: fmt.Sprintf(`Hey there! 👋

You've been studying hard for %s - time for a well-deserved break!

Quick break suggestions:
- Take a 5-10 minute walk
- Do some stretching or light yoga
- Hydrate with water
- Practice deep breathing exercises
- Rest your eyes by looking at something far away

Remember: Regular breaks improve focus and prevent burnout!

Best wishes,
StudyBalance AI 📚✨`, ctxValue(ctx, "study_duration", "a while")),
		}

		if hour >= 18 {
			content.Body += "\n\n🌙 Since it's evening, consider lighter activities to wind down."
		}
	}

	return content
}

func ctxValue(ctx map[string]string, key, fallback string) string {
	if ctx != nil {
		if v, ok := ctx[key]; ok && v != "" {
			return v
		}
	}
	return fallback
}

// ScheduleReminders derives a reminder timetable from a finished study plan:
// a break reminder 75% of the way through each study block of 45 minutes or
// more, hydration nudges every two hours, and posture checks every 90
// minutes across the plan span.
func ScheduleReminders(blocks []schedule.Block) Plan {
	if len(blocks) == 0 {
		return Plan{ScheduledReminders: []Reminder{}, ReminderTypes: []string{}}
	}

	var reminders []Reminder

	for _, block := range blocks {
		if block.Type != "study" || block.Duration < 45 {
			continue
		}

		offset := block.Duration * 75 / 100
		reminders = append(reminders, Reminder{
			Type:          TypeBreakReminder,
			ScheduledTime: addMinutesToTime(block.StartTime, offset),
			Context: map[string]string{
				"study_duration": fmt.Sprintf("%d minutes", offset),
				"subject":        block.Subject,
			},
		})
	}

	spanStart := blocks[0].StartTime
	spanEnd := blocks[len(blocks)-1].EndTime

	for _, t := range cadence(spanStart, spanEnd, 120) {
		reminders = append(reminders, Reminder{
			Type:          TypeHydration,
			ScheduledTime: t,
			Context:       map[string]string{},
		})
	}
	for _, t := range cadence(spanStart, spanEnd, 90) {
		reminders = append(reminders, Reminder{
			Type:          TypePostureCheck,
			ScheduledTime: t,
			Context:       map[string]string{},
		})
	}

	types := []string{}
	seen := map[string]struct{}{}
	for _, r := range reminders {
		if _, ok := seen[r.Type]; !ok {
			seen[r.Type] = struct{}{}
			types = append(types, r.Type)
		}
	}

	if reminders == nil {
		reminders = []Reminder{}
	}
	return Plan{
		ScheduledReminders: reminders,
		TotalReminders:     len(reminders),
		ReminderTypes:      types,
	}
}

// MotivationalContext builds the achievement reminder context, with
// encouragement tiered by how many sessions were completed.
func MotivationalContext(sessionsCompleted, totalMinutes, breaksTaken int, subjects string) map[string]string {
	ctx := map[string]string{
		"completed_sessions": fmt.Sprintf("%d", sessionsCompleted),
		"total_study_time":   fmt.Sprintf("%d", totalMinutes),
		"subjects_studied":   subjects,
		"breaks_taken":       fmt.Sprintf("%d", breaksTaken),
	}

	switch {
	case sessionsCompleted >= 5:
		ctx["encouragement"] = "You're absolutely crushing it today!"
	case sessionsCompleted >= 3:
		ctx["encouragement"] = "Fantastic progress - keep the momentum going!"
	default:
		ctx["encouragement"] = "Every step forward counts - you're doing great!"
	}

	return ctx
}

// addMinutesToTime shifts an HH:MM time forward, wrapping past midnight.
// Invalid input is returned unchanged.
func addMinutesToTime(clock string, minutes int) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04")
}

// cadence returns HH:MM marks every step minutes after start, up to and
// including end.
func cadence(start, end string, step int) []string {
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return nil
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return nil
	}

	var times []string
	cur := startT
	for cur.Before(endT) {
		cur = cur.Add(time.Duration(step) * time.Minute)
		if !cur.After(endT) {
			times = append(times, cur.Format("15:04"))
		}
	}
	return times
}
