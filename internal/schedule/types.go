package schedule

// Preferences is the input to the schedule optimizer.
type Preferences struct {
	StudyDuration int      `json:"study_duration"` // minutes
	BreakDuration int      `json:"break_duration"` // minutes
	Subjects      []string `json:"subjects"`
	StartTime     string   `json:"start_time"` // HH:MM
	EndTime       string   `json:"end_time"`   // HH:MM
}

// Block is a single study or break interval inside a plan.
type Block struct {
	Subject     string `json:"subject"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Type        string `json:"type"` // "study" or "break"
	Duration    int    `json:"duration"`
	Difficulty  int    `json:"difficulty,omitempty"`
	OptimalTime *bool  `json:"optimal_time,omitempty"`
	Activity    string `json:"activity,omitempty"`
}

// Schedule is a full optimized study plan for one day.
type Schedule struct {
	StudyBlocks       []Block            `json:"study_blocks"`
	TotalStudyTime    int                `json:"total_study_time"`
	TotalBreakTime    int                `json:"total_break_time"`
	WellnessScore     float64            `json:"wellness_score"`
	EfficiencyScore   float64            `json:"efficiency_score"`
	ScheduleRating    string             `json:"schedule_rating"`
	OptimizationNotes []string           `json:"optimization_notes"`
	EfficiencyMetrics *EfficiencyMetrics `json:"efficiency_metrics,omitempty"`
}

// EfficiencyMetrics summarizes block length and break balance quality.
type EfficiencyMetrics struct {
	Efficiency       float64  `json:"efficiency"`
	FocusScore       float64  `json:"focus_score"`
	AvgStudyDuration float64  `json:"avg_study_duration"`
	BreakRatio       float64  `json:"break_ratio"` // percent
	Recommendations  []string `json:"recommendations"`
}

// BusyInterval is an existing calendar commitment consumed from the
// calendar provider.
type BusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeBlock is an open stretch of the day between commitments.
type FreeBlock struct {
	Start         string  `json:"start"` // HH:MM
	End           string  `json:"end"`   // HH:MM
	DurationHours float64 `json:"duration_hours"`
}
