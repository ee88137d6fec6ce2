package domain

// ComprehensiveStats is the full analytics snapshot returned for one user.
// Everything in it is derived; nothing is persisted.
type ComprehensiveStats struct {
	Period       string                `json:"period"`
	RangeStart   string                `json:"range_start"`
	RangeEnd     string                `json:"range_end"`
	Overview     OverviewStats         `json:"overview"`
	TimeTracking TimeTrackingStats     `json:"time_tracking"`
	Productivity ProductivityStats     `json:"productivity"`
	Engagement   EngagementStats       `json:"engagement"`
	Wellbeing    WellbeingStats        `json:"wellbeing"`
	Insights     *ProductivityInsights `json:"insights,omitempty"`
}

type OverviewStats struct {
	TotalGoals         int `json:"total_goals"`
	CompletedGoals     int `json:"completed_goals"`
	GoalCompletionRate int `json:"goal_completion_rate"`
	TotalTodos         int `json:"total_todos"`
	CompletedTodos     int `json:"completed_todos"`
	TodoCompletionRate int `json:"todo_completion_rate"`
	OverdueTodos       int `json:"overdue_todos"`
	TotalNotes         int `json:"total_notes"`
	TotalActivities    int `json:"total_activities"`
	TotalEntries       int `json:"total_entries"`
}

type TimeTrackingStats struct {
	TodaySeconds           int                     `json:"today_seconds"`
	WeekSeconds            int                     `json:"week_seconds"`
	MonthSeconds           int                     `json:"month_seconds"`
	AverageSessionDuration int                     `json:"average_session_duration"`
	MostProductiveTime     string                  `json:"most_productive_time,omitempty"`
	ActivityBreakdown      []ActivityBreakdownItem `json:"activity_breakdown"`
}

type ActivityBreakdownItem struct {
	ActivityID    string `json:"activity_id"`
	ActivityTitle string `json:"activity_title"`
	TotalTime     int    `json:"total_time"`
	Percentage    int    `json:"percentage"`
}

type ProductivityStats struct {
	WeeklyCompletionTrend []DailyCompletion  `json:"weekly_completion_trend"`
	GoalProgress          []GoalProgressItem `json:"goal_progress"`
	ProgressEntryTrend    EntryTrend         `json:"progress_entry_trend"`
}

// DailyCompletion approximates completions by creation day: the todo model
// has no completion timestamp, so a todo counts as completed on the day it
// was created if it is currently marked done.
type DailyCompletion struct {
	Date           string `json:"date"`
	Created        int    `json:"created"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completion_rate"`
}

// GoalProgressItem carries elapsed-time progress toward the target date,
// not task-completion progress.
type GoalProgressItem struct {
	GoalID             string `json:"goal_id"`
	Title              string `json:"title"`
	DaysUntilTarget    int    `json:"days_until_target"`
	ProgressPercentage int    `json:"progress_percentage"`
}

type EntryTrend struct {
	ThisWeek         int    `json:"this_week"`
	LastWeek         int    `json:"last_week"`
	ChangePercentage int    `json:"change_percentage"`
	Trend            string `json:"trend"`
}

type EngagementStats struct {
	DailyActiveHours      []HourlyActivity  `json:"daily_active_hours"`
	WeeklyPattern         []WeekdayActivity `json:"weekly_pattern"`
	CurrentProgressStreak int               `json:"current_progress_streak"`
	LongestProgressStreak int               `json:"longest_progress_streak"`
	CurrentTodoStreak     int               `json:"current_todo_streak"`
	LongestTodoStreak     int               `json:"longest_todo_streak"`
}

type HourlyActivity struct {
	Hour         int `json:"hour"`
	Sessions     int `json:"sessions"`
	TotalMinutes int `json:"total_minutes"`
}

// WeekdayActivity buckets sessions by calendar day of week, Sunday = 0.
type WeekdayActivity struct {
	Weekday       int `json:"weekday"`
	TotalSessions int `json:"total_sessions"`
	TotalTime     int `json:"total_time"`
}

type WellbeingStats struct {
	AverageMood              float64               `json:"average_mood"`
	AverageProductivity      float64               `json:"average_productivity"`
	AverageHealth            float64               `json:"average_health"`
	AverageSleepHours        float64               `json:"average_sleep_hours"`
	MoodDistribution         []LevelCount          `json:"mood_distribution"`
	ProductivityDistribution []LevelCount          `json:"productivity_distribution"`
	HealthDistribution       []LevelCount          `json:"health_distribution"`
	MoodTrend                string                `json:"mood_trend"`
	ProductivityTrend        string                `json:"productivity_trend"`
	HealthTrend              string                `json:"health_trend"`
	SleepTrend               string                `json:"sleep_trend"`
	DailyPattern             []DailyWellbeingPoint `json:"daily_pattern"`
}

// LevelCount is one row of a wellbeing frequency distribution. Percentage
// is over the entries that have the dimension filled in, not over all
// entries.
type LevelCount struct {
	Value      WellbeingLevel `json:"value"`
	Count      int            `json:"count"`
	Percentage int            `json:"percentage"`
}

type DailyWellbeingPoint struct {
	Date              string         `json:"date"`
	Mood              WellbeingLevel `json:"mood,omitempty"`
	Productivity      WellbeingLevel `json:"productivity,omitempty"`
	Health            WellbeingLevel `json:"health,omitempty"`
	SleepHours        float64        `json:"sleep_hours,omitempty"`
	MoodScore         int            `json:"mood_score,omitempty"`
	ProductivityScore int            `json:"productivity_score,omitempty"`
	HealthScore       int            `json:"health_score,omitempty"`
}
