package analytics

import (
	"github.com/bloomapp/bloom-backend/internal/modules/achievements"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
)

// HabitStats covers habit entries logged inside the requested range.
type HabitStats struct {
	TotalEntries     int64   `json:"total_entries"`
	CompletedEntries int64   `json:"completed_entries"`
	CompletionRate   float64 `json:"completion_rate"`
	ActiveHabits     int64   `json:"active_habits"`
}

// MoodStats covers mood entries inside the requested range.
type MoodStats struct {
	EntryCount   int64   `json:"entry_count"`
	AverageMood  float64 `json:"average_mood"`
	DominantMood string  `json:"dominant_mood"`
}

// GoalStats always covers the current calendar year regardless of range.
type GoalStats struct {
	TotalGoals     int64   `json:"total_goals"`
	CompletedGoals int64   `json:"completed_goals"`
	CompletionRate float64 `json:"completion_rate"`
}

// TaskStats covers todos created inside the requested range.
type TaskStats struct {
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// WellnessStats averages the daily logs inside the requested range.
type WellnessStats struct {
	DaysLogged        int64   `json:"days_logged"`
	AverageWaterML    float64 `json:"average_water_ml"`
	AverageSteps      float64 `json:"average_steps"`
	AverageSleepHours float64 `json:"average_sleep_hours"`
}

// WeeklyTrendPoint is one ISO week bucket of habit completion rate.
type WeeklyTrendPoint struct {
	Week             string  `json:"week"`
	TotalEntries     int64   `json:"total_entries"`
	CompletedEntries int64   `json:"completed_entries"`
	CompletionRate   float64 `json:"completion_rate"`
}

type OverviewResponse struct {
	Range                  string                         `json:"range"`
	ProductivityScore      int                            `json:"productivity_score"`
	Habits                 HabitStats                     `json:"habits"`
	Mood                   MoodStats                      `json:"mood"`
	Goals                  GoalStats                      `json:"goals"`
	Tasks                  TaskStats                      `json:"tasks"`
	Wellness               WellnessStats                  `json:"wellness"`
	Streaks                []streaks.UserStreak           `json:"streaks"`
	RecentAchievements     []achievements.UserAchievement `json:"recent_achievements"`
	WeeklyTrend            []WeeklyTrendPoint             `json:"weekly_trend"`
	WeeklyHabitStreak      int                            `json:"weekly_habit_streak"`
	CompletedTasksThisWeek int64                          `json:"completed_tasks_this_week"`
	AverageMood            float64                        `json:"average_mood"`
}

// MetricResponse wraps a single stats block for narrow queries.
type MetricResponse struct {
	Type  string      `json:"type"`
	Range string      `json:"range"`
	Data  interface{} `json:"data"`
}
