package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bloomapp/bloom-backend/internal/modules/achievements"
	"github.com/bloomapp/bloom-backend/internal/modules/goals"
	"github.com/bloomapp/bloom-backend/internal/modules/habits"
	"github.com/bloomapp/bloom-backend/internal/modules/mood"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/bloomapp/bloom-backend/internal/modules/todos"
	"github.com/bloomapp/bloom-backend/internal/modules/wellness"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidRange  = errors.New("range must be week, month or year")
	ErrInvalidMetric = errors.New("type must be habits, mood, goals, tasks or wellness")
)

// Range selects the aggregation window.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// ParseRange validates a query value, defaulting to week when empty.
func ParseRange(value string) (Range, error) {
	switch value {
	case "":
		return RangeWeek, nil
	case string(RangeWeek), string(RangeMonth), string(RangeYear):
		return Range(value), nil
	}
	return "", ErrInvalidRange
}

// Since returns the inclusive start of the window. The reference time is
// truncated to its day first so a week window always covers seven whole
// calendar days.
func (r Range) Since(now time.Time) time.Time {
	day := streaks.DayOf(now)
	switch r {
	case RangeMonth:
		return day.AddDate(0, -1, 0)
	case RangeYear:
		return day.AddDate(-1, 0, 0)
	default:
		return day.AddDate(0, 0, -7)
	}
}

// ProductivityScore blends the three completion rates (each 0-100) into one
// number, weighting habits highest.
func ProductivityScore(habitRate, goalRate, taskRate float64) int {
	return int(math.Round(habitRate*0.4 + goalRate*0.3 + taskRate*0.3))
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Overview aggregates every stats block into the dashboard payload. Queries
// run sequentially; any failure fails the whole request.
func (s *Service) Overview(userID uuid.UUID, r Range) (*OverviewResponse, error) {
	now := time.Now()
	since := r.Since(now)

	habitStats, err := s.habitStats(userID, since)
	if err != nil {
		return nil, err
	}
	moodStats, err := s.moodStats(userID, since)
	if err != nil {
		return nil, err
	}
	goalStats, err := s.goalStats(userID, now.Year())
	if err != nil {
		return nil, err
	}
	taskStats, err := s.taskStats(userID, since)
	if err != nil {
		return nil, err
	}
	wellnessStats, err := s.wellnessStats(userID, since)
	if err != nil {
		return nil, err
	}

	var streakRows []streaks.UserStreak
	if err := s.db.Where("user_id = ?", userID).Order("streak_type ASC").Find(&streakRows).Error; err != nil {
		return nil, err
	}

	var recent []achievements.UserAchievement
	err = s.db.Where("user_id = ?", userID).
		Order("earned_date DESC, created_at DESC").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}

	trend, weeklyStreak, err := s.weeklyTrend(userID, since, now)
	if err != nil {
		return nil, err
	}

	weekSince := RangeWeek.Since(now)
	var completedThisWeek int64
	err = s.db.Model(&todos.Todo{}).
		Where("user_id = ? AND completed = ? AND completed_at >= ?", userID, true, weekSince).
		Count(&completedThisWeek).Error
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		Range:                  string(r),
		ProductivityScore:      ProductivityScore(habitStats.CompletionRate, goalStats.CompletionRate, taskStats.CompletionRate),
		Habits:                 habitStats,
		Mood:                   moodStats,
		Goals:                  goalStats,
		Tasks:                  taskStats,
		Wellness:               wellnessStats,
		Streaks:                streakRows,
		RecentAchievements:     recent,
		WeeklyTrend:            trend,
		WeeklyHabitStreak:      weeklyStreak,
		CompletedTasksThisWeek: completedThisWeek,
		AverageMood:            moodStats.AverageMood,
	}, nil
}

// Metric returns a single stats block for dashboards that only need one.
func (s *Service) Metric(userID uuid.UUID, metricType string, r Range) (*MetricResponse, error) {
	since := r.Since(time.Now())

	var data interface{}
	var err error
	switch metricType {
	case "habits":
		data, err = s.habitStats(userID, since)
	case "mood":
		data, err = s.moodStats(userID, since)
	case "goals":
		data, err = s.goalStats(userID, time.Now().Year())
	case "tasks":
		data, err = s.taskStats(userID, since)
	case "wellness":
		data, err = s.wellnessStats(userID, since)
	default:
		return nil, ErrInvalidMetric
	}
	if err != nil {
		return nil, err
	}

	return &MetricResponse{Type: metricType, Range: string(r), Data: data}, nil
}

func (s *Service) habitStats(userID uuid.UUID, since time.Time) (HabitStats, error) {
	var stats HabitStats

	err := s.db.Model(&habits.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.ActiveHabits).Error
	if err != nil {
		return stats, err
	}

	type row struct {
		Total     int64
		Completed int64
	}
	var r row
	err = s.db.Model(&habits.HabitEntry{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed").
		Joins("JOIN habits ON habits.id = habit_entries.habit_id").
		Where("habit_entries.user_id = ? AND habit_entries.entry_date >= ?", userID, since).
		Where("habits.is_active = ? AND habits.deleted_at IS NULL", true).
		Scan(&r).Error
	if err != nil {
		return stats, err
	}

	stats.TotalEntries = r.Total
	stats.CompletedEntries = r.Completed
	if r.Total > 0 {
		stats.CompletionRate = round1(float64(r.Completed) / float64(r.Total) * 100)
	}
	return stats, nil
}

func (s *Service) moodStats(userID uuid.UUID, since time.Time) (MoodStats, error) {
	var stats MoodStats

	type row struct {
		Count   int64
		Average float64
	}
	var r row
	err := s.db.Model(&mood.MoodEntry{}).
		Select("COUNT(*) AS count, COALESCE(AVG(mood_value), 0) AS average").
		Where("user_id = ? AND entry_date >= ?", userID, since).
		Scan(&r).Error
	if err != nil {
		return stats, err
	}
	stats.EntryCount = r.Count
	stats.AverageMood = round1(r.Average)

	if r.Count > 0 {
		var dominant struct {
			MoodEmoji string
		}
		err = s.db.Model(&mood.MoodEntry{}).
			Select("mood_emoji").
			Where("user_id = ? AND entry_date >= ? AND mood_emoji <> ''", userID, since).
			Group("mood_emoji").
			Order("COUNT(*) DESC").
			Limit(1).
			Scan(&dominant).Error
		if err != nil {
			return stats, err
		}
		stats.DominantMood = dominant.MoodEmoji
	}
	return stats, nil
}

func (s *Service) goalStats(userID uuid.UUID, year int) (GoalStats, error) {
	var stats GoalStats

	var userGoals []goals.YearlyGoal
	err := s.db.Where("user_id = ? AND year = ?", userID, year).Find(&userGoals).Error
	if err != nil {
		return stats, err
	}
	if len(userGoals) == 0 {
		return stats, nil
	}

	var subGoals []goals.SubGoal
	if err := s.db.Where("user_id = ?", userID).Find(&subGoals).Error; err != nil {
		return stats, err
	}
	byGoal := make(map[uuid.UUID][]goals.SubGoal)
	for _, sg := range subGoals {
		byGoal[sg.GoalID] = append(byGoal[sg.GoalID], sg)
	}

	stats.TotalGoals = int64(len(userGoals))
	for _, g := range userGoals {
		if goals.Progress(g, byGoal[g.ID]) == 100 {
			stats.CompletedGoals++
		}
	}
	stats.CompletionRate = round1(float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100)
	return stats, nil
}

func (s *Service) taskStats(userID uuid.UUID, since time.Time) (TaskStats, error) {
	var stats TaskStats

	type row struct {
		Total     int64
		Completed int64
	}
	var r row
	err := s.db.Model(&todos.Todo{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0) AS completed").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Scan(&r).Error
	if err != nil {
		return stats, err
	}

	stats.TotalTasks = r.Total
	stats.CompletedTasks = r.Completed
	if r.Total > 0 {
		stats.CompletionRate = round1(float64(r.Completed) / float64(r.Total) * 100)
	}
	return stats, nil
}

func (s *Service) wellnessStats(userID uuid.UUID, since time.Time) (WellnessStats, error) {
	var stats WellnessStats

	type row struct {
		Days  int64
		Water float64
		Steps float64
		Sleep float64
	}
	var r row
	err := s.db.Model(&wellness.WellnessLog{}).
		Select("COUNT(*) AS days, COALESCE(AVG(water_ml), 0) AS water, COALESCE(AVG(steps), 0) AS steps, COALESCE(AVG(sleep_hours), 0) AS sleep").
		Where("user_id = ? AND log_date >= ?", userID, since).
		Scan(&r).Error
	if err != nil {
		return stats, err
	}

	stats.DaysLogged = r.Days
	stats.AverageWaterML = round1(r.Water)
	stats.AverageSteps = round1(r.Steps)
	stats.AverageSleepHours = round1(r.Sleep)
	return stats, nil
}

// weeklyTrend computes the habit completion rate per ISO week and counts how
// many of the last seven days had at least one completion.
func (s *Service) weeklyTrend(userID uuid.UUID, since, now time.Time) ([]WeeklyTrendPoint, int, error) {
	var entries []habits.HabitEntry
	err := s.db.Where("user_id = ? AND entry_date >= ?", userID, since).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	totals := make(map[string]int64)
	completions := make(map[string]int64)
	activeDays := make(map[time.Time]bool)
	weekSince := RangeWeek.Since(now)

	for _, entry := range entries {
		year, week := entry.EntryDate.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		totals[key]++
		if !entry.Completed {
			continue
		}
		completions[key]++
		day := streaks.DayOf(entry.EntryDate)
		if !day.Before(weekSince) {
			activeDays[day] = true
		}
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	trend := make([]WeeklyTrendPoint, 0, len(keys))
	for _, k := range keys {
		trend = append(trend, WeeklyTrendPoint{
			Week:             k,
			TotalEntries:     totals[k],
			CompletedEntries: completions[k],
			CompletionRate:   round1(float64(completions[k]) / float64(totals[k]) * 100),
		})
	}
	return trend, len(activeDays), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
