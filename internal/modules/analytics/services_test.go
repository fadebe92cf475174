package analytics

import (
	"testing"
	"time"

	"github.com/bloomapp/bloom-backend/internal/modules/achievements"
	"github.com/bloomapp/bloom-backend/internal/modules/goals"
	"github.com/bloomapp/bloom-backend/internal/modules/habits"
	"github.com/bloomapp/bloom-backend/internal/modules/mood"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/bloomapp/bloom-backend/internal/modules/todos"
	"github.com/bloomapp/bloom-backend/internal/modules/wellness"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestEnv(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&habits.Habit{},
		&habits.HabitEntry{},
		&mood.MoodEntry{},
		&goals.YearlyGoal{},
		&goals.SubGoal{},
		&todos.Todo{},
		&wellness.WellnessLog{},
		&streaks.UserStreak{},
		&achievements.UserAchievement{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db), db
}

func TestParseRange(t *testing.T) {
	if r, err := ParseRange(""); err != nil || r != RangeWeek {
		t.Fatalf("expected empty value to default to week, got %v %v", r, err)
	}
	if r, err := ParseRange("year"); err != nil || r != RangeYear {
		t.Fatalf("expected year, got %v %v", r, err)
	}
	if _, err := ParseRange("decade"); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestWeekWindowCoversSevenWholeDays(t *testing.T) {
	// Reference in the afternoon: the window must still reach back to
	// midnight seven days earlier.
	now := time.Date(2026, 8, 30, 13, 45, 0, 0, time.UTC)
	since := RangeWeek.Since(now)

	want := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	if !since.Equal(want) {
		t.Fatalf("expected window start %v, got %v", want, since)
	}

	boundary := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2026, 8, 22, 23, 0, 0, 0, time.UTC)
	if boundary.Before(since) {
		t.Fatal("entry exactly seven days back should be inside the window")
	}
	if !outside.Before(since) {
		t.Fatal("entry eight days back should be outside the window")
	}
}

func TestProductivityScoreWeighting(t *testing.T) {
	if got := ProductivityScore(100, 100, 100); got != 100 {
		t.Fatalf("expected perfect score 100, got %d", got)
	}
	if got := ProductivityScore(0, 0, 0); got != 0 {
		t.Fatalf("expected zero score, got %d", got)
	}
	// 50*0.4 + 100*0.3 + 0*0.3 = 50
	if got := ProductivityScore(50, 100, 0); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	// 33.4 rounds to 33, 33.5 rounds up
	if got := ProductivityScore(10, 98, 0); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
}

func TestHabitStatsCountOnlyActiveHabits(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	active := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
	archived := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Old", IsActive: false}
	for _, h := range []habits.Habit{active, archived} {
		if err := db.Create(&h).Error; err != nil {
			t.Fatalf("create habit: %v", err)
		}
	}

	entries := []habits.HabitEntry{
		{ID: uuid.New(), HabitID: active.ID, UserID: userID, EntryDate: today, Completed: true},
		{ID: uuid.New(), HabitID: active.ID, UserID: userID, EntryDate: today.AddDate(0, 0, -1), Completed: false},
		{ID: uuid.New(), HabitID: archived.ID, UserID: userID, EntryDate: today, Completed: true},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	stats, err := svc.habitStats(userID, RangeWeek.Since(time.Now()))
	if err != nil {
		t.Fatalf("habit stats: %v", err)
	}
	if stats.ActiveHabits != 1 {
		t.Fatalf("expected 1 active habit, got %d", stats.ActiveHabits)
	}
	if stats.TotalEntries != 2 || stats.CompletedEntries != 1 {
		t.Fatalf("expected archived habit excluded (2 entries, 1 completed), got %+v", stats)
	}
	if stats.CompletionRate != 50 {
		t.Fatalf("expected 50%% completion, got %v", stats.CompletionRate)
	}
}

func TestMoodStatsAverageAndDominantMood(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	values := []struct {
		value int
		emoji string
	}{
		{5, "😄"},
		{4, "🙂"},
		{4, "🙂"},
	}
	for i, v := range values {
		entry := mood.MoodEntry{
			ID:        uuid.New(),
			UserID:    userID,
			EntryDate: today.AddDate(0, 0, -i),
			MoodValue: v.value,
			MoodEmoji: v.emoji,
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("create mood entry: %v", err)
		}
	}

	stats, err := svc.moodStats(userID, RangeWeek.Since(time.Now()))
	if err != nil {
		t.Fatalf("mood stats: %v", err)
	}
	if stats.EntryCount != 3 {
		t.Fatalf("expected 3 entries, got %d", stats.EntryCount)
	}
	if stats.AverageMood != 4.3 {
		t.Fatalf("expected average 4.3, got %v", stats.AverageMood)
	}
	if stats.DominantMood != "🙂" {
		t.Fatalf("expected dominant mood 🙂, got %q", stats.DominantMood)
	}
}

func TestGoalStatsCoverCurrentYearOnly(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	year := time.Now().Year()

	current := goals.YearlyGoal{ID: uuid.New(), UserID: userID, Title: "Ship app", Year: year, IsDone: true}
	open := goals.YearlyGoal{ID: uuid.New(), UserID: userID, Title: "Run marathon", Year: year}
	past := goals.YearlyGoal{ID: uuid.New(), UserID: userID, Title: "Old goal", Year: year - 1, IsDone: true}
	for _, g := range []goals.YearlyGoal{current, open, past} {
		if err := db.Create(&g).Error; err != nil {
			t.Fatalf("create goal: %v", err)
		}
	}

	stats, err := svc.goalStats(userID, year)
	if err != nil {
		t.Fatalf("goal stats: %v", err)
	}
	if stats.TotalGoals != 2 {
		t.Fatalf("expected 2 goals for the current year, got %d", stats.TotalGoals)
	}
	if stats.CompletedGoals != 1 {
		t.Fatalf("expected 1 completed goal, got %d", stats.CompletedGoals)
	}
	if stats.CompletionRate != 50 {
		t.Fatalf("expected 50%% completion, got %v", stats.CompletionRate)
	}
}

func TestTaskStatsAreScopedToUser(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	otherID := uuid.New()

	mine := todos.Todo{ID: uuid.New(), UserID: userID, Title: "Mine", Completed: true}
	theirs := todos.Todo{ID: uuid.New(), UserID: otherID, Title: "Theirs", Completed: true}
	for _, task := range []todos.Todo{mine, theirs} {
		if err := db.Create(&task).Error; err != nil {
			t.Fatalf("create todo: %v", err)
		}
	}

	stats, err := svc.taskStats(userID, RangeWeek.Since(time.Now()))
	if err != nil {
		t.Fatalf("task stats: %v", err)
	}
	if stats.TotalTasks != 1 || stats.CompletedTasks != 1 {
		t.Fatalf("expected only the user's own task, got %+v", stats)
	}
}

func TestWellnessStatsAverageDailyLogs(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	logs := []wellness.WellnessLog{
		{ID: uuid.New(), UserID: userID, LogDate: today, WaterML: 2000, Steps: 10000, SleepHours: 8},
		{ID: uuid.New(), UserID: userID, LogDate: today.AddDate(0, 0, -1), WaterML: 1000, Steps: 6000, SleepHours: 6},
	}
	for i := range logs {
		if err := db.Create(&logs[i]).Error; err != nil {
			t.Fatalf("create log: %v", err)
		}
	}

	stats, err := svc.wellnessStats(userID, RangeWeek.Since(time.Now()))
	if err != nil {
		t.Fatalf("wellness stats: %v", err)
	}
	if stats.DaysLogged != 2 {
		t.Fatalf("expected 2 days logged, got %d", stats.DaysLogged)
	}
	if stats.AverageWaterML != 1500 || stats.AverageSteps != 8000 || stats.AverageSleepHours != 7 {
		t.Fatalf("unexpected averages: %+v", stats)
	}
}

func TestWeeklyTrendReportsCompletionRate(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	habit := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
	if err := db.Create(&habit).Error; err != nil {
		t.Fatalf("create habit: %v", err)
	}

	entries := []habits.HabitEntry{
		{ID: uuid.New(), HabitID: habit.ID, UserID: userID, EntryDate: today, Completed: true},
		{ID: uuid.New(), HabitID: habit.ID, UserID: userID, EntryDate: today.AddDate(0, 0, -1), Completed: false},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}

	trend, _, err := svc.weeklyTrend(userID, RangeWeek.Since(time.Now()), time.Now())
	if err != nil {
		t.Fatalf("weekly trend: %v", err)
	}

	var total, completed int64
	var weightedSum float64
	for _, point := range trend {
		total += point.TotalEntries
		completed += point.CompletedEntries
		weightedSum += point.CompletionRate * float64(point.TotalEntries)
	}
	if total != 2 || completed != 1 {
		t.Fatalf("expected 2 entries with 1 completion across buckets, got %d/%d", completed, total)
	}
	// Uncompleted entries must drag the rate down, whether the two days
	// fall into one ISO week bucket or two.
	if weightedSum/float64(total) != 50 {
		t.Fatalf("expected an overall 50%% rate, got %v", weightedSum/float64(total))
	}
}

func TestMetricRejectsUnknownType(t *testing.T) {
	svc, _ := newTestEnv(t)

	if _, err := svc.Metric(uuid.New(), "horoscope", RangeWeek); err != ErrInvalidMetric {
		t.Fatalf("expected ErrInvalidMetric, got %v", err)
	}
}

func TestOverviewAggregatesEverything(t *testing.T) {
	svc, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	habit := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
	if err := db.Create(&habit).Error; err != nil {
		t.Fatalf("create habit: %v", err)
	}
	entry := habits.HabitEntry{ID: uuid.New(), HabitID: habit.ID, UserID: userID, EntryDate: today, Completed: true}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("create entry: %v", err)
	}
	moodEntry := mood.MoodEntry{ID: uuid.New(), UserID: userID, EntryDate: today, MoodValue: 4, MoodEmoji: "🙂"}
	if err := db.Create(&moodEntry).Error; err != nil {
		t.Fatalf("create mood: %v", err)
	}
	completedAt := time.Now()
	task := todos.Todo{ID: uuid.New(), UserID: userID, Title: "Ship", Completed: true, CompletedAt: &completedAt}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create todo: %v", err)
	}

	overview, err := svc.Overview(userID, RangeWeek)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if overview.Habits.CompletionRate != 100 {
		t.Fatalf("expected 100%% habit completion, got %v", overview.Habits.CompletionRate)
	}
	if overview.Tasks.CompletionRate != 100 {
		t.Fatalf("expected 100%% task completion, got %v", overview.Tasks.CompletionRate)
	}
	if overview.CompletedTasksThisWeek != 1 {
		t.Fatalf("expected 1 completed task this week, got %d", overview.CompletedTasksThisWeek)
	}
	if overview.AverageMood != 4 {
		t.Fatalf("expected average mood 4, got %v", overview.AverageMood)
	}
	if overview.WeeklyHabitStreak != 1 {
		t.Fatalf("expected 1 active day this week, got %d", overview.WeeklyHabitStreak)
	}
	if len(overview.WeeklyTrend) != 1 || overview.WeeklyTrend[0].CompletionRate != 100 {
		t.Fatalf("expected a single trend bucket at 100%%, got %+v", overview.WeeklyTrend)
	}
	// habits 100*0.4 + goals 0*0.3 + tasks 100*0.3
	if overview.ProductivityScore != 70 {
		t.Fatalf("expected productivity score 70, got %d", overview.ProductivityScore)
	}
}
