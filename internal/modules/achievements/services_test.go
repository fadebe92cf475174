package achievements

import (
	"testing"
	"time"

	"github.com/bloomapp/bloom-backend/internal/modules/goals"
	"github.com/bloomapp/bloom-backend/internal/modules/habits"
	"github.com/bloomapp/bloom-backend/internal/modules/journal"
	"github.com/bloomapp/bloom-backend/internal/modules/mood"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestEnv(t *testing.T) (*Service, *streaks.Service, *gorm.DB) {
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
		&UserAchievement{},
		&streaks.UserStreak{},
		&journal.JournalEntry{},
		&goals.YearlyGoal{},
		&goals.SubGoal{},
		&habits.Habit{},
		&habits.HabitEntry{},
		&mood.MoodEntry{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	streakSvc := streaks.NewService(db)
	return NewService(db, streakSvc), streakSvc, db
}

func earnedTypes(earned []UserAchievement) map[string]bool {
	types := make(map[string]bool, len(earned))
	for _, a := range earned {
		types[a.AchievementType] = true
	}
	return types
}

func TestEvaluateAwardsHabitStreakMilestone(t *testing.T) {
	svc, streakSvc, _ := newTestEnv(t)
	userID := uuid.New()
	start := time.Now().AddDate(0, 0, -2)

	for i := 0; i < 3; i++ {
		if _, err := streakSvc.Record(userID, streaks.TypeHabit, start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("record streak day %d: %v", i, err)
		}
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	types := earnedTypes(earned)
	if !types["habit_streak_3"] {
		t.Fatalf("expected habit_streak_3 to be earned, got %v", types)
	}
	if types["habit_streak_7"] || types["habit_streak_30"] {
		t.Fatalf("did not expect higher milestones at streak 3, got %v", types)
	}
}

func TestEvaluateWithholdsBelowThreshold(t *testing.T) {
	svc, streakSvc, _ := newTestEnv(t)
	userID := uuid.New()
	start := time.Now().AddDate(0, 0, -1)

	for i := 0; i < 2; i++ {
		if _, err := streakSvc.Record(userID, streaks.TypeHabit, start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("record streak day %d: %v", i, err)
		}
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if earnedTypes(earned)["habit_streak_3"] {
		t.Fatal("did not expect habit_streak_3 at a streak of 2")
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	svc, streakSvc, _ := newTestEnv(t)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		if _, err := streakSvc.Record(userID, streaks.TypeHabit, time.Now().AddDate(0, 0, i-2)); err != nil {
			t.Fatalf("record streak: %v", err)
		}
	}

	first, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected first evaluation to award something")
	}

	second, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected second evaluation to award nothing, got %d", len(second))
	}

	all, err := svc.Earned(userID)
	if err != nil {
		t.Fatalf("earned: %v", err)
	}
	if len(all) != len(first) {
		t.Fatalf("expected %d total achievements, got %d", len(first), len(all))
	}
}

func TestEvaluateAwardsReflectionMilestone(t *testing.T) {
	svc, _, db := newTestEnv(t)
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		entry := journal.JournalEntry{
			ID:        uuid.New(),
			UserID:    userID,
			EntryDate: start.AddDate(0, 0, i),
			Content:   "reflection",
		}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("create entry %d: %v", i, err)
		}
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	types := earnedTypes(earned)
	if !types["reflection_5"] {
		t.Fatalf("expected reflection_5, got %v", types)
	}
	if types["reflection_25"] {
		t.Fatalf("did not expect reflection_25 at 5 entries, got %v", types)
	}
}

func TestEvaluateAwardsGoalAchievements(t *testing.T) {
	svc, _, db := newTestEnv(t)
	userID := uuid.New()

	goal := goals.YearlyGoal{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Learn piano",
		Year:   time.Now().Year(),
	}
	if err := db.Create(&goal).Error; err != nil {
		t.Fatalf("create goal: %v", err)
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	types := earnedTypes(earned)
	if !types["goal_created"] {
		t.Fatalf("expected goal_created, got %v", types)
	}
	if types["goal_completed"] {
		t.Fatalf("did not expect goal_completed for an open goal, got %v", types)
	}

	if err := db.Model(&goals.YearlyGoal{}).Where("id = ?", goal.ID).Update("is_done", true).Error; err != nil {
		t.Fatalf("complete goal: %v", err)
	}

	earned, err = svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if !earnedTypes(earned)["goal_completed"] {
		t.Fatalf("expected goal_completed after finishing the goal, got %v", earnedTypes(earned))
	}
}

func TestEvaluateAwardsPerfectDay(t *testing.T) {
	svc, _, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	habit := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
	if err := db.Create(&habit).Error; err != nil {
		t.Fatalf("create habit: %v", err)
	}
	entry := habits.HabitEntry{ID: uuid.New(), HabitID: habit.ID, UserID: userID, EntryDate: today, Completed: true}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("create habit entry: %v", err)
	}
	moodEntry := mood.MoodEntry{ID: uuid.New(), UserID: userID, EntryDate: today, MoodValue: 4}
	if err := db.Create(&moodEntry).Error; err != nil {
		t.Fatalf("create mood entry: %v", err)
	}
	journalEntry := journal.JournalEntry{ID: uuid.New(), UserID: userID, EntryDate: today, Content: "great day"}
	if err := db.Create(&journalEntry).Error; err != nil {
		t.Fatalf("create journal entry: %v", err)
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !earnedTypes(earned)["perfect_day"] {
		t.Fatalf("expected perfect_day, got %v", earnedTypes(earned))
	}
}

func TestPerfectDayRequiresEveryActiveHabit(t *testing.T) {
	svc, _, db := newTestEnv(t)
	userID := uuid.New()
	today := streaks.DayOf(time.Now())

	done := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
	missed := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Read", IsActive: true}
	for _, h := range []habits.Habit{done, missed} {
		if err := db.Create(&h).Error; err != nil {
			t.Fatalf("create habit: %v", err)
		}
	}
	entry := habits.HabitEntry{ID: uuid.New(), HabitID: done.ID, UserID: userID, EntryDate: today, Completed: true}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("create habit entry: %v", err)
	}
	moodEntry := mood.MoodEntry{ID: uuid.New(), UserID: userID, EntryDate: today, MoodValue: 3}
	if err := db.Create(&moodEntry).Error; err != nil {
		t.Fatalf("create mood entry: %v", err)
	}
	journalEntry := journal.JournalEntry{ID: uuid.New(), UserID: userID, EntryDate: today, Content: "almost"}
	if err := db.Create(&journalEntry).Error; err != nil {
		t.Fatalf("create journal entry: %v", err)
	}

	earned, err := svc.EvaluateAll(userID)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if earnedTypes(earned)["perfect_day"] {
		t.Fatal("did not expect perfect_day with an unfinished habit")
	}
}

func TestPerfectDayRequiresMoodAndJournal(t *testing.T) {
	cases := []struct {
		name        string
		withMood    bool
		withJournal bool
	}{
		{name: "missing mood", withMood: false, withJournal: true},
		{name: "missing journal", withMood: true, withJournal: false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _, db := newTestEnv(t)
			userID := uuid.New()
			today := streaks.DayOf(time.Now())

			habit := habits.Habit{ID: uuid.New(), UserID: userID, Title: "Walk", IsActive: true}
			if err := db.Create(&habit).Error; err != nil {
				t.Fatalf("create habit: %v", err)
			}
			entry := habits.HabitEntry{ID: uuid.New(), HabitID: habit.ID, UserID: userID, EntryDate: today, Completed: true}
			if err := db.Create(&entry).Error; err != nil {
				t.Fatalf("create habit entry: %v", err)
			}
			if testCase.withMood {
				moodEntry := mood.MoodEntry{ID: uuid.New(), UserID: userID, EntryDate: today, MoodValue: 4}
				if err := db.Create(&moodEntry).Error; err != nil {
					t.Fatalf("create mood entry: %v", err)
				}
			}
			if testCase.withJournal {
				journalEntry := journal.JournalEntry{ID: uuid.New(), UserID: userID, EntryDate: today, Content: "close"}
				if err := db.Create(&journalEntry).Error; err != nil {
					t.Fatalf("create journal entry: %v", err)
				}
			}

			earned, err := svc.EvaluateAll(userID)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if earnedTypes(earned)["perfect_day"] {
				t.Fatal("did not expect perfect_day")
			}
		})
	}
}

func TestAwardSpecificRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestEnv(t)

	if _, _, err := svc.AwardSpecific(uuid.New(), "time_traveler"); err != ErrUnknownAchievement {
		t.Fatalf("expected ErrUnknownAchievement, got %v", err)
	}
}

func TestAwardSpecificIsIdempotent(t *testing.T) {
	svc, _, _ := newTestEnv(t)
	userID := uuid.New()

	first, created, err := svc.AwardSpecific(userID, "perfect_day")
	if err != nil {
		t.Fatalf("first award: %v", err)
	}
	if !created {
		t.Fatal("expected the first award to be new")
	}

	second, created, err := svc.AwardSpecific(userID, "perfect_day")
	if err != nil {
		t.Fatalf("second award: %v", err)
	}
	if created {
		t.Fatal("expected the second award to be a no-op")
	}
	if first.ID != second.ID {
		t.Fatalf("expected the existing row back, got %s then %s", first.ID, second.ID)
	}
}

func TestAvailableShrinksAsAchievementsAreEarned(t *testing.T) {
	svc, _, _ := newTestEnv(t)
	userID := uuid.New()

	available, err := svc.Available(userID)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(available) != len(Definitions()) {
		t.Fatalf("expected the full catalog for a new user, got %d", len(available))
	}

	if _, _, err := svc.AwardSpecific(userID, "goal_created"); err != nil {
		t.Fatalf("award: %v", err)
	}

	available, err = svc.Available(userID)
	if err != nil {
		t.Fatalf("available after award: %v", err)
	}
	if len(available) != len(Definitions())-1 {
		t.Fatalf("expected catalog minus one, got %d", len(available))
	}
	for _, def := range available {
		if def.Type == "goal_created" {
			t.Fatal("earned achievement still listed as available")
		}
	}
}
