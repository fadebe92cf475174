package streaks

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&UserStreak{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDayOfTruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2026, 8, 30, 1, 30, 0, 0, loc)

	day := DayOf(local)
	want := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}
}

func TestRecordStartsNewStreak(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()

	streak, err := svc.Record(userID, TypeHabit, time.Now())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if streak.CurrentStreak != 1 || streak.LongestStreak != 1 || streak.TotalDays != 1 {
		t.Fatalf("expected fresh streak of 1, got %+v", streak)
	}
}

func TestRecordSameDayIsNoOp(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()
	now := time.Now()

	if _, err := svc.Record(userID, TypeJournal, now); err != nil {
		t.Fatalf("first record: %v", err)
	}
	streak, err := svc.Record(userID, TypeJournal, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if streak.CurrentStreak != 1 || streak.TotalDays != 1 {
		t.Fatalf("expected same-day repeat to be a no-op, got %+v", streak)
	}
}

func TestRecordConsecutiveDaysAdvance(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := svc.Record(userID, TypeHabit, start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("record day %d: %v", i, err)
		}
	}

	streak, err := svc.Get(userID, TypeHabit)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if streak.CurrentStreak != 3 || streak.LongestStreak != 3 || streak.TotalDays != 3 {
		t.Fatalf("expected streak of 3, got %+v", streak)
	}
}

func TestRecordGapResetsCurrentButKeepsLongest(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := svc.Record(userID, TypeWater, start.AddDate(0, 0, i)); err != nil {
			t.Fatalf("record day %d: %v", i, err)
		}
	}

	// Two-day gap.
	streak, err := svc.Record(userID, TypeWater, start.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("record after gap: %v", err)
	}
	if streak.CurrentStreak != 1 {
		t.Fatalf("expected current streak reset to 1, got %d", streak.CurrentStreak)
	}
	if streak.LongestStreak != 5 {
		t.Fatalf("expected longest streak preserved at 5, got %d", streak.LongestStreak)
	}
	if streak.TotalDays != 6 {
		t.Fatalf("expected 6 total days, got %d", streak.TotalDays)
	}
}

func TestRecordIgnoresBackdatedDays(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()
	today := time.Now()

	for i := 2; i >= 0; i-- {
		if _, err := svc.Record(userID, TypeHabit, today.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("record day -%d: %v", i, err)
		}
	}

	// Backfilling a missed day from last week must not touch the live streak.
	streak, err := svc.Record(userID, TypeHabit, today.AddDate(0, 0, -6))
	if err != nil {
		t.Fatalf("backdated record: %v", err)
	}
	if streak.CurrentStreak != 3 {
		t.Fatalf("expected current streak untouched at 3, got %d", streak.CurrentStreak)
	}
	if streak.LastActivityDate == nil || !DayOf(*streak.LastActivityDate).Equal(DayOf(today)) {
		t.Fatalf("expected last activity to stay at today, got %v", streak.LastActivityDate)
	}
	if streak.TotalDays != 3 {
		t.Fatalf("expected total days unchanged at 3, got %d", streak.TotalDays)
	}
}

func TestRecordRejectsUnknownType(t *testing.T) {
	svc := NewService(newTestDB(t))

	if _, err := svc.Record(uuid.New(), "sleep", time.Now()); err != ErrUnknownStreakType {
		t.Fatalf("expected ErrUnknownStreakType, got %v", err)
	}
}

func TestGetReturnsPlaceholderForNewUser(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()

	streak, err := svc.Get(userID, TypeHabit)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if streak.CurrentStreak != 0 || streak.LongestStreak != 0 {
		t.Fatalf("expected zero-valued placeholder, got %+v", streak)
	}
}

func TestSnapshotReturnsAllTypes(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()
	now := time.Now()

	for _, typ := range []string{TypeHabit, TypeWater, TypeJournal} {
		if _, err := svc.Record(userID, typ, now); err != nil {
			t.Fatalf("record %s: %v", typ, err)
		}
	}

	snapshot, err := svc.Snapshot(userID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 streak rows, got %d", len(snapshot))
	}
}
