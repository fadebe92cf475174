package journal

import (
	"testing"
	"time"

	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
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

	if err := db.AutoMigrate(&JournalEntry{}, &streaks.UserStreak{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, streaks.NewService(db))
}

func TestUpsertRequiresContent(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Upsert(uuid.New(), UpsertJournalRequest{}); err != ErrContentRequired {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
}

func TestUpsertReplacesSameDayEntry(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	first, err := svc.Upsert(userID, UpsertJournalRequest{EntryDate: "2026-08-15", Content: "draft"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.Upsert(userID, UpsertJournalRequest{EntryDate: "2026-08-15", Content: "final thoughts"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the same row, got %s then %s", first.ID, second.ID)
	}
	if second.Content != "final thoughts" {
		t.Fatalf("expected content replaced, got %q", second.Content)
	}

	total, err := svc.Count(userID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected one entry for the day, got %d", total)
	}
}

func TestUpsertRecordsJournalStreakOncePerDay(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()
	today := time.Now().UTC().Format("2006-01-02")

	if _, err := svc.Upsert(userID, UpsertJournalRequest{EntryDate: today, Content: "morning"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := svc.Upsert(userID, UpsertJournalRequest{EntryDate: today, Content: "evening"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	streak, err := svc.streakSvc.Get(userID, streaks.TypeJournal)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if streak.CurrentStreak != 1 || streak.TotalDays != 1 {
		t.Fatalf("expected one streak day, got %+v", streak)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Upsert(userID, UpsertJournalRequest{EntryDate: "2026-08-10", Content: "gone soon"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.Delete(userID, day); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByDate(userID, day); err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound after delete, got %v", err)
	}
}
