package settings

import (
	"testing"

	"github.com/bloomapp/bloom-backend/internal/config"
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

	if err := db.AutoMigrate(&UserSettings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		DefaultWaterGoalML:    2000,
		DefaultStepsGoal:      8000,
		DefaultSleepGoalHours: 8,
	}
	return NewService(db, cfg)
}

func TestGetCreatesDefaultsOnFirstAccess(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	settings, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.Theme != "system" {
		t.Fatalf("expected default theme system, got %q", settings.Theme)
	}
	if settings.WaterGoalML != 2000 || settings.StepsGoal != 8000 || settings.SleepGoalHours != 8 {
		t.Fatalf("expected app default goals, got %+v", settings)
	}

	again, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatalf("expected the same row on repeat access, got %s then %s", settings.ID, again.ID)
	}
}

func TestCreateDefaultsSurvivesConcurrentFirstAccess(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	// Simulate losing the insert race: the row already exists by the time
	// the create path runs.
	existing, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("seed row: %v", err)
	}

	settings, err := svc.createDefaults(userID)
	if err != nil {
		t.Fatalf("expected conflicting create to succeed, got %v", err)
	}
	if settings.ID != existing.ID {
		t.Fatalf("expected the existing row back, got %s instead of %s", settings.ID, existing.ID)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	theme := "dark"
	updated, err := svc.Update(userID, UpdateSettingsRequest{Theme: &theme})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Theme != "dark" {
		t.Fatalf("expected theme dark, got %q", updated.Theme)
	}
	if updated.WaterGoalML != 2000 {
		t.Fatalf("expected untouched water goal, got %d", updated.WaterGoalML)
	}
}

func TestUpdateRejectsInvalidTheme(t *testing.T) {
	svc := newTestService(t)

	theme := "neon"
	if _, err := svc.Update(uuid.New(), UpdateSettingsRequest{Theme: &theme}); err != ErrInvalidTheme {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestUpdateRejectsNonPositiveGoals(t *testing.T) {
	svc := newTestService(t)

	zero := 0
	if _, err := svc.Update(uuid.New(), UpdateSettingsRequest{StepsGoal: &zero}); err != ErrInvalidGoal {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
}
