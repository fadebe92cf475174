package habits

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HabitsModule struct {
	streakSvc *streaks.Service
}

func New(streakSvc *streaks.Service) *HabitsModule {
	return &HabitsModule{streakSvc: streakSvc}
}

func (m *HabitsModule) Name() string { return "habits" }

func (m *HabitsModule) Models() []interface{} {
	return []interface{}{
		&Habit{},
		&HabitEntry{},
	}
}

func (m *HabitsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, m.streakSvc)
	handler := NewHandler(svc)

	router.Post("/habits", handler.Create)
	router.Get("/habits", handler.List)
	router.Get("/habits/entries", handler.ListEntries)
	router.Put("/habits/:id", handler.Update)
	router.Post("/habits/:id/archive", handler.Archive)
	router.Put("/habits/:id/entries", handler.UpsertEntry)
}
