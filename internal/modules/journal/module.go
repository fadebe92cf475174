package journal

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JournalModule struct {
	streakSvc *streaks.Service
}

func New(streakSvc *streaks.Service) *JournalModule {
	return &JournalModule{streakSvc: streakSvc}
}

func (m *JournalModule) Name() string { return "journal" }

func (m *JournalModule) Models() []interface{} {
	return []interface{}{
		&JournalEntry{},
	}
}

func (m *JournalModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, m.streakSvc)
	handler := NewHandler(svc)

	router.Put("/journal", handler.Upsert)
	router.Get("/journal", handler.List)
	router.Get("/journal/:date", handler.GetByDate)
	router.Delete("/journal/:date", handler.Delete)
}
