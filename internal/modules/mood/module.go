package mood

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MoodModule struct{}

func New() *MoodModule {
	return &MoodModule{}
}

func (m *MoodModule) Name() string { return "mood" }

func (m *MoodModule) Models() []interface{} {
	return []interface{}{
		&MoodEntry{},
	}
}

func (m *MoodModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Put("/mood", handler.Upsert)
	router.Get("/mood/today", handler.Today)
	router.Get("/mood", handler.ListRange)
}
