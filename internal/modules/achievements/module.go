package achievements

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AchievementsModule struct {
	service *Service
}

func New(service *Service) *AchievementsModule {
	return &AchievementsModule{service: service}
}

func (m *AchievementsModule) Name() string { return "achievements" }

func (m *AchievementsModule) Models() []interface{} {
	return []interface{}{
		&UserAchievement{},
	}
}

func (m *AchievementsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(m.service)

	router.Get("/achievements", handler.List)
	router.Post("/achievements", handler.Award)
	router.Put("/achievements", handler.Evaluate)
}
