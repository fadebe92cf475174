package streaks

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StreaksModule struct {
	service *Service
}

func New(service *Service) *StreaksModule {
	return &StreaksModule{service: service}
}

func (m *StreaksModule) Name() string { return "streaks" }

func (m *StreaksModule) Models() []interface{} {
	return []interface{}{
		&UserStreak{},
	}
}

func (m *StreaksModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(m.service)

	router.Get("/streaks", handler.Snapshot)
}
