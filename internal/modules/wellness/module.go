package wellness

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WellnessModule struct {
	service *Service
}

func New(service *Service) *WellnessModule {
	return &WellnessModule{service: service}
}

func (m *WellnessModule) Name() string { return "wellness" }

func (m *WellnessModule) Models() []interface{} {
	return []interface{}{
		&WellnessLog{},
	}
}

func (m *WellnessModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(m.service)

	router.Put("/wellness", handler.Upsert)
	router.Get("/wellness/today", handler.Today)
	router.Get("/wellness", handler.List)
}
