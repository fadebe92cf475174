package settings

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingsModule struct {
	service *Service
}

// New builds the module around a shared service so other modules can read
// the user's wellness goals.
func New(service *Service) *SettingsModule {
	return &SettingsModule{service: service}
}

func (m *SettingsModule) Name() string { return "settings" }

func (m *SettingsModule) Models() []interface{} {
	return []interface{}{
		&UserSettings{},
	}
}

func (m *SettingsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(m.service)

	router.Get("/settings", handler.Get)
	router.Put("/settings", handler.Update)
}
