package analytics

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnalyticsModule owns no tables; it aggregates over the other modules'
// models.
type AnalyticsModule struct{}

func New() *AnalyticsModule {
	return &AnalyticsModule{}
}

func (m *AnalyticsModule) Name() string { return "analytics" }

func (m *AnalyticsModule) Models() []interface{} {
	return nil
}

func (m *AnalyticsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Get("/analytics", handler.Get)
}
