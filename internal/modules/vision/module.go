package vision

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VisionModule struct{}

func New() *VisionModule {
	return &VisionModule{}
}

func (m *VisionModule) Name() string { return "vision" }

func (m *VisionModule) Models() []interface{} {
	return []interface{}{
		&VisionPhoto{},
	}
}

func (m *VisionModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Post("/vision", handler.Create)
	router.Get("/vision", handler.List)
	router.Put("/vision/:id", handler.Update)
	router.Delete("/vision/:id", handler.Delete)
}
