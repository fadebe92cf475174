package calendar

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CalendarModule struct{}

func New() *CalendarModule {
	return &CalendarModule{}
}

func (m *CalendarModule) Name() string { return "calendar" }

func (m *CalendarModule) Models() []interface{} {
	return []interface{}{
		&Event{},
	}
}

func (m *CalendarModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Post("/events", handler.Create)
	router.Get("/events", handler.List)
	router.Put("/events/:id", handler.Update)
	router.Delete("/events/:id", handler.Delete)
}
