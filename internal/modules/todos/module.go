package todos

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TodosModule struct{}

func New() *TodosModule {
	return &TodosModule{}
}

func (m *TodosModule) Name() string { return "todos" }

func (m *TodosModule) Models() []interface{} {
	return []interface{}{
		&Todo{},
	}
}

func (m *TodosModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Post("/todos", handler.Create)
	router.Get("/todos", handler.List)
	router.Put("/todos/:id", handler.Update)
	router.Patch("/todos/:id/complete", handler.SetCompleted)
	router.Delete("/todos/:id", handler.Delete)
}
