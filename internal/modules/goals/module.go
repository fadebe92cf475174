package goals

import (
	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GoalsModule struct{}

func New() *GoalsModule {
	return &GoalsModule{}
}

func (m *GoalsModule) Name() string { return "goals" }

func (m *GoalsModule) Models() []interface{} {
	return []interface{}{
		&YearlyGoal{},
		&SubGoal{},
	}
}

func (m *GoalsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db)
	handler := NewHandler(svc)

	router.Post("/goals", handler.Create)
	router.Get("/goals", handler.List)
	router.Get("/goals/:id", handler.Get)
	router.Put("/goals/:id", handler.Update)
	router.Delete("/goals/:id", handler.Delete)
	router.Post("/goals/:id/subgoals", handler.AddSubGoal)
	router.Put("/subgoals/:id", handler.UpdateSubGoal)
	router.Delete("/subgoals/:id", handler.DeleteSubGoal)
}
