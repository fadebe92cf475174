package todos

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Todo struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Notes       string         `gorm:"type:text" json:"notes"`
	DueDate     *time.Time     `gorm:"index" json:"due_date"`
	Priority    string         `gorm:"size:10;default:'none'" json:"priority"`
	Completed   bool           `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

var Priorities = []string{"none", "low", "medium", "high"}

// --- DTOs ---

type CreateTodoRequest struct {
	Title    string     `json:"title"`
	Notes    string     `json:"notes"`
	DueDate  *time.Time `json:"due_date"`
	Priority string     `json:"priority"`
}

type UpdateTodoRequest struct {
	Title    *string    `json:"title"`
	Notes    *string    `json:"notes"`
	DueDate  *time.Time `json:"due_date"`
	Priority *string    `json:"priority"`
}

type TodoListResponse struct {
	Todos  []Todo `json:"todos"`
	Total  int64  `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
