package goals

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type YearlyGoal struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Notes     string         `gorm:"type:text" json:"notes"`
	Year      int            `gorm:"not null;index" json:"year"`
	IsDone    bool           `gorm:"default:false" json:"is_done"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type SubGoal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID    uuid.UUID `gorm:"type:uuid;not null;index" json:"goal_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	IsDone    bool      `gorm:"default:false" json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- DTOs ---

type CreateGoalRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
	Year  int    `json:"year"`
}

type UpdateGoalRequest struct {
	Title  *string `json:"title"`
	Notes  *string `json:"notes"`
	IsDone *bool   `json:"is_done"`
}

type CreateSubGoalRequest struct {
	Title string `json:"title"`
}

type UpdateSubGoalRequest struct {
	Title  *string `json:"title"`
	IsDone *bool   `json:"is_done"`
}

// GoalResponse carries the goal plus its derived progress:
// completed sub-goals / total sub-goals as a 0-100 percentage.
type GoalResponse struct {
	YearlyGoal
	SubGoals []SubGoal `json:"sub_goals"`
	Progress int       `json:"progress"`
}

type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Year  int            `json:"year"`
}
