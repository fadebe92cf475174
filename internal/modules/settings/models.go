package settings

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user preferences and daily wellness goals. Exactly
// one row per user, created lazily on first read.
type UserSettings struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Theme          string    `gorm:"size:20;default:'system'" json:"theme"`
	AccentColor    string    `gorm:"size:7" json:"accent_color"`
	WaterGoalML    int       `gorm:"not null" json:"water_goal_ml"`
	StepsGoal      int       `gorm:"not null" json:"steps_goal"`
	SleepGoalHours float64   `gorm:"not null" json:"sleep_goal_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// --- DTOs ---

type UpdateSettingsRequest struct {
	Theme          *string  `json:"theme"`
	AccentColor    *string  `json:"accent_color"`
	WaterGoalML    *int     `json:"water_goal_ml"`
	StepsGoal      *int     `json:"steps_goal"`
	SleepGoalHours *float64 `json:"sleep_goal_hours"`
}
