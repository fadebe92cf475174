package achievements

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserAchievement is one earned badge. The (user_id, achievement_type) unique
// index makes awarding idempotent under concurrent evaluation.
type UserAchievement struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement_type" json:"user_id"`
	AchievementType string         `gorm:"size:50;not null;uniqueIndex:idx_user_achievement_type" json:"achievement_type"`
	Title           string         `gorm:"size:100;not null" json:"title"`
	Description     string         `gorm:"size:255" json:"description"`
	Icon            string         `gorm:"size:10" json:"icon"`
	MilestoneValue  int            `json:"milestone_value"`
	CustomData      datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"custom_data"`
	EarnedDate      time.Time      `gorm:"not null" json:"earned_date"`
	CreatedAt       time.Time      `json:"created_at"`
}

// --- DTOs ---

type AwardRequest struct {
	AchievementType string `json:"achievement_type"`
}

type AchievementListResponse struct {
	Earned    []UserAchievement `json:"earned"`
	Available []Definition      `json:"available"`
}

type EvaluateResponse struct {
	NewlyEarned []UserAchievement `json:"newly_earned"`
	Evaluated   int               `json:"evaluated"`
}
