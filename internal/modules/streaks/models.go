package streaks

import (
	"time"

	"github.com/google/uuid"
)

// Streak type keys. One UserStreak row exists per (user, type).
const (
	TypeHabit   = "habit"
	TypeWater   = "water"
	TypeJournal = "journal"
)

type UserStreak struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_streak_type" json:"user_id"`
	StreakType       string     `gorm:"size:20;not null;uniqueIndex:idx_user_streak_type" json:"streak_type"`
	CurrentStreak    int        `gorm:"default:0" json:"current_streak"`
	LongestStreak    int        `gorm:"default:0" json:"longest_streak"`
	TotalDays        int        `gorm:"default:0" json:"total_days"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SnapshotResponse struct {
	Streaks []UserStreak `json:"streaks"`
}
