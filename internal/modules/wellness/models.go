package wellness

import (
	"time"

	"github.com/google/uuid"
)

// WellnessLog is the single daily record of water, steps and sleep.
// One row per user per day, updated in place as the day goes on.
type WellnessLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wellness_log_day" json:"user_id"`
	LogDate    time.Time `gorm:"not null;uniqueIndex:idx_wellness_log_day" json:"log_date"`
	WaterML    int       `gorm:"default:0" json:"water_ml"`
	Steps      int       `gorm:"default:0" json:"steps"`
	SleepHours float64   `gorm:"default:0" json:"sleep_hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// --- DTOs ---

type UpsertLogRequest struct {
	LogDate    string   `json:"log_date"`
	WaterML    *int     `json:"water_ml"`
	Steps      *int     `json:"steps"`
	SleepHours *float64 `json:"sleep_hours"`
}

type LogListResponse struct {
	Logs []WellnessLog `json:"logs"`
}
