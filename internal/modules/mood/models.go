package mood

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is at most one per user per day; the date is the natural key.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_day" json:"user_id"`
	EntryDate time.Time `gorm:"not null;uniqueIndex:idx_mood_user_day;index" json:"entry_date"`
	MoodValue int       `gorm:"not null" json:"mood_value"`
	MoodEmoji string    `gorm:"size:10" json:"mood_emoji"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var MoodEmojis = []string{"😄", "🙂", "😐", "🙁", "😢"}

// --- DTOs ---

type UpsertMoodRequest struct {
	EntryDate string `json:"entry_date"`
	MoodValue int    `json:"mood_value"`
	MoodEmoji string `json:"mood_emoji"`
	Notes     string `json:"notes"`
}

type MoodListResponse struct {
	Entries []MoodEntry `json:"entries"`
}
