package habits

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Habit struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Color     string         `gorm:"size:7" json:"color"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HabitEntry is one row per habit per day, upserted by the client.
type HabitEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_entry_day" json:"habit_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	EntryDate time.Time `gorm:"not null;uniqueIndex:idx_habit_entry_day;index" json:"entry_date"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- DTOs ---

type CreateHabitRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type UpdateHabitRequest struct {
	Title    *string `json:"title"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"is_active"`
}

type UpsertEntryRequest struct {
	EntryDate string `json:"entry_date"`
	Completed bool   `json:"completed"`
}

type HabitListResponse struct {
	Habits []Habit `json:"habits"`
	Total  int64   `json:"total"`
}

type EntryListResponse struct {
	Entries []HabitEntry `json:"entries"`
}
