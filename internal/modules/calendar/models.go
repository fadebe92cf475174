package calendar

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Notes     string         `gorm:"type:text" json:"notes"`
	EventDate time.Time      `gorm:"not null;index" json:"event_date"`
	StartTime string         `gorm:"size:5" json:"start_time"`
	EndTime   string         `gorm:"size:5" json:"end_time"`
	Color     string         `gorm:"size:7" json:"color"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string { return "calendar_events" }

// --- DTOs ---

type CreateEventRequest struct {
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	EventDate string `json:"event_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
}

type UpdateEventRequest struct {
	Title     *string `json:"title"`
	Notes     *string `json:"notes"`
	EventDate *string `json:"event_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Color     *string `json:"color"`
}

type EventListResponse struct {
	Events []Event `json:"events"`
}
