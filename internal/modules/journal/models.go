package journal

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one free-form reflection per user per day.
type JournalEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_journal_user_day" json:"user_id"`
	EntryDate time.Time `gorm:"not null;uniqueIndex:idx_journal_user_day;index" json:"entry_date"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- DTOs ---

type UpsertJournalRequest struct {
	EntryDate string `json:"entry_date"`
	Content   string `json:"content"`
}

type JournalListResponse struct {
	Entries []JournalEntry `json:"entries"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}
