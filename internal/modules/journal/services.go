package journal

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrContentRequired = errors.New("content is required")
	ErrInvalidDate     = errors.New("entry date must be formatted as YYYY-MM-DD")
	ErrEntryNotFound   = errors.New("journal entry not found")
)

type Service struct {
	db        *gorm.DB
	streakSvc *streaks.Service
}

func NewService(db *gorm.DB, streakSvc *streaks.Service) *Service {
	return &Service{db: db, streakSvc: streakSvc}
}

// Upsert writes the day's journal entry. Writing again the same day
// replaces the content; the day still counts once toward the streak.
func (s *Service) Upsert(userID uuid.UUID, req UpsertJournalRequest) (*JournalEntry, error) {
	if req.Content == "" {
		return nil, ErrContentRequired
	}

	day := streaks.DayOf(time.Now())
	if req.EntryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = streaks.DayOf(parsed)
	}

	entry := JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		EntryDate: day,
		Content:   req.Content,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	if _, err := s.streakSvc.Record(userID, streaks.TypeJournal, day); err != nil {
		slog.Error("failed to update journal streak", "user_id", userID.String(), "error", err)
	}

	var saved JournalEntry
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, day).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Service) GetByDate(userID uuid.UUID, day time.Time) (*JournalEntry, error) {
	var entry JournalEntry
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("entry_date = ?", streaks.DayOf(day)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) List(userID uuid.UUID, limit, offset int) ([]JournalEntry, int64, error) {
	var entries []JournalEntry
	var total int64

	if err := s.db.Model(&JournalEntry{}).Scopes(identity.ForUser(userID)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Scopes(identity.ForUser(userID)).
		Order("entry_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error

	return entries, total, err
}

func (s *Service) Delete(userID uuid.UUID, day time.Time) error {
	entry, err := s.GetByDate(userID, day)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}

// Count returns the user's total reflection count, used for achievement
// thresholds.
func (s *Service) Count(userID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.Model(&JournalEntry{}).Scopes(identity.ForUser(userID)).Count(&total).Error
	return total, err
}
