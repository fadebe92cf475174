package mood

import (
	"errors"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidMoodValue = errors.New("mood value must be between 1 and 5")
	ErrInvalidMoodEmoji = errors.New("invalid mood emoji")
	ErrInvalidDate      = errors.New("entry date must be formatted as YYYY-MM-DD")
	ErrMoodNotFound     = errors.New("mood entry not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func isValidMoodEmoji(emoji string) bool {
	if emoji == "" {
		return true
	}
	for _, valid := range MoodEmojis {
		if emoji == valid {
			return true
		}
	}
	return false
}

// Upsert writes the day's mood; a second write for the same day replaces it.
func (s *Service) Upsert(userID uuid.UUID, req UpsertMoodRequest) (*MoodEntry, error) {
	if req.MoodValue < 1 || req.MoodValue > 5 {
		return nil, ErrInvalidMoodValue
	}
	if !isValidMoodEmoji(req.MoodEmoji) {
		return nil, ErrInvalidMoodEmoji
	}

	day := streaks.DayOf(time.Now())
	if req.EntryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = streaks.DayOf(parsed)
	}

	entry := MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		EntryDate: day,
		MoodValue: req.MoodValue,
		MoodEmoji: req.MoodEmoji,
		Notes:     req.Notes,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood_value", "mood_emoji", "notes", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	var saved MoodEntry
	if err := s.db.Where("user_id = ? AND entry_date = ?", userID, day).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Service) GetByDate(userID uuid.UUID, day time.Time) (*MoodEntry, error) {
	var entry MoodEntry
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("entry_date = ?", streaks.DayOf(day)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) ListRange(userID uuid.UUID, from, to time.Time) ([]MoodEntry, error) {
	var entries []MoodEntry
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("entry_date >= ? AND entry_date <= ?", streaks.DayOf(from), streaks.DayOf(to)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}
