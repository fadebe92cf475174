package streaks

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownStreakType = errors.New("unknown streak type")

func isValidType(streakType string) bool {
	switch streakType {
	case TypeHabit, TypeWater, TypeJournal:
		return true
	}
	return false
}

// Service maintains the user_streaks table. It is the single writer for
// streak state; evaluators and aggregators only read it.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Record registers one qualifying daily action for the given streak type.
// Same-day repeats and days at or before the last recorded activity are
// no-ops, a consecutive day advances the streak and any gap resets it to 1.
func (s *Service) Record(userID uuid.UUID, streakType string, at time.Time) (*UserStreak, error) {
	if !isValidType(streakType) {
		return nil, ErrUnknownStreakType
	}

	day := DayOf(at)

	var streak UserStreak
	err := s.db.Where("user_id = ? AND streak_type = ?", userID, streakType).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = UserStreak{
			ID:               uuid.New(),
			UserID:           userID,
			StreakType:       streakType,
			CurrentStreak:    1,
			LongestStreak:    1,
			TotalDays:        1,
			LastActivityDate: &day,
		}
		if createErr := s.db.Create(&streak).Error; createErr != nil {
			return nil, createErr
		}
		return &streak, nil
	}
	if err != nil {
		return nil, err
	}

	// Backdated records (habit entries accept any past date) must not
	// rewind or reset a live streak.
	if streak.LastActivityDate != nil && !day.After(DayOf(*streak.LastActivityDate)) {
		return &streak, nil
	}

	yesterday := day.AddDate(0, 0, -1)
	if streak.LastActivityDate != nil && DayOf(*streak.LastActivityDate).Equal(yesterday) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	streak.TotalDays++
	streak.LastActivityDate = &day

	if err := s.db.Save(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

// Get returns the streak row for one type, or a zero-valued placeholder if
// the user has never recorded that activity.
func (s *Service) Get(userID uuid.UUID, streakType string) (*UserStreak, error) {
	if !isValidType(streakType) {
		return nil, ErrUnknownStreakType
	}

	var streak UserStreak
	err := s.db.Where("user_id = ? AND streak_type = ?", userID, streakType).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &UserStreak{UserID: userID, StreakType: streakType}, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

// Snapshot returns every streak row the user has.
func (s *Service) Snapshot(userID uuid.UUID) ([]UserStreak, error) {
	var streaks []UserStreak
	err := s.db.Where("user_id = ?", userID).Order("streak_type ASC").Find(&streaks).Error
	return streaks, err
}
