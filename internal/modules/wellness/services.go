package wellness

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/bloomapp/bloom-backend/internal/modules/settings"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate   = errors.New("log date must be formatted as YYYY-MM-DD")
	ErrNegativeValue = errors.New("wellness values cannot be negative")
)

type Service struct {
	db          *gorm.DB
	streakSvc   *streaks.Service
	settingsSvc *settings.Service
}

func NewService(db *gorm.DB, streakSvc *streaks.Service, settingsSvc *settings.Service) *Service {
	return &Service{db: db, streakSvc: streakSvc, settingsSvc: settingsSvc}
}

// Upsert merges the request into the day's log, touching only the fields the
// client sent. Hitting the water goal records a water streak day.
func (s *Service) Upsert(userID uuid.UUID, req UpsertLogRequest) (*WellnessLog, error) {
	day, err := parseLogDate(req.LogDate)
	if err != nil {
		return nil, err
	}
	if (req.WaterML != nil && *req.WaterML < 0) ||
		(req.Steps != nil && *req.Steps < 0) ||
		(req.SleepHours != nil && *req.SleepHours < 0) {
		return nil, ErrNegativeValue
	}

	var log WellnessLog
	err = s.db.Where("user_id = ? AND log_date = ?", userID, day).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log = WellnessLog{
			ID:      uuid.New(),
			UserID:  userID,
			LogDate: day,
		}
	} else if err != nil {
		return nil, err
	}

	if req.WaterML != nil {
		log.WaterML = *req.WaterML
	}
	if req.Steps != nil {
		log.Steps = *req.Steps
	}
	if req.SleepHours != nil {
		log.SleepHours = *req.SleepHours
	}

	if err := s.db.Save(&log).Error; err != nil {
		return nil, err
	}

	s.maybeRecordWaterStreak(userID, &log)

	return &log, nil
}

func (s *Service) maybeRecordWaterStreak(userID uuid.UUID, log *WellnessLog) {
	userSettings, err := s.settingsSvc.Get(userID)
	if err != nil {
		slog.Error("failed to load settings for water streak", "user_id", userID.String(), "error", err)
		return
	}
	if log.WaterML < userSettings.WaterGoalML {
		return
	}
	if _, err := s.streakSvc.Record(userID, streaks.TypeWater, log.LogDate); err != nil {
		slog.Error("failed to update water streak", "user_id", userID.String(), "error", err)
	}
}

// GetByDate returns the log for one day, or a zero-valued log if nothing was
// recorded.
func (s *Service) GetByDate(userID uuid.UUID, date string) (*WellnessLog, error) {
	day, err := parseLogDate(date)
	if err != nil {
		return nil, err
	}

	var log WellnessLog
	err = s.db.Where("user_id = ? AND log_date = ?", userID, day).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &WellnessLog{UserID: userID, LogDate: day}, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// List returns the user's logs between two days inclusive.
func (s *Service) List(userID uuid.UUID, from, to time.Time) ([]WellnessLog, error) {
	var logs []WellnessLog
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("log_date >= ? AND log_date <= ?", streaks.DayOf(from), streaks.DayOf(to)).
		Order("log_date ASC").
		Find(&logs).Error
	return logs, err
}

func parseLogDate(value string) (time.Time, error) {
	if value == "" {
		return streaks.DayOf(time.Now()), nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return streaks.DayOf(day), nil
}
