package settings

import (
	"errors"

	"github.com/bloomapp/bloom-backend/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidTheme = errors.New("theme must be light, dark or system")
	ErrInvalidGoal  = errors.New("goals must be positive")
)

type Service struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

// Get returns the user's settings, creating a row with app defaults on
// first access.
func (s *Service) Get(userID uuid.UUID) (*UserSettings, error) {
	var settings UserSettings
	err := s.db.First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.createDefaults(userID)
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// createDefaults inserts the default row. Two concurrent first requests both
// land here; ON CONFLICT DO NOTHING plus the unique index on user_id means
// the loser reads the winner's row instead of failing.
func (s *Service) createDefaults(userID uuid.UUID) (*UserSettings, error) {
	settings := UserSettings{
		ID:             uuid.New(),
		UserID:         userID,
		Theme:          "system",
		WaterGoalML:    s.cfg.DefaultWaterGoalML,
		StepsGoal:      s.cfg.DefaultStepsGoal,
		SleepGoalHours: s.cfg.DefaultSleepGoalHours,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&settings).Error
	if err != nil {
		return nil, err
	}

	var saved UserSettings
	if err := s.db.First(&saved, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Service) Update(userID uuid.UUID, req UpdateSettingsRequest) (*UserSettings, error) {
	settings, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		switch *req.Theme {
		case "light", "dark", "system":
			settings.Theme = *req.Theme
		default:
			return nil, ErrInvalidTheme
		}
	}
	if req.AccentColor != nil {
		settings.AccentColor = *req.AccentColor
	}
	if req.WaterGoalML != nil {
		if *req.WaterGoalML <= 0 {
			return nil, ErrInvalidGoal
		}
		settings.WaterGoalML = *req.WaterGoalML
	}
	if req.StepsGoal != nil {
		if *req.StepsGoal <= 0 {
			return nil, ErrInvalidGoal
		}
		settings.StepsGoal = *req.StepsGoal
	}
	if req.SleepGoalHours != nil {
		if *req.SleepGoalHours <= 0 {
			return nil, ErrInvalidGoal
		}
		settings.SleepGoalHours = *req.SleepGoalHours
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
