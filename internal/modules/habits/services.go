package habits

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
	ErrTitleRequired  = errors.New("title is required")
	ErrHabitNotFound  = errors.New("habit not found")
	ErrInvalidDate    = errors.New("entry date must be formatted as YYYY-MM-DD")
	ErrHabitNotActive = errors.New("habit is not active")
)

type Service struct {
	db        *gorm.DB
	streakSvc *streaks.Service
}

func NewService(db *gorm.DB, streakSvc *streaks.Service) *Service {
	return &Service{db: db, streakSvc: streakSvc}
}

func (s *Service) Create(userID uuid.UUID, req CreateHabitRequest) (*Habit, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	habit := Habit{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    req.Title,
		Color:    req.Color,
		IsActive: true,
	}

	if err := s.db.Create(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *Service) List(userID uuid.UUID, activeOnly bool) ([]Habit, int64, error) {
	var habits []Habit
	var total int64

	query := s.db.Model(&Habit{}).Scopes(identity.ForUser(userID))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Find(&habits).Error
	return habits, total, err
}

func (s *Service) Get(userID uuid.UUID, habitID uuid.UUID) (*Habit, error) {
	var habit Habit
	err := s.db.Scopes(identity.ForUser(userID)).First(&habit, "id = ?", habitID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *Service) Update(userID uuid.UUID, habitID uuid.UUID, req UpdateHabitRequest) (*Habit, error) {
	habit, err := s.Get(userID, habitID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		habit.Title = *req.Title
	}
	if req.Color != nil {
		habit.Color = *req.Color
	}
	if req.IsActive != nil {
		habit.IsActive = *req.IsActive
	}

	if err := s.db.Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

// Archive soft-disables a habit. Habits are never hard-deleted so historical
// entries keep aggregating.
func (s *Service) Archive(userID uuid.UUID, habitID uuid.UUID) (*Habit, error) {
	habit, err := s.Get(userID, habitID)
	if err != nil {
		return nil, err
	}

	habit.IsActive = false
	if err := s.db.Save(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

// UpsertEntry records the day's completion state for a habit. One row per
// habit per day; repeated calls overwrite the completed flag.
func (s *Service) UpsertEntry(userID uuid.UUID, habitID uuid.UUID, req UpsertEntryRequest) (*HabitEntry, error) {
	habit, err := s.Get(userID, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, ErrHabitNotActive
	}

	day, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := HabitEntry{
		ID:        uuid.New(),
		HabitID:   habitID,
		UserID:    userID,
		EntryDate: day,
		Completed: req.Completed,
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	if req.Completed {
		if _, err := s.streakSvc.Record(userID, streaks.TypeHabit, day); err != nil {
			slog.Error("failed to update habit streak", "user_id", userID.String(), "error", err)
		}
	}

	var saved HabitEntry
	if err := s.db.Where("habit_id = ? AND entry_date = ?", habitID, day).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListEntries returns the user's habit entries between two days inclusive.
func (s *Service) ListEntries(userID uuid.UUID, from, to time.Time) ([]HabitEntry, error) {
	var entries []HabitEntry
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("entry_date >= ? AND entry_date <= ?", streaks.DayOf(from), streaks.DayOf(to)).
		Order("entry_date ASC").
		Find(&entries).Error
	return entries, err
}

func parseEntryDate(value string) (time.Time, error) {
	if value == "" {
		return streaks.DayOf(time.Now()), nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return streaks.DayOf(day), nil
}
