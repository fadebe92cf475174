package achievements

import (
	"errors"
	"fmt"
	"time"

	"github.com/bloomapp/bloom-backend/internal/modules/goals"
	"github.com/bloomapp/bloom-backend/internal/modules/habits"
	"github.com/bloomapp/bloom-backend/internal/modules/journal"
	"github.com/bloomapp/bloom-backend/internal/modules/mood"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnknownAchievement = errors.New("unknown achievement type")

type Service struct {
	db        *gorm.DB
	streakSvc *streaks.Service
}

func NewService(db *gorm.DB, streakSvc *streaks.Service) *Service {
	return &Service{db: db, streakSvc: streakSvc}
}

// userMetrics is one snapshot of everything the definitions check against.
type userMetrics struct {
	habitStreak    int
	reflections    int
	goalsCreated   int
	goalsCompleted int
	waterStreak    int
	perfectDay     bool
}

func (m userMetrics) value(metric Metric) int {
	switch metric {
	case MetricHabitStreak:
		return m.habitStreak
	case MetricReflections:
		return m.reflections
	case MetricGoalsCreated:
		return m.goalsCreated
	case MetricGoalsCompleted:
		return m.goalsCompleted
	case MetricWaterStreak:
		return m.waterStreak
	case MetricPerfectDay:
		if m.perfectDay {
			return 1
		}
		return 0
	}
	return 0
}

// EvaluateAll checks every definition against the user's current stats and
// awards whatever newly qualifies. Already-earned achievements are untouched.
func (s *Service) EvaluateAll(userID uuid.UUID) ([]UserAchievement, error) {
	metrics, err := s.collectMetrics(userID)
	if err != nil {
		return nil, err
	}

	var earned []UserAchievement
	for _, def := range definitions {
		value := metrics.value(def.Metric)
		if value < def.Threshold {
			continue
		}
		achievement, created, err := s.award(userID, def, value)
		if err != nil {
			return nil, err
		}
		if created {
			earned = append(earned, *achievement)
		}
	}
	return earned, nil
}

// AwardSpecific awards one achievement by type without checking its metric,
// for client-detected moments the server cannot observe. Returns whether the
// award is new.
func (s *Service) AwardSpecific(userID uuid.UUID, achievementType string) (*UserAchievement, bool, error) {
	def, ok := findDefinition(achievementType)
	if !ok {
		return nil, false, ErrUnknownAchievement
	}
	return s.award(userID, def, def.Threshold)
}

// award inserts the achievement if the user does not already have it. The
// insert races safely: ON CONFLICT DO NOTHING plus the unique index means
// concurrent evaluations produce exactly one row.
func (s *Service) award(userID uuid.UUID, def Definition, value int) (*UserAchievement, bool, error) {
	achievement := UserAchievement{
		ID:              uuid.New(),
		UserID:          userID,
		AchievementType: def.Type,
		Title:           def.Title,
		Description:     def.Description,
		Icon:            def.Icon,
		MilestoneValue:  def.Threshold,
		CustomData:      datatypes.JSON(fmt.Sprintf(`{"metric":%q,"value":%d}`, def.Metric, value)),
		EarnedDate:      streaks.DayOf(time.Now()),
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_type"}},
		DoNothing: true,
	}).Create(&achievement)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		var existing UserAchievement
		err := s.db.Where("user_id = ? AND achievement_type = ?", userID, def.Type).First(&existing).Error
		if err != nil {
			return nil, false, err
		}
		return &existing, false, nil
	}
	return &achievement, true, nil
}

// Earned returns the user's achievements, newest first.
func (s *Service) Earned(userID uuid.UUID) ([]UserAchievement, error) {
	var earned []UserAchievement
	err := s.db.Where("user_id = ?", userID).
		Order("earned_date DESC, created_at DESC").
		Find(&earned).Error
	return earned, err
}

// Available returns the definitions the user has not earned yet.
func (s *Service) Available(userID uuid.UUID) ([]Definition, error) {
	earned, err := s.Earned(userID)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(earned))
	for _, a := range earned {
		have[a.AchievementType] = true
	}

	var available []Definition
	for _, def := range definitions {
		if !have[def.Type] {
			available = append(available, def)
		}
	}
	return available, nil
}

func (s *Service) collectMetrics(userID uuid.UUID) (userMetrics, error) {
	var m userMetrics

	habitStreak, err := s.streakSvc.Get(userID, streaks.TypeHabit)
	if err != nil {
		return m, err
	}
	m.habitStreak = habitStreak.LongestStreak

	waterStreak, err := s.streakSvc.Get(userID, streaks.TypeWater)
	if err != nil {
		return m, err
	}
	m.waterStreak = waterStreak.LongestStreak

	var reflections int64
	if err := s.db.Model(&journal.JournalEntry{}).Where("user_id = ?", userID).Count(&reflections).Error; err != nil {
		return m, err
	}
	m.reflections = int(reflections)

	created, completed, err := s.goalCounts(userID)
	if err != nil {
		return m, err
	}
	m.goalsCreated = created
	m.goalsCompleted = completed

	perfect, err := s.isPerfectDay(userID)
	if err != nil {
		return m, err
	}
	m.perfectDay = perfect

	return m, nil
}

func (s *Service) goalCounts(userID uuid.UUID) (int, int, error) {
	var userGoals []goals.YearlyGoal
	if err := s.db.Where("user_id = ?", userID).Find(&userGoals).Error; err != nil {
		return 0, 0, err
	}

	var subGoals []goals.SubGoal
	if err := s.db.Where("user_id = ?", userID).Find(&subGoals).Error; err != nil {
		return 0, 0, err
	}

	byGoal := make(map[uuid.UUID][]goals.SubGoal)
	for _, sg := range subGoals {
		byGoal[sg.GoalID] = append(byGoal[sg.GoalID], sg)
	}

	completed := 0
	for _, g := range userGoals {
		if goals.Progress(g, byGoal[g.ID]) == 100 {
			completed++
		}
	}
	return len(userGoals), completed, nil
}

// isPerfectDay reports whether today has every active habit completed plus a
// mood entry and a journal entry. Users with no active habits never qualify.
func (s *Service) isPerfectDay(userID uuid.UUID) (bool, error) {
	today := streaks.DayOf(time.Now())

	var activeHabits int64
	err := s.db.Model(&habits.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&activeHabits).Error
	if err != nil {
		return false, err
	}
	if activeHabits == 0 {
		return false, nil
	}

	var completedToday int64
	err = s.db.Model(&habits.HabitEntry{}).
		Joins("JOIN habits ON habits.id = habit_entries.habit_id").
		Where("habit_entries.user_id = ? AND habit_entries.entry_date = ? AND habit_entries.completed = ?", userID, today, true).
		Where("habits.is_active = ? AND habits.deleted_at IS NULL", true).
		Count(&completedToday).Error
	if err != nil {
		return false, err
	}
	if completedToday < activeHabits {
		return false, nil
	}

	var moodToday int64
	err = s.db.Model(&mood.MoodEntry{}).
		Where("user_id = ? AND entry_date = ?", userID, today).
		Count(&moodToday).Error
	if err != nil {
		return false, err
	}
	if moodToday == 0 {
		return false, nil
	}

	var journalToday int64
	err = s.db.Model(&journal.JournalEntry{}).
		Where("user_id = ? AND entry_date = ?", userID, today).
		Count(&journalToday).Error
	if err != nil {
		return false, err
	}
	return journalToday > 0, nil
}
