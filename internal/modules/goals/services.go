package goals

import (
	"errors"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrSubGoalNotFound = errors.New("sub-goal not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(userID uuid.UUID, req CreateGoalRequest) (*GoalResponse, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Year == 0 {
		req.Year = time.Now().UTC().Year()
	}

	goal := YearlyGoal{
		ID:     uuid.New(),
		UserID: userID,
		Title:  req.Title,
		Notes:  req.Notes,
		Year:   req.Year,
	}

	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}

	return &GoalResponse{YearlyGoal: goal, SubGoals: []SubGoal{}, Progress: 0}, nil
}

func (s *Service) List(userID uuid.UUID, year int) ([]GoalResponse, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	var goals []YearlyGoal
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("year = ?", year).
		Order("created_at ASC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		resp, err := s.withSubGoals(goal)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *Service) Get(userID uuid.UUID, goalID uuid.UUID) (*GoalResponse, error) {
	goal, err := s.getGoal(userID, goalID)
	if err != nil {
		return nil, err
	}
	return s.withSubGoals(*goal)
}

func (s *Service) Update(userID uuid.UUID, goalID uuid.UUID, req UpdateGoalRequest) (*GoalResponse, error) {
	goal, err := s.getGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		goal.Title = *req.Title
	}
	if req.Notes != nil {
		goal.Notes = *req.Notes
	}
	if req.IsDone != nil {
		goal.IsDone = *req.IsDone
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return s.withSubGoals(*goal)
}

func (s *Service) Delete(userID uuid.UUID, goalID uuid.UUID) error {
	goal, err := s.getGoal(userID, goalID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goalID).Delete(&SubGoal{}).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
}

func (s *Service) AddSubGoal(userID uuid.UUID, goalID uuid.UUID, req CreateSubGoalRequest) (*SubGoal, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if _, err := s.getGoal(userID, goalID); err != nil {
		return nil, err
	}

	sub := SubGoal{
		ID:     uuid.New(),
		GoalID: goalID,
		UserID: userID,
		Title:  req.Title,
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) UpdateSubGoal(userID uuid.UUID, subGoalID uuid.UUID, req UpdateSubGoalRequest) (*SubGoal, error) {
	var sub SubGoal
	err := s.db.Scopes(identity.ForUser(userID)).First(&sub, "id = ?", subGoalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		sub.Title = *req.Title
	}
	if req.IsDone != nil {
		sub.IsDone = *req.IsDone
	}

	if err := s.db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) DeleteSubGoal(userID uuid.UUID, subGoalID uuid.UUID) error {
	var sub SubGoal
	err := s.db.Scopes(identity.ForUser(userID)).First(&sub, "id = ?", subGoalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubGoalNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&sub).Error
}

func (s *Service) getGoal(userID uuid.UUID, goalID uuid.UUID) (*YearlyGoal, error) {
	var goal YearlyGoal
	err := s.db.Scopes(identity.ForUser(userID)).First(&goal, "id = ?", goalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *Service) withSubGoals(goal YearlyGoal) (*GoalResponse, error) {
	var subGoals []SubGoal
	if err := s.db.Where("goal_id = ?", goal.ID).Order("created_at ASC").Find(&subGoals).Error; err != nil {
		return nil, err
	}

	return &GoalResponse{
		YearlyGoal: goal,
		SubGoals:   subGoals,
		Progress:   Progress(goal, subGoals),
	}, nil
}

// Progress derives completion as completed-subgoals / total-subgoals.
// A goal without sub-goals reports 100 only once marked done.
func Progress(goal YearlyGoal, subGoals []SubGoal) int {
	if len(subGoals) == 0 {
		if goal.IsDone {
			return 100
		}
		return 0
	}

	done := 0
	for _, sub := range subGoals {
		if sub.IsDone {
			done++
		}
	}
	return done * 100 / len(subGoals)
}
