package todos

import (
	"errors"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrTodoNotFound    = errors.New("todo not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func isValidPriority(priority string) bool {
	for _, p := range Priorities {
		if p == priority {
			return true
		}
	}
	return false
}

func (s *Service) Create(userID uuid.UUID, req CreateTodoRequest) (*Todo, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Priority == "" {
		req.Priority = "none"
	}
	if !isValidPriority(req.Priority) {
		return nil, ErrInvalidPriority
	}

	todo := Todo{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    req.Title,
		Notes:    req.Notes,
		DueDate:  req.DueDate,
		Priority: req.Priority,
	}

	if err := s.db.Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *Service) List(userID uuid.UUID, completed *bool, limit, offset int) ([]Todo, int64, error) {
	var todos []Todo
	var total int64

	query := s.db.Model(&Todo{}).Scopes(identity.ForUser(userID))
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&todos).Error

	return todos, total, err
}

func (s *Service) Get(userID uuid.UUID, todoID uuid.UUID) (*Todo, error) {
	var todo Todo
	err := s.db.Scopes(identity.ForUser(userID)).First(&todo, "id = ?", todoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *Service) Update(userID uuid.UUID, todoID uuid.UUID, req UpdateTodoRequest) (*Todo, error) {
	todo, err := s.Get(userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		todo.Title = *req.Title
	}
	if req.Notes != nil {
		todo.Notes = *req.Notes
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.Priority != nil {
		if !isValidPriority(*req.Priority) {
			return nil, ErrInvalidPriority
		}
		todo.Priority = *req.Priority
	}

	if err := s.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

// SetCompleted toggles completion and stamps completed_at.
func (s *Service) SetCompleted(userID uuid.UUID, todoID uuid.UUID, completed bool) (*Todo, error) {
	todo, err := s.Get(userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = completed
	if completed {
		now := time.Now().UTC()
		todo.CompletedAt = &now
	} else {
		todo.CompletedAt = nil
	}

	if err := s.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *Service) Delete(userID uuid.UUID, todoID uuid.UUID) error {
	todo, err := s.Get(userID, todoID)
	if err != nil {
		return err
	}
	return s.db.Delete(todo).Error
}
