package calendar

import (
	"errors"
	"time"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/bloomapp/bloom-backend/internal/modules/streaks"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidDate   = errors.New("event date must be formatted as YYYY-MM-DD")
	ErrInvalidTime   = errors.New("times must be formatted as HH:MM")
	ErrEventNotFound = errors.New("event not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func isValidClock(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func (s *Service) Create(userID uuid.UUID, req CreateEventRequest) (*Event, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	day, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !isValidClock(req.StartTime) || !isValidClock(req.EndTime) {
		return nil, ErrInvalidTime
	}

	event := Event{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Notes:     req.Notes,
		EventDate: streaks.DayOf(day),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) ListRange(userID uuid.UUID, from, to time.Time) ([]Event, error) {
	var events []Event
	err := s.db.Scopes(identity.ForUser(userID)).
		Where("event_date >= ? AND event_date <= ?", streaks.DayOf(from), streaks.DayOf(to)).
		Order("event_date ASC, start_time ASC").
		Find(&events).Error
	return events, err
}

func (s *Service) Get(userID uuid.UUID, eventID uuid.UUID) (*Event, error) {
	var event Event
	err := s.db.Scopes(identity.ForUser(userID)).First(&event, "id = ?", eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) Update(userID uuid.UUID, eventID uuid.UUID, req UpdateEventRequest) (*Event, error) {
	event, err := s.Get(userID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrTitleRequired
		}
		event.Title = *req.Title
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.EventDate != nil {
		day, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		event.EventDate = streaks.DayOf(day)
	}
	if req.StartTime != nil {
		if !isValidClock(*req.StartTime) {
			return nil, ErrInvalidTime
		}
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !isValidClock(*req.EndTime) {
			return nil, ErrInvalidTime
		}
		event.EndTime = *req.EndTime
	}
	if req.Color != nil {
		event.Color = *req.Color
	}

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) Delete(userID uuid.UUID, eventID uuid.UUID) error {
	event, err := s.Get(userID, eventID)
	if err != nil {
		return err
	}
	return s.db.Delete(event).Error
}
