package vision

import (
	"errors"

	"github.com/bloomapp/bloom-backend/internal/identity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrImageURLRequired = errors.New("image URL is required")
	ErrPhotoNotFound    = errors.New("photo not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(userID uuid.UUID, req CreatePhotoRequest) (*VisionPhoto, error) {
	if req.ImageURL == "" {
		return nil, ErrImageURLRequired
	}

	photo := VisionPhoto{
		ID:        uuid.New(),
		UserID:    userID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Layout:    req.Layout,
		SortOrder: req.SortOrder,
	}

	if err := s.db.Create(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) List(userID uuid.UUID) ([]VisionPhoto, error) {
	var photos []VisionPhoto
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("sort_order ASC, created_at ASC").
		Find(&photos).Error
	return photos, err
}

func (s *Service) Get(userID uuid.UUID, photoID uuid.UUID) (*VisionPhoto, error) {
	var photo VisionPhoto
	err := s.db.Scopes(identity.ForUser(userID)).First(&photo, "id = ?", photoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Service) Update(userID uuid.UUID, photoID uuid.UUID, req UpdatePhotoRequest) (*VisionPhoto, error) {
	photo, err := s.Get(userID, photoID)
	if err != nil {
		return nil, err
	}

	if req.Caption != nil {
		photo.Caption = *req.Caption
	}
	if req.Layout != nil {
		photo.Layout = req.Layout
	}
	if req.SortOrder != nil {
		photo.SortOrder = *req.SortOrder
	}

	if err := s.db.Save(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *Service) Delete(userID uuid.UUID, photoID uuid.UUID) error {
	photo, err := s.Get(userID, photoID)
	if err != nil {
		return err
	}
	return s.db.Delete(photo).Error
}
