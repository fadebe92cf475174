package vision

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VisionPhoto is one image on the user's vision board. The image itself is
// uploaded elsewhere; only its URL and board placement live here.
type VisionPhoto struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ImageURL  string         `gorm:"type:text;not null" json:"image_url"`
	Caption   string         `gorm:"size:255" json:"caption"`
	Layout    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"layout"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- DTOs ---

type CreatePhotoRequest struct {
	ImageURL  string         `json:"image_url"`
	Caption   string         `json:"caption"`
	Layout    datatypes.JSON `json:"layout"`
	SortOrder int            `json:"sort_order"`
}

type UpdatePhotoRequest struct {
	Caption   *string        `json:"caption"`
	Layout    datatypes.JSON `json:"layout"`
	SortOrder *int           `json:"sort_order"`
}

type PhotoListResponse struct {
	Photos []VisionPhoto `json:"photos"`
}
