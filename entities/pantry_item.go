package entities

import (
	"github.com/google/uuid"
)

const (
	LocationPantry  = "pantry"
	LocationFridge  = "fridge"
	LocationFreezer = "freezer"
)

const (
	DetectedManually = "manual"
	DetectedByPhoto  = "photo"
)

type PantryItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"` // "pantry", "fridge", "freezer"
	Quantity        string    `json:"quantity,omitempty"`
	DaysUntilExpiry *int      `json:"days_until_expiry,omitempty"`
	Confidence      *float64  `json:"confidence,omitempty"`
	DetectedBy      string    `json:"detected_by"` // "manual", "photo"
	ImageURL        string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
