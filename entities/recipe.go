package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	ImageURL           string    `json:"image_url,omitempty"`
	CookingTimeMinutes int       `json:"cooking_time_minutes"`
	Servings           int       `json:"servings"`
	Ingredients        string    `json:"ingredients" gorm:"type:text"`
	Instructions       string    `json:"instructions" gorm:"type:text"`
	Source             string    `json:"source"` // "manual", "generated"
	IsGenerated        bool      `json:"is_generated"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type RecipeBookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
