package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnacks    = "snacks"
)

type MealPlan struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Date           time.Time  `gorm:"type:date" json:"date"`
	MealType       string     `json:"meal_type"` // "breakfast", "lunch", "dinner", "snacks"
	Status         string     `json:"status"`    // "empty", "planned", "completed"
	Planned        string     `gorm:"type:text" json:"planned,omitempty"`
	Completed      bool       `json:"completed"`
	CompletedDate  *time.Time `gorm:"type:date" json:"completed_date,omitempty"`
	CompletionType string     `json:"completion_type,omitempty"` // "as-planned", "modified"
	Actual         string     `gorm:"type:text" json:"actual,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
