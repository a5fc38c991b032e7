package entities

import (
	"github.com/google/uuid"
)

const (
	CategoryProduce = "produce"
	CategoryDairy   = "dairy"
	CategoryMeat    = "meat"
	CategoryPantry  = "pantry"
	CategoryFrozen  = "frozen"
	CategoryOther   = "other"
)

type ShoppingListItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"` // "produce", "dairy", "meat", "pantry", "frozen", "other"
	Checked  bool      `json:"checked"`
	AddedBy  string    `json:"added_by"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
