package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessToggleShoppingItem = "shopping list item toggled successfully"
	MessageSuccessDeleteShoppingItem = "shopping list item deleted successfully"
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessClearChecked       = "checked items cleared successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedToggleShoppingItem = "failed to toggle shopping list item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping list item"
	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedClearChecked       = "failed to clear checked items"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

type (
	AddShoppingItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"omitempty,oneof=produce dairy meat pantry frozen other"`
	}

	ShoppingItemResponse struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Category string    `json:"category"`
		Checked  bool      `json:"checked"`
		AddedBy  string    `json:"added_by"`
		AddedAt  time.Time `json:"added_at"`
	}

	GroupedShoppingResponse struct {
		Buckets map[string][]ShoppingItemResponse `json:"buckets"`
		Order   []string                          `json:"order"`
	}

	ClearCheckedResponse struct {
		Removed int64 `json:"removed"`
	}
)
