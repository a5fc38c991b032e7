package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessUploadItemPhoto  = "item photo uploaded successfully"
	MessageSuccessGetPantryStats   = "pantry statistics retrieved successfully"
	MessageSuccessSendExpiryDigest = "expiry digest sent successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedUploadItemPhoto  = "failed to upload item photo"
	MessageFailedGetPantryStats   = "failed to retrieve pantry statistics"
	MessageFailedSendExpiryDigest = "failed to send expiry digest"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrDetectionFailed    = errors.New("photo detection failed")
	ErrNoExpiringItems    = errors.New("no expiring items to report")
)

type (
	AddPantryItemRequest struct {
		Name            string `json:"name" validate:"required"`
		Location        string `json:"location" validate:"required,oneof=pantry fridge freezer"`
		Quantity        string `json:"quantity" validate:"omitempty"`
		DaysUntilExpiry *int   `json:"days_until_expiry" validate:"omitempty,min=0"`
	}

	UpdatePantryItemRequest struct {
		Name            string `json:"name" validate:"omitempty"`
		Location        string `json:"location" validate:"omitempty,oneof=pantry fridge freezer"`
		Quantity        string `json:"quantity" validate:"omitempty"`
		DaysUntilExpiry *int   `json:"days_until_expiry" validate:"omitempty,min=0"`
	}

	UploadItemPhotoRequest struct {
		PantryItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	PantryItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Location        string    `json:"location"`
		Quantity        string    `json:"quantity,omitempty"`
		DaysUntilExpiry *int      `json:"days_until_expiry,omitempty"`
		Freshness       string    `json:"freshness"`
		Confidence      *float64  `json:"confidence,omitempty"`
		DetectedBy      string    `json:"detected_by"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	GroupedPantryResponse struct {
		Buckets map[string][]PantryItemResponse `json:"buckets"`
		Order   []string                        `json:"order"`
	}

	PantryStatsResponse struct {
		TotalItems    int `json:"total_items"`
		FreshItems    int `json:"fresh_items"`
		ExpiringItems int `json:"expiring_items"`
		ExpiredItems  int `json:"expired_items"`
		UnknownItems  int `json:"unknown_items"`
	}

	PhotoDetectionResult struct {
		FoodType        string  `json:"foodType"`
		EstimatedAge    int     `json:"estimatedAgeDays"`
		ShelfLifeDays   int     `json:"shelfLifeDays"`
		Confidence      float64 `json:"confidenceScore"`
	}
)
