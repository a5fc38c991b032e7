package pantry

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/internal/utils"
	"pantry-planner/internal/utils/mailing"
	"pantry-planner/internal/utils/storage"
	"pantry-planner/pkg/expiry"
	"pantry-planner/pkg/grouping"
	"pantry-planner/pkg/user"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context, userID string, groupBy string) (domain.GroupedPantryResponse, error)
		GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error)
		UploadItemPhoto(ctx context.Context, req domain.UploadItemPhotoRequest, userID string) error
		SendExpiryDigest(ctx context.Context, userID string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		userRepository   user.UserRepository
		s3               storage.AwsS3
	}
)

func NewPantryService(pantryRepository PantryRepository, userRepository user.UserRepository, s3 storage.AwsS3) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
		s3:               s3,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.PantryItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Location:        req.Location,
		Quantity:        req.Quantity,
		DaysUntilExpiry: req.DaysUntilExpiry,
		DetectedBy:      entities.DetectedManually,
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toResponse(item, time.Now()), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.DaysUntilExpiry != nil {
		item.DaysUntilExpiry = req.DaysUntilExpiry
	}

	return s.pantryRepository.UpdatePantryItem(ctx, item)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.PantryItemResponse{}, domain.ErrUnauthorizedAccess
	}

	return toResponse(item, time.Now()), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string, groupBy string) (domain.GroupedPantryResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.GroupedPantryResponse{}, err
	}

	now := time.Now()
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toResponse(item, now))
	}

	strategy := grouping.Strategy(groupBy)
	if groupBy == "" {
		strategy = grouping.NoGrouping
	}

	grouped, err := grouping.PantryItems(responses, strategy, now)
	if err != nil {
		return domain.GroupedPantryResponse{}, err
	}

	return domain.GroupedPantryResponse{
		Buckets: grouped.Buckets,
		Order:   grouped.Order,
	}, nil
}

func (s *pantryService) GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	now := time.Now()
	stats := domain.PantryStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		createdAt := item.CreatedAt
		switch expiry.Classify(&createdAt, item.DaysUntilExpiry, now) {
		case expiry.Fresh:
			stats.FreshItems++
		case expiry.ExpiringSoon:
			stats.ExpiringItems++
		case expiry.Expired:
			stats.ExpiredItems++
		default:
			stats.UnknownItems++
		}
	}
	return stats, nil
}

func (s *pantryService) UploadItemPhoto(ctx context.Context, req domain.UploadItemPhotoRequest, userID string) error {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, req.PantryItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("pantry-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "pantry-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "pantry-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	detection, err := s.detectShelfLife(ctx, req.Image)
	if err == nil {
		item.Name = detection.FoodType
		remaining := detection.ShelfLifeDays - detection.EstimatedAge
		if remaining < 0 {
			remaining = 0
		}
		item.DaysUntilExpiry = &remaining
		item.Confidence = &detection.Confidence
		item.DetectedBy = entities.DetectedByPhoto
	}

	return s.pantryRepository.UpdatePantryItem(ctx, item)
}

// detectShelfLife sends the photo to Gemini and parses a shelf-life estimate
// out of the response text.
func (s *pantryService) detectShelfLife(ctx context.Context, imageFile *multipart.FileHeader) (domain.PhotoDetectionResult, error) {
	file, err := imageFile.Open()
	if err != nil {
		return domain.PhotoDetectionResult{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.PhotoDetectionResult{}, err
	}
	base64Image := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiAPIKey == "" || geminiModel == "" {
		return domain.PhotoDetectionResult{}, domain.ErrDetectionFailed
	}

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": "Analyze this food image and respond ONLY with a valid JSON object containing exactly these fields: 'foodType' (string), 'estimatedAgeDays' (number), 'shelfLifeDays' (number), and 'confidenceScore' (number between 0 and 1). Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.PhotoDetectionResult{}, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.PhotoDetectionResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return domain.PhotoDetectionResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.PhotoDetectionResult{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.PhotoDetectionResult{}, err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.PhotoDetectionResult{}, domain.ErrDetectionFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	jsonPattern := regexp.MustCompile(`(?s)\{.*\}`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var result domain.PhotoDetectionResult
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return domain.PhotoDetectionResult{}, fmt.Errorf("failed to parse detection response: %v", err)
	}

	if result.FoodType == "" {
		result.FoodType = "Unknown Food"
	}
	if result.EstimatedAge < 0 {
		result.EstimatedAge = 0
	}
	if result.ShelfLifeDays < 0 {
		result.ShelfLifeDays = 0
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		result.Confidence = 0.5
	}

	return result, nil
}

func (s *pantryService) SendExpiryDigest(ctx context.Context, userID string) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	items, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	var expiring, expired []*entities.PantryItem
	for _, item := range items {
		createdAt := item.CreatedAt
		switch expiry.Classify(&createdAt, item.DaysUntilExpiry, now) {
		case expiry.ExpiringSoon:
			expiring = append(expiring, item)
		case expiry.Expired:
			expired = append(expired, item)
		}
	}

	if len(expiring) == 0 && len(expired) == 0 {
		return domain.ErrNoExpiringItems
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<p>Hi %s, here is your pantry expiry report:</p>", account.Name))
	if len(expired) > 0 {
		body.WriteString("<p><strong>Already expired:</strong></p><ul>")
		for _, item := range expired {
			body.WriteString(fmt.Sprintf("<li>%s</li>", item.Name))
		}
		body.WriteString("</ul>")
	}
	if len(expiring) > 0 {
		body.WriteString("<p><strong>Expiring within a week:</strong></p><ul>")
		for _, item := range expiring {
			body.WriteString(fmt.Sprintf("<li>%s</li>", item.Name))
		}
		body.WriteString("</ul>")
	}

	return mailing.SendMail(account.Email, "Pantry expiry digest", body.String())
}

func toResponse(item *entities.PantryItem, now time.Time) domain.PantryItemResponse {
	createdAt := item.CreatedAt
	return domain.PantryItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Location:        item.Location,
		Quantity:        item.Quantity,
		DaysUntilExpiry: item.DaysUntilExpiry,
		Freshness:       string(expiry.Classify(&createdAt, item.DaysUntilExpiry, now)),
		Confidence:      item.Confidence,
		DetectedBy:      item.DetectedBy,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}
