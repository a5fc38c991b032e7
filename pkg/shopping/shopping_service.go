package shopping

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/pkg/grouping"
)

type (
	ShoppingService interface {
		AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		ToggleShoppingItem(ctx context.Context, id string, userID string) (domain.ShoppingItemResponse, error)
		DeleteShoppingItem(ctx context.Context, id string, userID string) error
		GetShoppingList(ctx context.Context, userID string, groupBy string) (domain.GroupedShoppingResponse, error)
		ClearCheckedItems(ctx context.Context, userID string) (domain.ClearCheckedResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func (s *shoppingService) AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	category := req.Category
	if category == "" {
		category = entities.CategoryOther
	}

	item := &entities.ShoppingListItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Category: category,
		Checked:  false,
		AddedBy:  userID,
	}

	if err := s.shoppingRepository.AddShoppingItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return toShoppingResponse(item), nil
}

func (s *shoppingService) ToggleShoppingItem(ctx context.Context, id string, userID string) (domain.ShoppingItemResponse, error) {
	item, err := s.shoppingRepository.GetShoppingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrShoppingItemNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ShoppingItemResponse{}, domain.ErrUnauthorizedAccess
	}

	item.Checked = !item.Checked
	if err := s.shoppingRepository.UpdateShoppingItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return toShoppingResponse(item), nil
}

func (s *shoppingService) DeleteShoppingItem(ctx context.Context, id string, userID string) error {
	item, err := s.shoppingRepository.GetShoppingItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.shoppingRepository.DeleteShoppingItem(ctx, id)
}

func (s *shoppingService) GetShoppingList(ctx context.Context, userID string, groupBy string) (domain.GroupedShoppingResponse, error) {
	items, err := s.shoppingRepository.GetShoppingItems(ctx, userID)
	if err != nil {
		return domain.GroupedShoppingResponse{}, err
	}

	responses := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toShoppingResponse(item))
	}

	strategy := grouping.Strategy(groupBy)
	if groupBy == "" {
		strategy = grouping.ByCategory
	}

	grouped, err := grouping.ShoppingItems(responses, strategy, time.Now())
	if err != nil {
		return domain.GroupedShoppingResponse{}, err
	}

	return domain.GroupedShoppingResponse{
		Buckets: grouped.Buckets,
		Order:   grouped.Order,
	}, nil
}

func (s *shoppingService) ClearCheckedItems(ctx context.Context, userID string) (domain.ClearCheckedResponse, error) {
	removed, err := s.shoppingRepository.DeleteCheckedItems(ctx, userID)
	if err != nil {
		return domain.ClearCheckedResponse{}, err
	}
	return domain.ClearCheckedResponse{Removed: removed}, nil
}

func toShoppingResponse(item *entities.ShoppingListItem) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		Category: item.Category,
		Checked:  item.Checked,
		AddedBy:  item.AddedBy,
		AddedAt:  item.CreatedAt,
	}
}
