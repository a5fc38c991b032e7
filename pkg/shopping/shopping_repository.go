package shopping

import (
	"context"

	"gorm.io/gorm"

	"pantry-planner/entities"
)

type (
	ShoppingRepository interface {
		AddShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteShoppingItem(ctx context.Context, id string) error
		GetShoppingItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error)
		DeleteCheckedItems(ctx context.Context, userID string) (int64, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) AddShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteShoppingItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepository) GetShoppingItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) DeleteCheckedItems(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ? AND checked = ?", userID, true).Delete(&entities.ShoppingListItem{})
	return result.RowsAffected, result.Error
}
