package recipe

import (
	"context"

	"gorm.io/gorm"

	"pantry-planner/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		CreateBookmark(ctx context.Context, bookmark *entities.RecipeBookmark) error
		DeleteBookmark(ctx context.Context, userID string, recipeID string) error
		GetBookmarkedRecipeIDs(ctx context.Context, userID string) ([]string, error)
		GetBookmarkedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.RecipeBookmark{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) CreateBookmark(ctx context.Context, bookmark *entities.RecipeBookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *recipeRepository) DeleteBookmark(ctx context.Context, userID string, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeBookmark{}).Error
}

func (r *recipeRepository) GetBookmarkedRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeBookmark{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) GetBookmarkedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_bookmarks ON recipe_bookmarks.recipe_id = recipes.id").
		Where("recipe_bookmarks.user_id = ?", userID).
		Order("recipe_bookmarks.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
