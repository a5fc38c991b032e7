package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry-planner/domain"
	"pantry-planner/entities"
	"pantry-planner/pkg/expiry"
	"pantry-planner/pkg/pantry"
)

const (
	SourceManual    = "manual"
	SourceGenerated = "generated"
)

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		CheckAvailability(ctx context.Context, id string, userID string) (domain.AvailabilityResponse, error)
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error)
		BookmarkRecipe(ctx context.Context, id string, userID string) error
		RemoveBookmark(ctx context.Context, id string, userID string) error
		GetBookmarkedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantryRepository pantry.PantryRepository
		generator        RecipeGenerator
	}
)

func NewRecipeService(recipeRepository RecipeRepository, pantryRepository pantry.PantryRepository, generator RecipeGenerator) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
		generator:        generator,
	}
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}
	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:                 uuid.New(),
		UserID:             userUUID,
		Title:              req.Title,
		Description:        req.Description,
		CookingTimeMinutes: req.CookingTimeMinutes,
		Servings:           req.Servings,
		Ingredients:        string(ingredients),
		Instructions:       string(instructions),
		Source:             SourceManual,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return toRecipeResponse(recipe, false), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookmarked, err := s.bookmarkedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe, bookmarked[recipe.ID.String()]))
	}
	return responses, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	ingredients, err := parseIngredients(recipe.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	var instructions []string
	if recipe.Instructions != "" {
		if err := json.Unmarshal([]byte(recipe.Instructions), &instructions); err != nil {
			return domain.RecipeDetail{}, err
		}
	}

	pantryItems, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	bookmarked, err := s.bookmarkedSet(ctx, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	now := time.Now()
	annotated := make([]domain.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		entry := domain.Ingredient{Name: ingredient.Name}
		if stock := FindStock(ingredient.Name, pantryItems); stock != nil {
			entry.IsAvailable = true
			createdAt := stock.CreatedAt
			entry.Freshness = string(expiry.Classify(&createdAt, stock.DaysUntilExpiry, now))
		}
		annotated = append(annotated, entry)
	}

	availability := MatchAvailability(ingredients, pantryItems)

	return domain.RecipeDetail{
		Recipe:       toRecipeResponse(recipe, bookmarked[recipe.ID.String()]),
		Ingredients:  annotated,
		Instructions: instructions,
		Availability: domain.AvailabilityResponse{
			Available: availability.Available,
			Total:     availability.Total,
			Missing:   availability.Missing,
		},
	}, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) CheckAvailability(ctx context.Context, id string, userID string) (domain.AvailabilityResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.AvailabilityResponse{}, err
	}

	ingredients, err := parseIngredients(recipe.Ingredients)
	if err != nil {
		return domain.AvailabilityResponse{}, err
	}

	pantryItems, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.AvailabilityResponse{}, err
	}

	availability := MatchAvailability(ingredients, pantryItems)
	return domain.AvailabilityResponse{
		Available: availability.Available,
		Total:     availability.Total,
		Missing:   availability.Missing,
	}, nil
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest, userID string) (domain.GenerateRecipesResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, domain.ErrParseUUID
	}

	pantryItems, err := s.pantryRepository.GetPantryItems(ctx, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	now := time.Now()
	var names []string
	expiringCount := 0
	for _, item := range pantryItems {
		createdAt := item.CreatedAt
		category := expiry.Classify(&createdAt, item.DaysUntilExpiry, now)
		if category == expiry.ExpiringSoon {
			expiringCount++
		}
		if category == expiry.Expired {
			continue
		}
		if req.ExpiringOnly && category != expiry.ExpiringSoon {
			continue
		}
		names = append(names, item.Name)
	}

	if len(names) == 0 {
		return domain.GenerateRecipesResponse{}, domain.ErrNoIngredients
	}

	generated, err := s.generator.GenerateRecipes(ctx, names, req)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}

	responses := make([]domain.Recipe, 0, len(generated))
	for _, suggestion := range generated {
		ingredients, err := json.Marshal(suggestion.Ingredients)
		if err != nil {
			return domain.GenerateRecipesResponse{}, err
		}
		instructions, err := json.Marshal(suggestion.Instructions)
		if err != nil {
			return domain.GenerateRecipesResponse{}, err
		}

		recipe := &entities.Recipe{
			ID:                 uuid.New(),
			UserID:             userUUID,
			Title:              suggestion.Title,
			Description:        suggestion.Description,
			CookingTimeMinutes: suggestion.CookingTimeMinutes,
			Servings:           suggestion.Servings,
			Ingredients:        string(ingredients),
			Instructions:       string(instructions),
			Source:             SourceGenerated,
			IsGenerated:        true,
		}
		if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
			return domain.GenerateRecipesResponse{}, err
		}
		responses = append(responses, toRecipeResponse(recipe, false))
	}

	return domain.GenerateRecipesResponse{
		Recipes:       responses,
		TotalRecipes:  len(responses),
		ExpiringItems: expiringCount,
	}, nil
}

func (s *recipeService) BookmarkRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return err
	}

	bookmarked, err := s.bookmarkedSet(ctx, userID)
	if err != nil {
		return err
	}
	if bookmarked[recipe.ID.String()] {
		return nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.recipeRepository.CreateBookmark(ctx, &entities.RecipeBookmark{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
	})
}

func (s *recipeService) RemoveBookmark(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteBookmark(ctx, userID, id)
}

func (s *recipeService) GetBookmarkedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetBookmarkedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe, true))
	}
	return responses, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) bookmarkedSet(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := s.recipeRepository.GetBookmarkedRecipeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func parseIngredients(raw string) ([]IngredientRef, error) {
	if raw == "" {
		return nil, nil
	}
	var ingredients []IngredientRef
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func toRecipeResponse(recipe *entities.Recipe, isBookmarked bool) domain.Recipe {
	return domain.Recipe{
		ID:                 recipe.ID.String(),
		Title:              recipe.Title,
		Description:        recipe.Description,
		ImageURL:           recipe.ImageURL,
		CookingTimeMinutes: recipe.CookingTimeMinutes,
		Servings:           recipe.Servings,
		Source:             recipe.Source,
		CreatedAt:          recipe.CreatedAt,
		IsBookmarked:       isBookmarked,
	}
}
