package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessSaveRecipe        = "recipe saved successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessGenerateRecipes   = "recipes generated successfully"
	MessageSuccessCheckAvailability = "ingredient availability checked successfully"
	MessageSuccessBookmarkRecipe    = "recipe bookmarked successfully"
	MessageSuccessRemoveBookmark    = "bookmark removed successfully"
	MessageSuccessGetBookmarks      = "bookmarked recipes retrieved successfully"

	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedSaveRecipe        = "failed to save recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedGenerateRecipes   = "failed to generate recipes"
	MessageFailedCheckAvailability = "failed to check ingredient availability"
	MessageFailedBookmarkRecipe    = "failed to bookmark recipe"
	MessageFailedRemoveBookmark    = "failed to remove bookmark"
	MessageFailedGetBookmarks      = "failed to retrieve bookmarked recipes"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrGeneratorFailed          = errors.New("recipe generation failed")
	ErrNoIngredients            = errors.New("no ingredients available for recipe generation")
)

type (
	SaveRecipeRequest struct {
		Title              string   `json:"title" validate:"required"`
		Description        string   `json:"description" validate:"omitempty"`
		CookingTimeMinutes int      `json:"cooking_time_minutes" validate:"omitempty,min=0"`
		Servings           int      `json:"servings" validate:"omitempty,min=1"`
		Ingredients        []string `json:"ingredients" validate:"required,min=1"`
		Instructions       []string `json:"instructions" validate:"omitempty"`
	}

	GenerateRecipesRequest struct {
		ExpiringOnly   bool   `json:"expiring_only"`
		CuisineType    string `json:"cuisine_type,omitempty"`
		MaxCookingTime int    `json:"max_cooking_time,omitempty"` // in minutes
	}

	Recipe struct {
		ID                 string    `json:"id"`
		Title              string    `json:"title"`
		Description        string    `json:"description"`
		ImageURL           string    `json:"image_url,omitempty"`
		CookingTimeMinutes int       `json:"cooking_time_minutes"`
		Servings           int       `json:"servings"`
		Source             string    `json:"source"`
		CreatedAt          time.Time `json:"created_at"`
		IsBookmarked       bool      `json:"is_bookmarked"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients  []Ingredient         `json:"ingredients"`
		Instructions []string             `json:"instructions"`
		Availability AvailabilityResponse `json:"availability"`
	}

	Ingredient struct {
		Name        string `json:"name"`
		IsAvailable bool   `json:"is_available"`
		Freshness   string `json:"freshness,omitempty"`
	}

	AvailabilityResponse struct {
		Available int      `json:"available"`
		Total     int      `json:"total"`
		Missing   []string `json:"missing"`
	}

	GeneratedRecipe struct {
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		CookingTimeMinutes int      `json:"cookTimeMinutes"`
		Servings           int      `json:"servings"`
		Ingredients        []string `json:"ingredients"`
		Instructions       []string `json:"instructions"`
	}

	GenerateRecipesResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
	}
)
