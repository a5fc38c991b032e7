package domain

import (
	"errors"
	"fmt"
)

var (
	MessageSuccessScheduleMeal = "meal scheduled successfully"
	MessageSuccessEditMealPlan = "meal plan updated successfully"
	MessageSuccessCompleteMeal = "meal completed successfully"
	MessageSuccessRevertMeal   = "meal reverted to planned successfully"
	MessageSuccessLogMeal      = "meal logged successfully"
	MessageSuccessDeleteMeal   = "meal plan deleted successfully"
	MessageSuccessGetMealPlans = "meal plans retrieved successfully"

	MessageFailedScheduleMeal = "failed to schedule meal"
	MessageFailedEditMealPlan = "failed to update meal plan"
	MessageFailedCompleteMeal = "failed to complete meal"
	MessageFailedRevertMeal   = "failed to revert meal"
	MessageFailedLogMeal      = "failed to log meal"
	MessageFailedDeleteMeal   = "failed to delete meal plan"
	MessageFailedGetMealPlans = "failed to retrieve meal plans"

	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidMealDate  = fmt.Errorf("%w: invalid meal date", ErrInvalidInput)

	ErrUnknownMealAction   = fmt.Errorf("%w: unknown meal action", ErrInvalidInput)
	ErrBlankPlan           = fmt.Errorf("%w: a recipe name or description is required", ErrInvalidInput)
	ErrBlankSubstitution   = fmt.Errorf("%w: substitution description must not be blank", ErrInvalidInput)
	ErrBlankMealLog        = fmt.Errorf("%w: meal description must not be blank", ErrInvalidInput)
	ErrMissingPlan         = fmt.Errorf("%w: no planned meal on record", ErrGuardViolation)
	ErrMealAlreadyPlanned  = fmt.Errorf("%w: meal slot already has a plan", ErrGuardViolation)
	ErrMealCompleted       = fmt.Errorf("%w: meal already completed", ErrGuardViolation)
	ErrMealNotCompleted    = fmt.Errorf("%w: meal is not completed", ErrGuardViolation)
	ErrRevertWithoutPlan   = fmt.Errorf("%w: directly logged meals cannot be reverted to planned", ErrGuardViolation)
)

type (
	ScheduleMealRequest struct {
		Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
		MealType    string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snacks"`
		RecipeID    string   `json:"recipe_id" validate:"omitempty,uuid"`
		RecipeName  string   `json:"recipe_name" validate:"omitempty"`
		Ingredients []string `json:"ingredients" validate:"omitempty"`
		Servings    int      `json:"servings" validate:"omitempty,min=1"`
		CookingTime string   `json:"cooking_time" validate:"omitempty"`
		Description string   `json:"description" validate:"omitempty"`
		Source      string   `json:"source" validate:"omitempty"`
	}

	EditMealPlanRequest struct {
		RecipeName  string `json:"recipe_name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	CompleteMealRequest struct {
		Description string `json:"description" validate:"omitempty"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	LogMealRequest struct {
		Date        string `json:"date" validate:"required,datetime=2006-01-02"`
		MealType    string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snacks"`
		Description string `json:"description" validate:"required"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	PlannedMealResponse struct {
		RecipeID    string   `json:"recipe_id,omitempty"`
		RecipeName  string   `json:"recipe_name,omitempty"`
		Ingredients []string `json:"ingredients,omitempty"`
		Servings    int      `json:"servings,omitempty"`
		CookingTime string   `json:"cooking_time,omitempty"`
		Description string   `json:"description,omitempty"`
		Source      string   `json:"source,omitempty"`
	}

	ActualMealResponse struct {
		Description string `json:"description"`
		Notes       string `json:"notes,omitempty"`
		RecipeName  string `json:"recipe_name,omitempty"`
	}

	MealPlanResponse struct {
		ID             string               `json:"id"`
		Date           string               `json:"date"`
		MealType       string               `json:"meal_type"`
		Status         string               `json:"status"`
		Planned        *PlannedMealResponse `json:"planned,omitempty"`
		Completed      bool                 `json:"completed"`
		CompletedDate  string               `json:"completed_date,omitempty"`
		CompletionType string               `json:"completion_type,omitempty"`
		Actual         *ActualMealResponse  `json:"actual,omitempty"`
	}

	WeekMealPlanResponse struct {
		StartDate string             `json:"start_date"`
		EndDate   string             `json:"end_date"`
		Meals     []MealPlanResponse `json:"meals"`
	}
)
