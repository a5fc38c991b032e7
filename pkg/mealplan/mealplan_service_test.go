package mealplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"pantry-planner/domain"
	"pantry-planner/entities"
)

type fakeMealPlanRepository struct {
	plans map[string]*entities.MealPlan
}

func newFakeMealPlanRepository() *fakeMealPlanRepository {
	return &fakeMealPlanRepository{plans: make(map[string]*entities.MealPlan)}
}

func (r *fakeMealPlanRepository) CreateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	copied := *plan
	r.plans[plan.ID.String()] = &copied
	return nil
}

func (r *fakeMealPlanRepository) GetMealPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *plan
	return &copied, nil
}

func (r *fakeMealPlanRepository) GetMealSlot(_ context.Context, userID string, date time.Time, mealType string) (*entities.MealPlan, error) {
	for _, plan := range r.plans {
		if plan.UserID.String() == userID && plan.Date.Equal(date) && plan.MealType == mealType {
			copied := *plan
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMealPlanRepository) UpdateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	copied := *plan
	r.plans[plan.ID.String()] = &copied
	return nil
}

func (r *fakeMealPlanRepository) DeleteMealPlan(_ context.Context, id string) error {
	delete(r.plans, id)
	return nil
}

func (r *fakeMealPlanRepository) GetMealPlansInRange(_ context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	for _, plan := range r.plans {
		if plan.UserID.String() == userID && !plan.Date.Before(start) && !plan.Date.After(end) {
			copied := *plan
			plans = append(plans, &copied)
		}
	}
	return plans, nil
}

const testUserID = "7f9c24e5-2f33-4b58-a9b4-ec1a51a9d2f1"

func TestScheduleAndCompleteThroughService(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	ctx := context.Background()

	scheduled, err := service.ScheduleMeal(ctx, domain.ScheduleMealRequest{
		Date:       "2025-06-16",
		MealType:   entities.MealTypeDinner,
		RecipeName: "Lasagna",
		Servings:   4,
	}, testUserID)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if scheduled.Status != string(StatePlanned) {
		t.Fatalf("expected planned status, got %s", scheduled.Status)
	}
	if scheduled.Planned == nil || scheduled.Planned.RecipeName != "Lasagna" {
		t.Fatalf("expected planned Lasagna, got %+v", scheduled.Planned)
	}

	completed, err := service.CompleteMealAsPlanned(ctx, scheduled.ID, testUserID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != string(StateCompleted) || !completed.Completed {
		t.Fatalf("expected completed status, got %+v", completed)
	}
	if completed.Actual == nil || completed.Actual.Description != "Lasagna" {
		t.Fatalf("expected actual Lasagna, got %+v", completed.Actual)
	}

	// A stored completed record survives a load and reverts verbatim.
	reverted, err := service.RevertMealToPlanned(ctx, scheduled.ID, testUserID)
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if reverted.Status != string(StatePlanned) || reverted.Actual != nil {
		t.Fatalf("expected plain planned record after revert, got %+v", reverted)
	}
	if reverted.Planned == nil || reverted.Planned.Servings != 4 {
		t.Fatalf("expected planned payload intact after revert, got %+v", reverted.Planned)
	}
}

func TestScheduleTwiceRejected(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	ctx := context.Background()

	req := domain.ScheduleMealRequest{
		Date:       "2025-06-16",
		MealType:   entities.MealTypeLunch,
		RecipeName: "Soup",
	}
	if _, err := service.ScheduleMeal(ctx, req, testUserID); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	_, err := service.ScheduleMeal(ctx, req, testUserID)
	if !errors.Is(err, domain.ErrMealAlreadyPlanned) {
		t.Fatalf("expected ErrMealAlreadyPlanned, got %v", err)
	}
	if !errors.Is(err, domain.ErrGuardViolation) {
		t.Fatalf("expected guard violation taxonomy, got %v", err)
	}
}

func TestLogMealOnEmptySlot(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	ctx := context.Background()

	logged, err := service.LogMeal(ctx, domain.LogMealRequest{
		Date:        "2025-06-16",
		MealType:    entities.MealTypeBreakfast,
		Description: "Cereal",
	}, testUserID)
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if logged.Status != string(StateCompleted) || logged.Planned != nil {
		t.Fatalf("expected completed without plan, got %+v", logged)
	}
	if logged.CompletionType != CompletionModified {
		t.Fatalf("expected modified completion, got %s", logged.CompletionType)
	}

	_, err = service.RevertMealToPlanned(ctx, logged.ID, testUserID)
	if !errors.Is(err, domain.ErrRevertWithoutPlan) {
		t.Fatalf("expected ErrRevertWithoutPlan, got %v", err)
	}
}

func TestOwnershipGuard(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	ctx := context.Background()

	scheduled, err := service.ScheduleMeal(ctx, domain.ScheduleMealRequest{
		Date:       "2025-06-16",
		MealType:   entities.MealTypeDinner,
		RecipeName: "Curry",
	}, testUserID)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	otherUser := "2b7a1c90-5f4e-4f7a-8d3b-9e6f0a1b2c3d"
	if _, err := service.CompleteMealAsPlanned(ctx, scheduled.ID, otherUser); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Fatalf("expected ErrUnauthorizedAccess, got %v", err)
	}
}

func TestGetWeekMealPlans(t *testing.T) {
	repo := newFakeMealPlanRepository()
	service := NewMealPlanService(repo)
	ctx := context.Background()

	if _, err := service.ScheduleMeal(ctx, domain.ScheduleMealRequest{
		Date:       "2025-06-17",
		MealType:   entities.MealTypeDinner,
		RecipeName: "Tacos",
	}, testUserID); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	week, err := service.GetWeekMealPlans(ctx, testUserID, "2025-06-16")
	if err != nil {
		t.Fatalf("get week: %v", err)
	}
	if week.StartDate != "2025-06-16" || week.EndDate != "2025-06-22" {
		t.Fatalf("expected week 2025-06-16..2025-06-22, got %s..%s", week.StartDate, week.EndDate)
	}
	if len(week.Meals) != 1 || week.Meals[0].Date != "2025-06-17" {
		t.Fatalf("expected one meal on 2025-06-17, got %+v", week.Meals)
	}
}
