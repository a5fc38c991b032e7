package mealplan

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pantry-planner/entities"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMealSlot(ctx context.Context, userID string, date time.Time, mealType string) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error
		GetMealPlansInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealSlot(ctx context.Context, userID string, date time.Time, mealType string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}

func (r *mealPlanRepository) GetMealPlansInRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date asc, meal_type asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
