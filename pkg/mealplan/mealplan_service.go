package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pantry-planner/domain"
	"pantry-planner/entities"
)

const dateLayout = "2006-01-02"

type (
	MealPlanService interface {
		ScheduleMeal(ctx context.Context, req domain.ScheduleMealRequest, userID string) (domain.MealPlanResponse, error)
		EditMealPlan(ctx context.Context, id string, req domain.EditMealPlanRequest, userID string) (domain.MealPlanResponse, error)
		CompleteMealAsPlanned(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error)
		CompleteMealWithSubstitution(ctx context.Context, id string, req domain.CompleteMealRequest, userID string) (domain.MealPlanResponse, error)
		RevertMealToPlanned(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error)
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.MealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id string, userID string) error
		GetWeekMealPlans(ctx context.Context, userID string, startDate string) (domain.WeekMealPlanResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository}
}

func (s *mealPlanService) ScheduleMeal(ctx context.Context, req domain.ScheduleMealRequest, userID string) (domain.MealPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidMealDate
	}

	plan, err := s.mealPlanRepository.GetMealSlot(ctx, userID, date, req.MealType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, err
		}
		plan = &entities.MealPlan{
			ID:       uuid.New(),
			UserID:   userUUID,
			Date:     date,
			MealType: req.MealType,
			Status:   string(StateEmpty),
		}
		if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
			return domain.MealPlanResponse{}, err
		}
	}

	record, err := toRecord(plan)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	next, err := Apply(record, ActionSchedule, Payload{
		Planned: &PlannedMeal{
			RecipeID:    req.RecipeID,
			RecipeName:  req.RecipeName,
			Ingredients: req.Ingredients,
			Servings:    req.Servings,
			CookingTime: req.CookingTime,
			Description: req.Description,
			Source:      req.Source,
		},
	}, time.Now())
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.persist(ctx, plan, next)
}

func (s *mealPlanService) EditMealPlan(ctx context.Context, id string, req domain.EditMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	return s.applyToPlan(ctx, id, userID, ActionEditPlan, Payload{
		Planned: &PlannedMeal{
			RecipeName:  req.RecipeName,
			Description: req.Description,
		},
	})
}

func (s *mealPlanService) CompleteMealAsPlanned(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error) {
	return s.applyToPlan(ctx, id, userID, ActionCompleteAsPlanned, Payload{})
}

func (s *mealPlanService) CompleteMealWithSubstitution(ctx context.Context, id string, req domain.CompleteMealRequest, userID string) (domain.MealPlanResponse, error) {
	return s.applyToPlan(ctx, id, userID, ActionCompleteWithSubstitution, Payload{
		Description: req.Description,
		Notes:       req.Notes,
	})
}

func (s *mealPlanService) RevertMealToPlanned(ctx context.Context, id string, userID string) (domain.MealPlanResponse, error) {
	return s.applyToPlan(ctx, id, userID, ActionRevertToPlanned, Payload{})
}

func (s *mealPlanService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.MealPlanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidMealDate
	}

	plan, err := s.mealPlanRepository.GetMealSlot(ctx, userID, date, req.MealType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, err
		}
		plan = &entities.MealPlan{
			ID:       uuid.New(),
			UserID:   userUUID,
			Date:     date,
			MealType: req.MealType,
			Status:   string(StateEmpty),
		}
		if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
			return domain.MealPlanResponse{}, err
		}
	}

	record, err := toRecord(plan)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	next, err := Apply(record, ActionLogDirect, Payload{
		Description: req.Description,
		Notes:       req.Notes,
	}, time.Now())
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.persist(ctx, plan, next)
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string, userID string) error {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}

	if plan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.mealPlanRepository.DeleteMealPlan(ctx, id)
}

func (s *mealPlanService) GetWeekMealPlans(ctx context.Context, userID string, startDate string) (domain.WeekMealPlanResponse, error) {
	var start time.Time
	if startDate == "" {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		// Walk back to the most recent Monday.
		for start.Weekday() != time.Monday {
			start = start.AddDate(0, 0, -1)
		}
	} else {
		var err error
		start, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return domain.WeekMealPlanResponse{}, domain.ErrInvalidMealDate
		}
	}
	end := start.AddDate(0, 0, 6)

	plans, err := s.mealPlanRepository.GetMealPlansInRange(ctx, userID, start, end)
	if err != nil {
		return domain.WeekMealPlanResponse{}, err
	}

	meals := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		record, err := toRecord(plan)
		if err != nil {
			return domain.WeekMealPlanResponse{}, err
		}
		meals = append(meals, toMealPlanResponse(plan, record))
	}

	return domain.WeekMealPlanResponse{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Meals:     meals,
	}, nil
}

// applyToPlan loads a plan the user owns, runs one lifecycle transition and
// persists the result.
func (s *mealPlanService) applyToPlan(ctx context.Context, id string, userID string, action Action, payload Payload) (domain.MealPlanResponse, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}

	if plan.UserID.String() != userID {
		return domain.MealPlanResponse{}, domain.ErrUnauthorizedAccess
	}

	record, err := toRecord(plan)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	next, err := Apply(record, action, payload, time.Now())
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.persist(ctx, plan, next)
}

func (s *mealPlanService) persist(ctx context.Context, plan *entities.MealPlan, record Record) (domain.MealPlanResponse, error) {
	if err := fromRecord(plan, record); err != nil {
		return domain.MealPlanResponse{}, err
	}
	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}
	return toMealPlanResponse(plan, record), nil
}

// toRecord rebuilds the lifecycle record from a stored row. The planned and
// actual payloads live as JSON text columns.
func toRecord(plan *entities.MealPlan) (Record, error) {
	record := Record{
		State:          State(plan.Status),
		CompletedDate:  plan.CompletedDate,
		CompletionType: plan.CompletionType,
	}
	if record.State == "" {
		record.State = StateEmpty
	}

	if plan.Planned != "" {
		var planned PlannedMeal
		if err := json.Unmarshal([]byte(plan.Planned), &planned); err != nil {
			return Record{}, err
		}
		record.Planned = &planned
	}
	if plan.Actual != "" {
		var actual ActualMeal
		if err := json.Unmarshal([]byte(plan.Actual), &actual); err != nil {
			return Record{}, err
		}
		record.Actual = &actual
	}
	return record, nil
}

func fromRecord(plan *entities.MealPlan, record Record) error {
	plan.Status = string(record.State)
	plan.Completed = record.State == StateCompleted
	plan.CompletedDate = record.CompletedDate
	plan.CompletionType = record.CompletionType

	plan.Planned = ""
	if record.Planned != nil {
		data, err := json.Marshal(record.Planned)
		if err != nil {
			return err
		}
		plan.Planned = string(data)
	}

	plan.Actual = ""
	if record.Actual != nil {
		data, err := json.Marshal(record.Actual)
		if err != nil {
			return err
		}
		plan.Actual = string(data)
	}
	return nil
}

func toMealPlanResponse(plan *entities.MealPlan, record Record) domain.MealPlanResponse {
	resp := domain.MealPlanResponse{
		ID:             plan.ID.String(),
		Date:           plan.Date.Format(dateLayout),
		MealType:       plan.MealType,
		Status:         string(record.State),
		Completed:      record.State == StateCompleted,
		CompletionType: record.CompletionType,
	}
	if record.CompletedDate != nil {
		resp.CompletedDate = record.CompletedDate.Format(dateLayout)
	}
	if record.Planned != nil {
		resp.Planned = &domain.PlannedMealResponse{
			RecipeID:    record.Planned.RecipeID,
			RecipeName:  record.Planned.RecipeName,
			Ingredients: record.Planned.Ingredients,
			Servings:    record.Planned.Servings,
			CookingTime: record.Planned.CookingTime,
			Description: record.Planned.Description,
			Source:      record.Planned.Source,
		}
	}
	if record.Actual != nil {
		resp.Actual = &domain.ActualMealResponse{
			Description: record.Actual.Description,
			Notes:       record.Actual.Notes,
			RecipeName:  record.Actual.RecipeName,
		}
	}
	return resp
}
