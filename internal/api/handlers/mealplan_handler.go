package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pantry-planner/domain"
	"pantry-planner/internal/api/presenters"
	"pantry-planner/pkg/mealplan"
)

type (
	MealPlanHandler interface {
		ScheduleMeal(c *fiber.Ctx) error
		EditMealPlan(c *fiber.Ctx) error
		CompleteMeal(c *fiber.Ctx) error
		RevertMeal(c *fiber.Ctx) error
		LogMeal(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		GetWeekMealPlans(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

// mealPlanStatus maps lifecycle errors onto HTTP codes: validation failures
// are 400, guard violations 409.
func mealPlanStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMealPlanNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrGuardViolation):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *mealPlanHandler) ScheduleMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScheduleMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScheduleMeal, err)
	}

	res, err := h.mealPlanService.ScheduleMeal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedScheduleMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessScheduleMeal)
}

func (h *mealPlanHandler) EditMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.EditMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditMealPlan, err)
	}

	res, err := h.mealPlanService.EditMealPlan(c.Context(), planID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedEditMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEditMealPlan)
}

func (h *mealPlanHandler) CompleteMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")
	req := new(domain.CompleteMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMeal, err)
	}

	var res domain.MealPlanResponse
	var err error
	if req.Description == "" {
		res, err = h.mealPlanService.CompleteMealAsPlanned(c.Context(), planID, userID)
	} else {
		res, err = h.mealPlanService.CompleteMealWithSubstitution(c.Context(), planID, *req, userID)
	}
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedCompleteMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteMeal)
}

func (h *mealPlanHandler) RevertMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	res, err := h.mealPlanService.RevertMealToPlanned(c.Context(), planID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedRevertMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRevertMeal)
}

func (h *mealPlanHandler) LogMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	res, err := h.mealPlanService.LogMeal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedLogMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID, userID); err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedDeleteMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMeal)
}

func (h *mealPlanHandler) GetWeekMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	startDate := c.Query("start_date", "")

	res, err := h.mealPlanService.GetWeekMealPlans(c.Context(), userID, startDate)
	if err != nil {
		return presenters.ErrorResponse(c, mealPlanStatus(err), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}
