package handlers

import (
	"errors"

	"pantry-backend/domain"
	"pantry-backend/internal/api/presenters"
	"pantry-backend/pkg/foodlog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodLogHandler interface {
		LogRecipe(c *fiber.Ctx) error
		LogIngredient(c *fiber.Ctx) error
		GetDailySummary(c *fiber.Ctx) error
		DeleteFoodLog(c *fiber.Ctx) error
	}

	foodLogHandler struct {
		foodLogService foodlog.FoodLogService
		validator      *validator.Validate
	}
)

func NewFoodLogHandler(foodLogService foodlog.FoodLogService, validator *validator.Validate) FoodLogHandler {
	return &foodLogHandler{
		foodLogService: foodLogService,
		validator:      validator,
	}
}

func (h *foodLogHandler) LogRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req domain.LogRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	res, err := h.foodLogService.LogRecipe(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadRequest), domain.MessageFailedLogFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogFood)
}

func (h *foodLogHandler) LogIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req domain.LogIngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogFood, err)
	}

	res, err := h.foodLogService.LogIngredient(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadRequest), domain.MessageFailedLogFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogFood)
}

func (h *foodLogHandler) GetDailySummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodLogService.DailySummary(c.Context(), c.Query("date"), userID)
	if err != nil {
		status := presenters.StatusFor(err, fiber.StatusInternalServerError)
		if errors.Is(err, domain.ErrInvalidLogDate) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetDailySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDailySummary)
}

func (h *foodLogHandler) DeleteFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.foodLogService.DeleteFoodLog(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusBadRequest), domain.MessageFailedDeleteFoodLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodLog)
}
