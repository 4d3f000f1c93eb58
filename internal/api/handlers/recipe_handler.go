package handlers

import (
	"strings"

	"pantry-backend/domain"
	"pantry-backend/internal/api/presenters"
	"pantry-backend/pkg/recipe"
	"pantry-backend/pkg/recommendation"
	"pantry-backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultRecipeLimit     = 20
	defaultExpiringDays    = 3
	defaultRecommendations = 20
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetExpiringRecommendations(c *fiber.Ctx) error
		AddMissingToShoppingList(c *fiber.Ctx) error
		AddIngredientToShoppingList(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService         recipe.RecipeService
		recommendationService recommendation.RecommendationService
		shoppingService       shopping.ShoppingService
		validator             *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	recommendationService recommendation.RecommendationService,
	shoppingService shopping.ShoppingService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:         recipeService,
		recommendationService: recommendationService,
		shoppingService:       shoppingService,
		validator:             validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	query := domain.RecipeListQuery{
		Skip:                c.QueryInt("skip", 0),
		Limit:               c.QueryInt("limit", defaultRecipeLimit),
		DietType:            c.Query("diet_type"),
		ExcludeIntolerances: splitList(c.Query("exclude_intolerances")),
		UseUserProfile:      c.QueryBool("use_user_profile", true),
	}
	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipes(c.Context(), query, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetExpiringRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days := c.QueryInt("days", defaultExpiringDays)
	limit := c.QueryInt("limit", defaultRecommendations)

	res, err := h.recommendationService.ExpiringRecommendations(c.Context(), userID, days, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecommendations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}

func (h *recipeHandler) AddMissingToShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req domain.AddMissingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.shoppingService.AddMissingFromRecipe(c.Context(), c.Params("id"), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedAddMissing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMissing)
}

func (h *recipeHandler) AddIngredientToShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req domain.AddRecipeIngredientRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddIngredientFromRecipe(c.Context(), c.Params("id"), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err, fiber.StatusInternalServerError), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

// splitList reads a comma separated query value such as "gluten, dairy".
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
