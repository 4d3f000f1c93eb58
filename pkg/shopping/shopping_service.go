package shopping

import (
	"context"
	"errors"
	"strings"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/naming"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, userID string, onlyPending bool) ([]domain.ShoppingItemResponse, error)
		AddShoppingItem(ctx context.Context, req domain.CreateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error)
		DeleteShoppingItem(ctx context.Context, id string, userID string) error

		AddMissingFromRecipe(ctx context.Context, recipeID string, req domain.AddMissingRequest, userID string) (domain.AddMissingResponse, error)
		AddIngredientFromRecipe(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest, userID string) (domain.ShoppingItemResponse, error)
	}

	shoppingService struct {
		shoppingRepository   ShoppingRepository
		recipeRepository     recipe.RecipeRepository
		pantryRepository     pantry.PantryRepository
		ingredientRepository ingredient.IngredientRepository
		lang                 string
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	recipeRepository recipe.RecipeRepository,
	pantryRepository pantry.PantryRepository,
	ingredientRepository ingredient.IngredientRepository,
	lang string,
) ShoppingService {
	return &shoppingService{
		shoppingRepository:   shoppingRepository,
		recipeRepository:     recipeRepository,
		pantryRepository:     pantryRepository,
		ingredientRepository: ingredientRepository,
		lang:                 lang,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, userID string, onlyPending bool) ([]domain.ShoppingItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.shoppingRepository.GetShoppingItems(ctx, userUUID, onlyPending)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ShoppingItemResponse, 0, len(items))
	for i := range items {
		res = append(res, s.toResponse(&items[i]))
	}
	return res, nil
}

// AddShoppingItem never merges with an existing entry for the same ingredient.
func (s *shoppingService) AddShoppingItem(ctx context.Context, req domain.CreateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingItemResponse{}, domain.ErrIngredientNotFound
		}
		return domain.ShoppingItemResponse{}, err
	}

	item := &entities.ShoppingListItem{
		UserID:       userUUID,
		IngredientID: ingredientID,
		Quantity:     req.Quantity,
		Unit:         strings.TrimSpace(req.Unit),
	}
	if item.Quantity == 0 {
		item.Quantity = fallbackQuantity
	}
	if req.LinkedRecipeID != "" {
		recipeID, err := uuid.Parse(req.LinkedRecipeID)
		if err != nil {
			return domain.ShoppingItemResponse{}, domain.ErrParseUUID
		}
		item.LinkedRecipeID = &recipeID
	}

	if err := s.shoppingRepository.CreateShoppingItems(ctx, []*entities.ShoppingListItem{item}); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	item.Ingredient = ing

	return s.toResponse(item), nil
}

func (s *shoppingService) UpdateShoppingItem(ctx context.Context, id string, req domain.UpdateShoppingItemRequest, userID string) (domain.ShoppingItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.IsDone != nil {
		item.IsChecked = *req.IsDone
	}

	if err := s.shoppingRepository.UpdateShoppingItem(ctx, item); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *shoppingService) DeleteShoppingItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.shoppingRepository.DeleteShoppingItem(ctx, item.ID)
}

// AddMissingFromRecipe adds one entry per recipe ingredient that the pantry
// does not cover. Partially stocked ingredients are included unless the
// request turns them off. Calling it twice adds the entries twice.
func (s *shoppingService) AddMissingFromRecipe(ctx context.Context, recipeID string, req domain.AddMissingRequest, userID string) (domain.AddMissingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddMissingResponse{}, domain.ErrParseUUID
	}
	r, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.AddMissingResponse{}, err
	}

	stock, err := recipe.StockFor(ctx, s.pantryRepository, userUUID, r.Ingredients)
	if err != nil {
		return domain.AddMissingResponse{}, err
	}

	includePartial := true
	if req.IncludePartiallyAvailable != nil {
		includePartial = *req.IncludePartiallyAvailable
	}
	gaps := PlanBulk(r.Ingredients, stock, includePartial)

	byIngredient := make(map[uuid.UUID]*entities.Ingredient, len(r.Ingredients))
	for _, line := range r.Ingredients {
		byIngredient[line.IngredientID] = line.Ingredient
	}

	items := make([]*entities.ShoppingListItem, 0, len(gaps))
	for _, gap := range gaps {
		items = append(items, s.itemFor(gap, userUUID, r.ID))
	}
	if err := s.shoppingRepository.CreateShoppingItems(ctx, items); err != nil {
		return domain.AddMissingResponse{}, err
	}

	res := domain.AddMissingResponse{AddedCount: len(items), Items: make([]domain.ShoppingItemResponse, 0, len(items))}
	for _, item := range items {
		item.Ingredient = byIngredient[item.IngredientID]
		res.Items = append(res.Items, s.toResponse(item))
	}
	return res, nil
}

// AddIngredientFromRecipe adds a single recipe ingredient, even when the
// pantry already covers it.
func (s *shoppingService) AddIngredientFromRecipe(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest, userID string) (domain.ShoppingItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ShoppingItemResponse{}, domain.ErrParseUUID
	}
	r, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	var line *entities.RecipeIngredient
	for i := range r.Ingredients {
		if r.Ingredients[i].IngredientID == ingredientID {
			line = &r.Ingredients[i]
			break
		}
	}
	if line == nil {
		return domain.ShoppingItemResponse{}, domain.ErrIngredientNotInRecipe
	}

	stock, err := recipe.StockFor(ctx, s.pantryRepository, userUUID, []entities.RecipeIngredient{*line})
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item := s.itemFor(PlanSingle(*line, stock[ingredientID]), userUUID, r.ID)
	if err := s.shoppingRepository.CreateShoppingItems(ctx, []*entities.ShoppingListItem{item}); err != nil {
		return domain.ShoppingItemResponse{}, err
	}
	item.Ingredient = line.Ingredient

	return s.toResponse(item), nil
}

func (s *shoppingService) getRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	r, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *shoppingService) itemFor(gap Gap, userID, recipeID uuid.UUID) *entities.ShoppingListItem {
	return &entities.ShoppingListItem{
		UserID:         userID,
		IngredientID:   gap.IngredientID,
		Quantity:       gap.Quantity,
		Unit:           gap.Unit,
		LinkedRecipeID: &recipeID,
	}
}

func (s *shoppingService) ownedItem(ctx context.Context, id string, userID string) (*entities.ShoppingListItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.shoppingRepository.GetShoppingItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrShoppingItemNotFound
	}
	return item, nil
}

func (s *shoppingService) toResponse(item *entities.ShoppingListItem) domain.ShoppingItemResponse {
	res := domain.ShoppingItemResponse{
		ID:             item.ID.String(),
		IngredientID:   item.IngredientID.String(),
		IngredientName: naming.IngredientName(item.Ingredient, s.lang),
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		IsDone:         item.IsChecked,
		CreatedAt:      item.CreatedAt,
	}
	if item.LinkedRecipeID != nil {
		id := item.LinkedRecipeID.String()
		res.LinkedRecipeID = &id
	}
	return res
}
