package pantry

import (
	"context"
	"errors"
	"strings"
	"time"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/naming"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetPantryItem(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		AddPantryItem(ctx context.Context, req domain.CreatePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string, userID string) error
	}

	pantryService struct {
		pantryRepository     PantryRepository
		ingredientRepository ingredient.IngredientRepository
		lang                 string
	}
)

func NewPantryService(pantryRepository PantryRepository, ingredientRepository ingredient.IngredientRepository, lang string) PantryService {
	return &pantryService{
		pantryRepository:     pantryRepository,
		ingredientRepository: ingredientRepository,
		lang:                 lang,
	}
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.pantryRepository.GetPantryItems(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PantryItemResponse, 0, len(items))
	for i := range items {
		res = append(res, s.toResponse(&items[i]))
	}
	return res, nil
}

func (s *pantryService) GetPantryItem(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.CreatePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrIngredientNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	unit := strings.TrimSpace(req.Unit)
	existing, err := s.pantryRepository.FindPantryItem(ctx, userUUID, ingredientID, unit)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	if existing != nil {
		return domain.PantryItemResponse{}, domain.ErrPantryItemExists
	}

	item := &entities.PantryItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		IngredientID: ingredientID,
		Unit:         unit,
		Quantity:     req.Quantity,
		ExpiresAt:    utcPtr(req.ExpiresAt),
		Note:         req.Note,
	}
	if err := s.pantryRepository.CreatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	item.Ingredient = ing

	return s.toResponse(item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	if req.Unit != nil {
		unit := strings.TrimSpace(*req.Unit)
		if unit != item.Unit {
			existing, err := s.pantryRepository.FindPantryItem(ctx, item.UserID, item.IngredientID, unit)
			if err != nil {
				return domain.PantryItemResponse{}, err
			}
			if existing != nil {
				return domain.PantryItemResponse{}, domain.ErrPantryItemExists
			}
		}
		item.Unit = unit
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ExpiresAt != nil {
		item.ExpiresAt = utcPtr(req.ExpiresAt)
	}
	if req.Note != nil {
		item.Note = *req.Note
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.pantryRepository.DeletePantryItem(ctx, item.ID)
}

// ownedItem hides items of other users behind the not-found error.
func (s *pantryService) ownedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.pantryRepository.GetPantryItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrPantryItemNotFound
	}
	return item, nil
}

func (s *pantryService) toResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:             item.ID.String(),
		IngredientID:   item.IngredientID.String(),
		IngredientName: naming.IngredientName(item.Ingredient, s.lang),
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		ExpiresAt:      item.ExpiresAt,
		Note:           item.Note,
		CreatedAt:      item.CreatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
