package user

import (
	"context"
	"errors"
	"slices"
	"strings"

	"pantry-backend/domain"
	"pantry-backend/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	UserService interface {
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		logger         *zap.Logger
	}
)

func NewUserService(userRepository UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfile(user), nil
}

// UpdateProfile changes only the fields present in req. An empty diet type
// clears the diet. Values outside the known lists are kept and logged.
func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	if req.DietType != nil {
		diet := strings.ToLower(strings.TrimSpace(*req.DietType))
		if diet == "" {
			user.DietType = nil
		} else {
			if !slices.Contains(domain.ValidDietTypes, diet) {
				s.logger.Warn("unknown diet type", zap.String("user_id", userID), zap.String("diet_type", diet))
			}
			user.DietType = &diet
		}
	}

	if req.Intolerances != nil {
		intolerances := make([]string, 0, len(req.Intolerances))
		for _, i := range req.Intolerances {
			i = strings.ToLower(strings.TrimSpace(i))
			if i == "" || slices.Contains(intolerances, i) {
				continue
			}
			if !slices.Contains(domain.ValidIntolerances, i) {
				s.logger.Warn("unknown intolerance", zap.String("user_id", userID), zap.String("intolerance", i))
			}
			intolerances = append(intolerances, i)
		}
		user.Intolerances = intolerances
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.ProfileResponse{}, err
	}
	return toProfile(user), nil
}

func (s *userService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toProfile(user *entities.User) domain.ProfileResponse {
	intolerances := []string(user.Intolerances)
	if intolerances == nil {
		intolerances = []string{}
	}
	return domain.ProfileResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		DietType:     user.DietType,
		Intolerances: intolerances,
	}
}
