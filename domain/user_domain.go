package domain

var (
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrUserNotFound = notFound("user not found")

	ValidDietTypes = []string{"omnivore", "vegetarian", "vegan", "pescatarian", "keto", "paleo"}

	ValidIntolerances = []string{"gluten", "dairy", "egg", "nut", "soy", "shellfish", "fish", "wheat", "sesame"}
)

type (
	UpdateProfileRequest struct {
		DietType     *string  `json:"diet_type"`
		Intolerances []string `json:"intolerances"`
		Name         *string  `json:"name"`
	}

	ProfileResponse struct {
		ID           string   `json:"id"`
		Email        string   `json:"email"`
		Name         string   `json:"name"`
		DietType     *string  `json:"diet_type"`
		Intolerances []string `json:"intolerances"`
	}
)
