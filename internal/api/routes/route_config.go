package routes

import (
	"pantry-backend/domain"
	"pantry-backend/internal/api/handlers"
	"pantry-backend/internal/middleware"
	"pantry-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	PantryHandler     handlers.PantryHandler
	ShoppingHandler   handlers.ShoppingHandler
	IngredientHandler handlers.IngredientHandler
	FoodLogHandler    handlers.FoodLogHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()

	api := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	c.Profile(api)
	c.Recipes(api)
	c.Pantry(api)
	c.Ingredients(api)
	c.ShoppingList(api)
	c.FoodLog(api)
	c.Admin(api)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Profile(api fiber.Router) {
	profile := api.Group("/profile")
	{
		profile.Get("/", c.UserHandler.GetProfile)
		profile.Patch("/", c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Recipes(api fiber.Router) {
	recipes := api.Group("/recipes")
	{
		recipes.Get("/", c.RecipeHandler.GetRecipes)
		// registered before /:id so the literal path wins
		recipes.Get("/recommendations/expiring", c.RecipeHandler.GetExpiringRecommendations)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("/:id/shopping-list/add-missing", c.RecipeHandler.AddMissingToShoppingList)
		recipes.Post("/:id/shopping-list/add-ingredient", c.RecipeHandler.AddIngredientToShoppingList)
	}
}

func (c *Config) Pantry(api fiber.Router) {
	pantry := api.Group("/pantry")
	{
		pantry.Get("/", c.PantryHandler.GetPantryItems)
		pantry.Post("/", c.PantryHandler.AddPantryItem)
		pantry.Get("/:id", c.PantryHandler.GetPantryItem)
		pantry.Patch("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) Ingredients(api fiber.Router) {
	api.Get("/ingredients/search", c.IngredientHandler.SearchIngredients)
}

func (c *Config) ShoppingList(api fiber.Router) {
	shopping := api.Group("/shopping-list")
	{
		shopping.Get("/", c.ShoppingHandler.GetShoppingList)
		shopping.Post("/", c.ShoppingHandler.AddShoppingItem)
		shopping.Patch("/:id", c.ShoppingHandler.UpdateShoppingItem)
		shopping.Delete("/:id", c.ShoppingHandler.DeleteShoppingItem)
	}
}

func (c *Config) FoodLog(api fiber.Router) {
	log := api.Group("/log")
	{
		log.Post("/recipe", c.FoodLogHandler.LogRecipe)
		log.Post("/ingredient", c.FoodLogHandler.LogIngredient)
		log.Get("/daily-summary", c.FoodLogHandler.GetDailySummary)
		log.Delete("/:id", c.FoodLogHandler.DeleteFoodLog)
	}
}

func (c *Config) Admin(api fiber.Router) {
	admin := api.Group("/admin", c.Middleware.OnlyAllow(domain.RoleAdmin))
	{
		admin.Post("/spoonacular/import-recipe/:spoonacular_id", c.AdminHandler.ImportRecipe)
		admin.Post("/spoonacular/import-search", c.AdminHandler.ImportFromSearch)

		admin.Post("/translations/run", c.AdminHandler.RunTranslations)
		admin.Post("/translations/reset", c.AdminHandler.ResetTranslations)
		admin.Post("/translations/recover", c.AdminHandler.RecoverTranslations)
	}
}
