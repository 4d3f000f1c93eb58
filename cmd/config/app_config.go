package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"pantry-backend/internal/api/handlers"
	"pantry-backend/internal/api/routes"
	"pantry-backend/internal/middleware"
	"pantry-backend/internal/utils"
	"pantry-backend/pkg/foodlog"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/jwt"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/recipe"
	"pantry-backend/pkg/recommendation"
	"pantry-backend/pkg/shopping"
	"pantry-backend/pkg/spoonacular"
	"pantry-backend/pkg/translation"
	"pantry-backend/pkg/user"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg utils.Config, log *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName: "pantry-backend",
	})
	middlewares := middleware.NewMiddleware(cfg.CORSAllowOrigins)
	validator := utils.NewValidator()

	// access log, request ids and limiter
	accessLog, err := openAccessLog(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Hooks().OnShutdown(accessLog.Close)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     accessLog,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Second,
	}))

	// providers
	var cache spoonacular.ResponseCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		app.Hooks().OnShutdown(rdb.Close)
		cache = spoonacular.NewRedisCache(rdb, time.Duration(cfg.CacheTTLMinutes)*time.Minute, log)
	}
	provider := spoonacular.NewClient(spoonacular.Config{
		BaseURL: cfg.SpoonacularBaseURL,
		APIKey:  cfg.SpoonacularAPIKey,
	}, cache, log)
	translator := translation.NewDeepLTranslator(translation.DeepLConfig{
		URL:    cfg.DeepLAPIURL,
		APIKey: cfg.DeepLAPIKey,
	}, log)

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	foodLogRepository := foodlog.NewFoodLogRepository(db)
	translationRepository := translation.NewTranslationRepository(db)

	// Service
	lang := cfg.TargetLang
	jwtService := jwt.NewJWTService(cfg.JWTSecret, jwt.DefaultIssuer)
	queue := translation.NewQueue(translationRepository, translator, translation.QueueConfig{
		TargetLang: lang,
		BatchSize:  cfg.TranslationBatchSize,
	}, log)
	userService := user.NewUserService(userRepository, log)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, lang)
	recipeService := recipe.NewRecipeService(recipeRepository, pantryRepository, userRepository, lang)
	importService := recipe.NewImportService(provider, recipeRepository, ingredientRepository, queue, log)
	pantryService := pantry.NewPantryService(pantryRepository, ingredientRepository, lang)
	shoppingService := shopping.NewShoppingService(shoppingRepository, recipeRepository, pantryRepository, ingredientRepository, lang)
	recommendationService := recommendation.NewRecommendationService(pantryRepository, recipeRepository, lang)
	foodLogService := foodlog.NewFoodLogService(foodLogRepository, recipeRepository, ingredientRepository, lang)

	// Handler
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       handlers.NewUserHandler(userService),
		RecipeHandler:     handlers.NewRecipeHandler(recipeService, recommendationService, shoppingService, validator),
		PantryHandler:     handlers.NewPantryHandler(pantryService, validator),
		ShoppingHandler:   handlers.NewShoppingHandler(shoppingService, validator),
		IngredientHandler: handlers.NewIngredientHandler(ingredientService, validator),
		FoodLogHandler:    handlers.NewFoodLogHandler(foodLogService, validator),
		AdminHandler:      handlers.NewAdminHandler(importService, queue, validator),
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// openAccessLog appends request logs to access.log next to the service log.
func openAccessLog(logFile string) (io.WriteCloser, error) {
	dir := "./logs"
	if logFile != "" {
		dir = filepath.Dir(logFile)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "access.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}
