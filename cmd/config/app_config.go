package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"pantry-planner/internal/api/handlers"
	"pantry-planner/internal/api/routes"
	"pantry-planner/internal/middleware"
	"pantry-planner/internal/utils"
	"pantry-planner/internal/utils/storage"
	"pantry-planner/pkg/jwt"
	"pantry-planner/pkg/mealplan"
	"pantry-planner/pkg/pantry"
	"pantry-planner/pkg/recipe"
	"pantry-planner/pkg/shopping"
	"pantry-planner/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	generator := recipe.NewGeminiGenerator()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository, userRepository, s3)
	shoppingService := shopping.NewShoppingService(shoppingRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, pantryRepository, generator)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		PantryHandler:   pantryHandler,
		ShoppingHandler: shoppingHandler,
		MealPlanHandler: mealPlanHandler,
		RecipeHandler:   recipeHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
