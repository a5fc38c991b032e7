package routes

import (
	"github.com/gofiber/fiber/v2"

	"pantry-planner/internal/api/handlers"
	"pantry-planner/internal/middleware"
	"pantry-planner/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	PantryHandler   handlers.PantryHandler
	ShoppingHandler handlers.ShoppingHandler
	MealPlanHandler handlers.MealPlanHandler
	RecipeHandler   handlers.RecipeHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.PantryItems()
	c.ShoppingList()
	c.MealPlans()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) PantryItems() {
	pantryItems := c.App.Group("/api/v1/pantry-items", c.Middleware.AuthMiddleware(c.JWTService))

	pantryItems.Get("/stats", c.PantryHandler.GetPantryStats)
	pantryItems.Post("/digest", c.PantryHandler.SendExpiryDigest)
	pantryItems.Post("/photo", c.PantryHandler.UploadItemPhoto)

	pantryItems.Post("", c.PantryHandler.AddPantryItem)
	pantryItems.Get("", c.PantryHandler.GetPantryItems)
	pantryItems.Get("/:id", c.PantryHandler.GetPantryItemByID)
	pantryItems.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantryItems.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))

	shoppingList.Delete("/checked", c.ShoppingHandler.ClearCheckedItems)

	shoppingList.Post("", c.ShoppingHandler.AddShoppingItem)
	shoppingList.Get("", c.ShoppingHandler.GetShoppingList)
	shoppingList.Patch("/:id/toggle", c.ShoppingHandler.ToggleShoppingItem)
	shoppingList.Delete("/:id", c.ShoppingHandler.DeleteShoppingItem)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	mealPlans.Post("", c.MealPlanHandler.ScheduleMeal)
	mealPlans.Get("", c.MealPlanHandler.GetWeekMealPlans)
	mealPlans.Post("/log", c.MealPlanHandler.LogMeal)
	mealPlans.Put("/:id", c.MealPlanHandler.EditMealPlan)
	mealPlans.Post("/:id/complete", c.MealPlanHandler.CompleteMeal)
	mealPlans.Post("/:id/revert", c.MealPlanHandler.RevertMeal)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Get("/bookmarks", c.RecipeHandler.GetBookmarkedRecipes)

	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Get("/:id/availability", c.RecipeHandler.CheckAvailability)
	recipes.Post("/:id/bookmark", c.RecipeHandler.BookmarkRecipe)
	recipes.Delete("/:id/bookmark", c.RecipeHandler.RemoveBookmark)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
