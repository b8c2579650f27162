package routes

import (
	"Culinary-Assistant/internal/api/handlers"
	"Culinary-Assistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	RecipeHandler       handlers.RecipeHandler
	InventoryHandler    handlers.InventoryHandler
	ShoppingListHandler handlers.ShoppingListHandler
	CategoryHandler     handlers.CategoryHandler
	DashboardHandler    handlers.DashboardHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Inventory()
	c.ShoppingLists()
	c.Categories()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("/cuisines", c.RecipeHandler.GetCuisines)
	recipes.Get("/code/:code", c.RecipeHandler.GetRecipeByCode)

	// Basic CRUD operations
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	// Workflow transitions
	recipes.Post("/:id/publish", c.RecipeHandler.PublishRecipe)
	recipes.Post("/:id/archive", c.RecipeHandler.ArchiveRecipe)
	recipes.Post("/:id/restore", c.RecipeHandler.RestoreRecipe)
	recipes.Post("/:id/draft", c.RecipeHandler.ReturnRecipeToDraft)

	// Ingredients
	recipes.Post("/:id/ingredients", c.RecipeHandler.AddIngredient)
	recipes.Delete("/:id/ingredients/:ingredient_id", c.RecipeHandler.RemoveIngredient)
	recipes.Delete("/:id/ingredients", c.RecipeHandler.ClearIngredients)

	// Category tagging
	recipes.Post("/:id/categories/:category_id", c.RecipeHandler.AddCategoryToRecipe)
	recipes.Delete("/:id/categories/:category_id", c.RecipeHandler.RemoveCategoryFromRecipe)

	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory")

	inventory.Get("/expired", c.InventoryHandler.GetExpiredItems)
	inventory.Get("/expiring-soon", c.InventoryHandler.GetExpiringSoonItems)
	inventory.Post("/expiry-digest", c.InventoryHandler.SendExpiryDigest)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)

	// Stock operations
	inventory.Post("/:id/use", c.InventoryHandler.UseItem)
	inventory.Post("/:id/replenish", c.InventoryHandler.ReplenishItem)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists")

	// Basic CRUD operations
	lists.Post("", c.ShoppingListHandler.CreateList)
	lists.Get("", c.ShoppingListHandler.GetLists)
	lists.Get("/:id", c.ShoppingListHandler.GetListDetails)
	lists.Put("/:id", c.ShoppingListHandler.UpdateList)
	lists.Delete("/:id", c.ShoppingListHandler.DeleteList)

	// Completion workflow
	lists.Post("/:id/complete", c.ShoppingListHandler.CompleteList)
	lists.Post("/:id/reopen", c.ShoppingListHandler.ReopenList)
	lists.Post("/:id/clear-purchased", c.ShoppingListHandler.ClearPurchasedItems)

	// Items
	lists.Post("/:id/items", c.ShoppingListHandler.AddItem)
	lists.Put("/:id/items/:item_id", c.ShoppingListHandler.UpdateItem)
	lists.Delete("/:id/items/:item_id", c.ShoppingListHandler.RemoveItem)
	lists.Post("/:id/items/:item_id/purchase", c.ShoppingListHandler.MarkItemPurchased)
	lists.Post("/:id/items/:item_id/unpurchase", c.ShoppingListHandler.MarkItemNotPurchased)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")

	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategoryDetails)
	categories.Put("/:id", c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)

	categories.Get("/:category_id/recipes", c.RecipeHandler.GetRecipesByCategory)
}

func (c *Config) Dashboard() {
	c.App.Get("/api/v1/dashboard", c.DashboardHandler.GetDashboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
