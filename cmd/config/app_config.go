package config

import (
	"Culinary-Assistant/internal/api/handlers"
	"Culinary-Assistant/internal/api/routes"
	"Culinary-Assistant/internal/middleware"
	"Culinary-Assistant/internal/utils"
	"Culinary-Assistant/internal/utils/storage"
	"Culinary-Assistant/pkg/category"
	"Culinary-Assistant/pkg/dashboard"
	"Culinary-Assistant/pkg/database"
	"Culinary-Assistant/pkg/inventory"
	"Culinary-Assistant/pkg/recipe"
	"Culinary-Assistant/pkg/shoppinglist"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
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
	uow := database.NewUnitOfWork(db)

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, uow, s3)
	categoryService := category.NewCategoryService(categoryRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, uow)
	dashboardService := dashboard.NewDashboardService(
		recipeRepository,
		categoryRepository,
		inventoryService,
		inventoryRepository,
		shoppingListService,
		shoppingListRepository,
	)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		RecipeHandler:       recipeHandler,
		InventoryHandler:    inventoryHandler,
		ShoppingListHandler: shoppingListHandler,
		CategoryHandler:     categoryHandler,
		DashboardHandler:    dashboardHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
