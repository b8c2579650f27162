package dashboard

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"Culinary-Assistant/pkg/category"
	"Culinary-Assistant/pkg/inventory"
	"Culinary-Assistant/pkg/recipe"
	"Culinary-Assistant/pkg/shoppinglist"
	"context"
)

// feedLimit caps each of the dashboard feeds (recent recipes, expiring
// items, active lists).
const feedLimit = 5

type (
	DashboardService interface {
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	dashboardService struct {
		recipeRepository    recipe.RecipeRepository
		categoryRepository  category.CategoryRepository
		inventoryService    inventory.InventoryService
		inventoryRepository inventory.InventoryRepository
		shoppingListService shoppinglist.ShoppingListService
		shoppingListRepo    shoppinglist.ShoppingListRepository
	}
)

func NewDashboardService(
	recipeRepository recipe.RecipeRepository,
	categoryRepository category.CategoryRepository,
	inventoryService inventory.InventoryService,
	inventoryRepository inventory.InventoryRepository,
	shoppingListService shoppinglist.ShoppingListService,
	shoppingListRepo shoppinglist.ShoppingListRepository,
) DashboardService {
	return &dashboardService{
		recipeRepository:    recipeRepository,
		categoryRepository:  categoryRepository,
		inventoryService:    inventoryService,
		inventoryRepository: inventoryRepository,
		shoppingListService: shoppingListService,
		shoppingListRepo:    shoppingListRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	recipes, err := s.recipeStats(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	expiringItems, err := s.inventoryService.GetExpiringSoonItems(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	expiredItems, err := s.inventoryService.GetExpiredItems(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	totalItems, err := s.inventoryRepository.CountItems(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	shopping, err := s.shoppingStats(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	categories, err := s.categoryRepository.CountCategories(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recentRecipes, err := s.recentRecipes(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	activeLists, err := s.shoppingListService.GetActiveLists(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	return domain.DashboardResponse{
		Recipes: recipes,
		Inventory: domain.DashboardInventoryStats{
			Total:        totalItems,
			Expired:      int64(len(expiredItems)),
			ExpiringSoon: int64(len(expiringItems)),
		},
		ShoppingLists: shopping,
		Categories:    categories,
		RecentRecipes: recentRecipes,
		ExpiringItems: capInventoryFeed(expiringItems),
		ActiveLists:   capListFeed(activeLists),
	}, nil
}

func capInventoryFeed(items []domain.InventoryItemResponse) []domain.InventoryItemResponse {
	if len(items) > feedLimit {
		return items[:feedLimit]
	}
	return items
}

func capListFeed(lists []domain.ShoppingListSummaryResponse) []domain.ShoppingListSummaryResponse {
	if len(lists) > feedLimit {
		return lists[:feedLimit]
	}
	return lists
}

func (s *dashboardService) recipeStats(ctx context.Context) (domain.DashboardRecipeStats, error) {
	total, err := s.recipeRepository.CountRecipes(ctx)
	if err != nil {
		return domain.DashboardRecipeStats{}, err
	}

	stats := domain.DashboardRecipeStats{Total: total}
	for _, status := range []entities.RecipeStatus{entities.StatusDraft, entities.StatusPublished, entities.StatusArchived} {
		count, err := s.recipeRepository.CountByStatus(ctx, status)
		if err != nil {
			return domain.DashboardRecipeStats{}, err
		}
		switch status {
		case entities.StatusDraft:
			stats.Draft = count
		case entities.StatusPublished:
			stats.Published = count
		case entities.StatusArchived:
			stats.Archived = count
		}
	}
	return stats, nil
}

func (s *dashboardService) shoppingStats(ctx context.Context) (domain.DashboardShoppingStats, error) {
	total, err := s.shoppingListRepo.CountLists(ctx)
	if err != nil {
		return domain.DashboardShoppingStats{}, err
	}
	active, err := s.shoppingListRepo.CountListsByCompletion(ctx, false)
	if err != nil {
		return domain.DashboardShoppingStats{}, err
	}
	completed, err := s.shoppingListRepo.CountListsByCompletion(ctx, true)
	if err != nil {
		return domain.DashboardShoppingStats{}, err
	}
	return domain.DashboardShoppingStats{
		Total:     total,
		Active:    active,
		Completed: completed,
	}, nil
}

func (s *dashboardService) recentRecipes(ctx context.Context) ([]domain.RecipeListItemResponse, error) {
	recipes, err := s.recipeRepository.GetRecentRecipes(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeListItemResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, domain.RecipeListItemResponse{
			ID:                 r.ID,
			Code:               r.Code,
			Name:               r.Name,
			Cuisine:            r.Cuisine,
			DishType:           string(r.DishType),
			Status:             string(r.Status),
			CookingTimeMinutes: r.CookingTimeMinutes,
			IngredientsCount:   len(r.Ingredients),
		})
	}
	return response, nil
}
