package domain

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"
)

type (
	DashboardRecipeStats struct {
		Total     int64 `json:"total"`
		Draft     int64 `json:"draft"`
		Published int64 `json:"published"`
		Archived  int64 `json:"archived"`
	}

	DashboardInventoryStats struct {
		Total        int64 `json:"total"`
		Expired      int64 `json:"expired"`
		ExpiringSoon int64 `json:"expiring_soon"`
	}

	DashboardShoppingStats struct {
		Total     int64 `json:"total"`
		Active    int64 `json:"active"`
		Completed int64 `json:"completed"`
	}

	DashboardResponse struct {
		Recipes       DashboardRecipeStats          `json:"recipes"`
		Inventory     DashboardInventoryStats       `json:"inventory"`
		ShoppingLists DashboardShoppingStats        `json:"shopping_lists"`
		Categories    int64                         `json:"categories"`
		RecentRecipes []RecipeListItemResponse      `json:"recent_recipes"`
		ExpiringItems []InventoryItemResponse       `json:"expiring_items"`
		ActiveLists   []ShoppingListSummaryResponse `json:"active_lists"`
	}
)
