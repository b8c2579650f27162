package shoppinglist

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"Culinary-Assistant/pkg/database"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		CreateList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.ShoppingListResponse, error)
		UpdateList(ctx context.Context, id uint, req domain.UpdateShoppingListRequest) (domain.ShoppingListResponse, error)
		DeleteList(ctx context.Context, id uint) error
		GetLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error)
		GetActiveLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error)
		GetCompletedLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error)
		GetListByID(ctx context.Context, id uint) (domain.ShoppingListResponse, error)
		AddItem(ctx context.Context, listID uint, req domain.AddShoppingItemRequest) (domain.ShoppingListResponse, error)
		UpdateItem(ctx context.Context, listID, itemID uint, req domain.UpdateShoppingItemRequest) (domain.ShoppingListResponse, error)
		RemoveItem(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error)
		MarkItemPurchased(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error)
		MarkItemNotPurchased(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error)
		CompleteList(ctx context.Context, id uint) (domain.ShoppingListResponse, error)
		ReopenList(ctx context.Context, id uint) (domain.ShoppingListResponse, error)
		ClearPurchasedItems(ctx context.Context, id uint) (domain.ShoppingListResponse, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		uow                    database.UnitOfWork
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository, uow database.UnitOfWork) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		uow:                    uow,
	}
}

func (s *shoppingListService) CreateList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.ShoppingListResponse, error) {
	list, err := entities.NewShoppingList(req.Name, req.Description)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if err := s.shoppingListRepository.CreateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) UpdateList(ctx context.Context, id uint, req domain.UpdateShoppingListRequest) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if err := list.SetName(req.Name); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	list.SetDescription(req.Description)

	if err := s.shoppingListRepository.UpdateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) DeleteList(ctx context.Context, id uint) error {
	if _, err := s.getList(ctx, id); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.shoppingListRepository.WithTx(tx).DeleteList(ctx, id)
	})
}

func (s *shoppingListService) GetLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error) {
	lists, err := s.shoppingListRepository.GetLists(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaries(lists), nil
}

func (s *shoppingListService) GetActiveLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error) {
	lists, err := s.shoppingListRepository.GetListsByCompletion(ctx, false)
	if err != nil {
		return nil, err
	}
	return toSummaries(lists), nil
}

func (s *shoppingListService) GetCompletedLists(ctx context.Context) ([]domain.ShoppingListSummaryResponse, error) {
	lists, err := s.shoppingListRepository.GetListsByCompletion(ctx, true)
	if err != nil {
		return nil, err
	}
	return toSummaries(lists), nil
}

func (s *shoppingListService) GetListByID(ctx context.Context, id uint) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) AddItem(ctx context.Context, listID uint, req domain.AddShoppingItemRequest) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	price, err := parsePrice(req.EstimatedPrice)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if _, err := list.AddItem(req.Name, req.Quantity, entities.MeasurementUnit(req.Unit), price, req.PreferredStore, req.Notes); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if err := s.saveItems(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) UpdateItem(ctx context.Context, listID, itemID uint, req domain.UpdateShoppingItemRequest) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	item := list.FindItem(itemID)
	if item == nil {
		return domain.ShoppingListResponse{}, domain.ErrShoppingItemNotFound
	}

	if req.Quantity > 0 {
		if err := item.SetQuantity(req.Quantity); err != nil {
			return domain.ShoppingListResponse{}, err
		}
	}
	if req.EstimatedPrice != "" {
		price, err := parsePrice(req.EstimatedPrice)
		if err != nil {
			return domain.ShoppingListResponse{}, err
		}
		if err := item.SetEstimatedPrice(price); err != nil {
			return domain.ShoppingListResponse{}, err
		}
	}
	if req.PreferredStore != "" {
		item.SetPreferredStore(req.PreferredStore)
	}
	if req.Notes != "" {
		item.SetNotes(req.Notes)
	}

	if err := s.saveItems(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) RemoveItem(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if err := list.RemoveItem(itemID); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	if err := s.saveItems(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) MarkItemPurchased(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error) {
	return s.togglePurchased(ctx, listID, itemID, true)
}

func (s *shoppingListService) MarkItemNotPurchased(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error) {
	return s.togglePurchased(ctx, listID, itemID, false)
}

func (s *shoppingListService) togglePurchased(ctx context.Context, listID, itemID uint, purchased bool) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, listID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	item := list.FindItem(itemID)
	if item == nil {
		return domain.ShoppingListResponse{}, domain.ErrShoppingItemNotFound
	}

	if purchased {
		item.MarkAsPurchased()
	} else {
		item.MarkAsNotPurchased()
	}

	if err := s.saveItems(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) CompleteList(ctx context.Context, id uint) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.MarkAsCompleted()

	if err := s.shoppingListRepository.UpdateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) ReopenList(ctx context.Context, id uint) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Reopen()

	if err := s.shoppingListRepository.UpdateList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) ClearPurchasedItems(ctx context.Context, id uint) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.ClearPurchasedItems()

	if err := s.saveItems(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toListResponse(list), nil
}

func (s *shoppingListService) getList(ctx context.Context, id uint) (*entities.ShoppingList, error) {
	list, err := s.shoppingListRepository.GetListByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *shoppingListService) saveItems(ctx context.Context, list *entities.ShoppingList) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.shoppingListRepository.WithTx(tx).ReplaceItems(ctx, list)
	})
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("estimated price %q is not a valid amount: %w", raw, domain.ErrValidation)
	}
	return &price, nil
}

func toItemResponse(item *entities.ShoppingItem) domain.ShoppingItemResponse {
	return domain.ShoppingItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           string(item.Unit),
		IsPurchased:    item.IsPurchased,
		PurchasedAt:    item.PurchasedAt,
		EstimatedPrice: item.EstimatedPrice,
		PreferredStore: item.PreferredStore,
		Notes:          item.Notes,
	}
}

func toListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	items := make([]domain.ShoppingItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, toItemResponse(item))
	}
	return domain.ShoppingListResponse{
		ID:                   list.ID,
		Name:                 list.Name,
		Description:          list.Description,
		IsCompleted:          list.IsCompleted,
		CompletedAt:          list.CompletedAt,
		TotalItems:           list.TotalItems(),
		PurchasedItems:       list.PurchasedItems(),
		TotalEstimatedPrice:  list.TotalEstimatedPrice(),
		CompletionPercentage: list.CompletionPercentage(),
		CreatedAt:            list.CreatedAt,
		Items:                items,
	}
}

func toSummaries(lists []*entities.ShoppingList) []domain.ShoppingListSummaryResponse {
	response := make([]domain.ShoppingListSummaryResponse, 0, len(lists))
	for _, list := range lists {
		response = append(response, domain.ShoppingListSummaryResponse{
			ID:                   list.ID,
			Name:                 list.Name,
			IsCompleted:          list.IsCompleted,
			CompletedAt:          list.CompletedAt,
			TotalItems:           list.TotalItems(),
			PurchasedItems:       list.PurchasedItems(),
			CompletionPercentage: list.CompletionPercentage(),
			CreatedAt:            list.CreatedAt,
		})
	}
	return response
}
