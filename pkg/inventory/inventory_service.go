package inventory

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"Culinary-Assistant/internal/utils/mailing"
	"Culinary-Assistant/pkg/database"
	"context"
	"fmt"
	"strings"
	"time"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, id uint) error
		GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error)
		GetItemByID(ctx context.Context, id uint) (domain.InventoryItemResponse, error)
		SearchItems(ctx context.Context, term string) ([]domain.InventoryItemResponse, error)
		GetItemsByStorageLocation(ctx context.Context, location string) ([]domain.InventoryItemResponse, error)
		GetExpiredItems(ctx context.Context) ([]domain.InventoryItemResponse, error)
		GetExpiringSoonItems(ctx context.Context) ([]domain.InventoryItemResponse, error)
		UseItem(ctx context.Context, id uint, req domain.StockAmountRequest) (domain.InventoryItemResponse, error)
		ReplenishItem(ctx context.Context, id uint, req domain.StockAmountRequest) (domain.InventoryItemResponse, error)
		SendExpiryDigest(ctx context.Context, req domain.SendExpiryDigestRequest) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest) (domain.InventoryItemResponse, error) {
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrInvalidExpirationDate
	}

	item, err := entities.NewInventoryItem(
		req.Name,
		req.Quantity,
		entities.MeasurementUnit(req.Unit),
		expirationDate,
		req.StorageLocation,
	)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := s.inventoryRepository.CreateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uint, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrInvalidExpirationDate
	}

	if err := item.SetName(req.Name); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	if err := item.SetQuantity(req.Quantity); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	item.SetUnit(entities.MeasurementUnit(req.Unit))
	item.SetExpirationDate(expirationDate)
	item.SetStorageLocation(req.StorageLocation)

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uint) error {
	if _, err := s.getItem(ctx, id); err != nil {
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id uint) (domain.InventoryItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *inventoryService) SearchItems(ctx context.Context, term string) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.SearchItemsByName(ctx, term)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *inventoryService) GetItemsByStorageLocation(ctx context.Context, location string) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.GetItemsByStorageLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *inventoryService) GetExpiredItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	candidates, err := s.inventoryRepository.GetItemsExpiringBefore(ctx, entities.Today())
	if err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(candidates))
	for _, item := range candidates {
		if item.IsExpired() {
			response = append(response, toItemResponse(item))
		}
	}
	return response, nil
}

func (s *inventoryService) GetExpiringSoonItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	bound := entities.Today().AddDate(0, 0, entities.ExpiringSoonDays)
	candidates, err := s.inventoryRepository.GetItemsExpiringBefore(ctx, bound)
	if err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(candidates))
	for _, item := range candidates {
		if item.IsExpiringSoon() {
			response = append(response, toItemResponse(item))
		}
	}
	return response, nil
}

func (s *inventoryService) UseItem(ctx context.Context, id uint, req domain.StockAmountRequest) (domain.InventoryItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := item.Use(req.Amount); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *inventoryService) ReplenishItem(ctx context.Context, id uint, req domain.StockAmountRequest) (domain.InventoryItemResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := item.Replenish(req.Amount); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// SendExpiryDigest emails a summary of expired and soon-to-expire items. With
// nothing to report, no mail goes out.
func (s *inventoryService) SendExpiryDigest(ctx context.Context, req domain.SendExpiryDigestRequest) error {
	bound := entities.Today().AddDate(0, 0, entities.ExpiringSoonDays)
	candidates, err := s.inventoryRepository.GetItemsExpiringBefore(ctx, bound)
	if err != nil {
		return err
	}

	var expired, expiring []*entities.InventoryItem
	for _, item := range candidates {
		switch {
		case item.IsExpired():
			expired = append(expired, item)
		case item.IsExpiringSoon():
			expiring = append(expiring, item)
		}
	}

	if len(expired) == 0 && len(expiring) == 0 {
		return nil
	}

	return mailing.SendMail(req.Email, "Inventory expiry digest", buildDigestBody(expired, expiring))
}

func buildDigestBody(expired, expiring []*entities.InventoryItem) string {
	var b strings.Builder
	b.WriteString("<h2>Inventory expiry digest</h2>")

	if len(expired) > 0 {
		b.WriteString("<h3>Expired</h3><ul>")
		for _, item := range expired {
			fmt.Fprintf(&b, "<li>%s (%g %s), expired on %s</li>",
				item.Name, item.Quantity, item.Unit, item.ExpirationDate.Format("2006-01-02"))
		}
		b.WriteString("</ul>")
	}

	if len(expiring) > 0 {
		b.WriteString("<h3>Expiring soon</h3><ul>")
		for _, item := range expiring {
			fmt.Fprintf(&b, "<li>%s (%g %s), expires on %s (%d day(s) left)</li>",
				item.Name, item.Quantity, item.Unit, item.ExpirationDate.Format("2006-01-02"), item.DaysUntilExpiration())
		}
		b.WriteString("</ul>")
	}

	return b.String()
}

func (s *inventoryService) getItem(ctx context.Context, id uint) (*entities.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func toItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:                  item.ID,
		Name:                item.Name,
		Quantity:            item.Quantity,
		Unit:                string(item.Unit),
		ExpirationDate:      item.ExpirationDate,
		StorageLocation:     item.StorageLocation,
		IsExpired:           item.IsExpired(),
		IsExpiringSoon:      item.IsExpiringSoon(),
		DaysUntilExpiration: item.DaysUntilExpiration(),
		CreatedAt:           item.CreatedAt,
	}
}

func toItemResponses(items []*entities.InventoryItem) []domain.InventoryItemResponse {
	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response
}
