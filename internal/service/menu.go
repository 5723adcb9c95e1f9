// internal/service/menu.go
package service

import (
	"context"
	"fmt"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuService handles menu-related business logic
type MenuService struct {
	store MenuStore
}

// NewMenuService creates a new menu service
func NewMenuService(store MenuStore) *MenuService {
	return &MenuService{
		store: store,
	}
}

// ListItems retrieves all menu items
func (s *MenuService) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.List(ctx)
}

// GetItem retrieves a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	return s.store.GetByID(ctx, id)
}

// CreateItem creates a new menu item. A price of zero is a valid price.
func (s *MenuService) CreateItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	item, err := s.store.Create(ctx, models.MenuItem{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces the name and price of a menu item
func (s *MenuService) UpdateItem(ctx context.Context, id primitive.ObjectID, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	item := models.MenuItem{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.store.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return &item, nil
}

// DeleteItem deletes a menu item
func (s *MenuService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
