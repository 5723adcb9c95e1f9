package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService handles order-related business logic
type OrderService struct {
	store OrderStore
}

// NewOrderService creates a new order service
func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{
		store: store,
	}
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.store.GetByID(ctx, id)
}

// ListOrders lists all orders
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.List(ctx)
}

// CreateOrder parses the item list and stores a new order
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	order, err := buildOrder(req)
	if err != nil {
		return nil, err
	}

	createdOrder, err := s.store.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return createdOrder, nil
}

// UpdateOrder re-parses the item list and replaces the order
func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, req models.OrderRequest) (*models.Order, error) {
	order, err := buildOrder(req)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if err := s.store.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &order, nil
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func buildOrder(req models.OrderRequest) (models.Order, error) {
	if err := validate(req); err != nil {
		return models.Order{}, err
	}
	if req.Date.IsZero() {
		return models.Order{}, invalid("date", "date is required")
	}
	if strings.TrimSpace(req.Items) == "" {
		return models.Order{}, invalid("items", "items is required")
	}

	items, err := ParseItems(req.Items)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		CustomerName: req.CustomerName,
		Date:         models.FormatDate(req.Date.Time),
		Items:        items,
	}, nil
}
