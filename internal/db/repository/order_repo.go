package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository handles order data access. Items are embedded in the
// order document, so every write is a single-document write.
type OrderRepository struct {
	c collection
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database, timeout time.Duration) *OrderRepository {
	return &OrderRepository{c: newCollection(db, CollectionOrders, timeout)}
}

// Create inserts an order with its items
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.ID = primitive.NilObjectID
	id, err := r.c.insert(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id
	return &order, nil
}

// List retrieves all orders
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	return findAll[models.Order](ctx, r.c)
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return findOne[models.Order](ctx, r.c, bson.M{"_id": id})
}

// Update replaces the customer, date and item list of an order
func (r *OrderRepository) Update(ctx context.Context, order models.Order) error {
	return r.c.updateByID(ctx, order.ID, bson.M{
		"customer_name": order.CustomerName,
		"date":          order.Date,
		"items":         order.Items,
	})
}

// Delete deletes an order
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.c.deleteByID(ctx, id)
}

// Count returns the number of orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	return r.c.count(ctx)
}
