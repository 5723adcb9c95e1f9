package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository handles menu data access
type MenuRepository struct {
	c collection
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *mongo.Database, timeout time.Duration) *MenuRepository {
	return &MenuRepository{c: newCollection(db, CollectionMenu, timeout)}
}

// Create inserts a menu item and returns it with its generated ID
func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	item.ID = primitive.NilObjectID
	id, err := r.c.insert(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return &item, nil
}

// List retrieves all menu items
func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	return findAll[models.MenuItem](ctx, r.c)
}

// GetByID retrieves a menu item by ID
func (r *MenuRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	return findOne[models.MenuItem](ctx, r.c, bson.M{"_id": id})
}

// Update replaces the name and price of a menu item
func (r *MenuRepository) Update(ctx context.Context, item models.MenuItem) error {
	return r.c.updateByID(ctx, item.ID, bson.M{
		"name":  item.Name,
		"price": item.Price,
	})
}

// Delete deletes a menu item
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.c.deleteByID(ctx, id)
}

// Count returns the number of menu items
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	return r.c.count(ctx)
}
