package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles user account data access
type UserRepository struct {
	c collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database, timeout time.Duration) *UserRepository {
	return &UserRepository{c: newCollection(db, CollectionUsers, timeout)}
}

// Create inserts a user. A username already taken fails with ErrDuplicateKey
// once the unique index migration has run.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = primitive.NilObjectID
	id, err := r.c.insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return findOne[models.User](ctx, r.c, bson.M{"username": username})
}

// List retrieves every user account
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.c)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, r.c, bson.M{"_id": id})
}

// Update replaces the username and password hash of an existing user
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	return r.c.updateByID(ctx, user.ID, bson.M{
		"username": user.Username,
		"password": user.PasswordHash,
	})
}

// Delete removes a user account
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.c.deleteByID(ctx, id)
}
