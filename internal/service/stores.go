package service

import (
	"context"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counter is satisfied by every record store.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// MenuStore persists menu items
type MenuStore interface {
	Counter
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	Update(ctx context.Context, item models.MenuItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReservationStore persists reservations
type ReservationStore interface {
	Counter
	Create(ctx context.Context, res models.Reservation) (*models.Reservation, error)
	List(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error)
	Update(ctx context.Context, res models.Reservation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderStore persists orders
type OrderStore interface {
	Counter
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Update(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// StaffStore persists staff members
type StaffStore interface {
	Counter
	Create(ctx context.Context, member models.StaffMember) (*models.StaffMember, error)
	List(ctx context.Context) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.StaffMember, error)
	Update(ctx context.Context, member models.StaffMember) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
