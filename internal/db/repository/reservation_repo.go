package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	c collection
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *mongo.Database, timeout time.Duration) *ReservationRepository {
	return &ReservationRepository{c: newCollection(db, CollectionReservations, timeout)}
}

// Create inserts a reservation and returns it with its generated ID
func (r *ReservationRepository) Create(ctx context.Context, res models.Reservation) (*models.Reservation, error) {
	res.ID = primitive.NilObjectID
	id, err := r.c.insert(ctx, res)
	if err != nil {
		return nil, err
	}
	res.ID = id
	return &res, nil
}

// List retrieves all reservations
func (r *ReservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	return findAll[models.Reservation](ctx, r.c)
}

// GetByID retrieves a reservation by ID
func (r *ReservationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return findOne[models.Reservation](ctx, r.c, bson.M{"_id": id})
}

// Update replaces every field of a reservation
func (r *ReservationRepository) Update(ctx context.Context, res models.Reservation) error {
	return r.c.updateByID(ctx, res.ID, bson.M{
		"name":       res.Name,
		"date":       res.Date,
		"time":       res.Time,
		"party_size": res.PartySize,
	})
}

// Delete deletes a reservation
func (r *ReservationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.c.deleteByID(ctx, id)
}

// Count returns the number of reservations
func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	return r.c.count(ctx)
}
