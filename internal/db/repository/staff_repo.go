package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository handles staff data access
type StaffRepository struct {
	c collection
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *mongo.Database, timeout time.Duration) *StaffRepository {
	return &StaffRepository{c: newCollection(db, CollectionStaff, timeout)}
}

// Create inserts a staff member
func (r *StaffRepository) Create(ctx context.Context, member models.StaffMember) (*models.StaffMember, error) {
	member.ID = primitive.NilObjectID
	id, err := r.c.insert(ctx, member)
	if err != nil {
		return nil, err
	}
	member.ID = id
	return &member, nil
}

// List retrieves all staff members
func (r *StaffRepository) List(ctx context.Context) ([]models.StaffMember, error) {
	return findAll[models.StaffMember](ctx, r.c)
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.StaffMember, error) {
	return findOne[models.StaffMember](ctx, r.c, bson.M{"_id": id})
}

// Update replaces the name, position and contact of a staff member
func (r *StaffRepository) Update(ctx context.Context, member models.StaffMember) error {
	return r.c.updateByID(ctx, member.ID, bson.M{
		"name":     member.Name,
		"position": member.Position,
		"contact":  member.Contact,
	})
}

// Delete deletes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.c.deleteByID(ctx, id)
}

// Count returns the number of staff members
func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	return r.c.count(ctx)
}
