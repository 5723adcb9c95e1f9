package service

import (
	"context"
	"fmt"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StaffService handles staff records
type StaffService struct {
	store StaffStore
}

// NewStaffService creates a new staff service
func NewStaffService(store StaffStore) *StaffService {
	return &StaffService{store: store}
}

// ListStaff retrieves all staff members
func (s *StaffService) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	return s.store.List(ctx)
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id primitive.ObjectID) (*models.StaffMember, error) {
	return s.store.GetByID(ctx, id)
}

// CreateStaff adds a staff member
func (s *StaffService) CreateStaff(ctx context.Context, req models.StaffRequest) (*models.StaffMember, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	member, err := s.store.Create(ctx, models.StaffMember{
		Name:     req.Name,
		Position: req.Position,
		Contact:  req.Contact,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return member, nil
}

// UpdateStaff replaces the name, position and contact of a staff member
func (s *StaffService) UpdateStaff(ctx context.Context, id primitive.ObjectID, req models.StaffRequest) (*models.StaffMember, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	member := models.StaffMember{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
		Contact:  req.Contact,
	}
	if err := s.store.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	return &member, nil
}

// DeleteStaff deletes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}
