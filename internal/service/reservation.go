package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationService handles table bookings
type ReservationService struct {
	store ReservationStore
}

// NewReservationService creates a new reservation service
func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

// ListReservations retrieves all reservations
func (s *ReservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.store.List(ctx)
}

// Upcoming returns the reservations scheduled at or after from, earliest
// first. Schedules are wall-clock values, so only the clock reading of from
// is compared. Records whose stored date or time no longer parses are left
// out.
func (s *ReservationService) Upcoming(ctx context.Context, from time.Time) ([]models.Reservation, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	cutoff := time.Date(from.Year(), from.Month(), from.Day(), from.Hour(), from.Minute(), 0, 0, time.UTC)

	type scheduled struct {
		at  time.Time
		res models.Reservation
	}
	var due []scheduled
	for _, res := range all {
		at, err := res.Schedule()
		if err != nil {
			logging.With("reservations").Warn().Err(err).Msg("skipping reservation")
			continue
		}
		if !at.Before(cutoff) {
			due = append(due, scheduled{at: at, res: res})
		}
	}

	slices.SortStableFunc(due, func(a, b scheduled) int {
		return a.at.Compare(b.at)
	})

	out := make([]models.Reservation, 0, len(due))
	for _, d := range due {
		out = append(out, d.res)
	}
	return out, nil
}

// GetReservation retrieves a reservation by ID
func (s *ReservationService) GetReservation(ctx context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	return s.store.GetByID(ctx, id)
}

// CreateReservation books a table
func (s *ReservationService) CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	res, err := buildReservation(req)
	if err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return created, nil
}

// UpdateReservation replaces every field of a reservation
func (s *ReservationService) UpdateReservation(ctx context.Context, id primitive.ObjectID, req models.ReservationRequest) (*models.Reservation, error) {
	res, err := buildReservation(req)
	if err != nil {
		return nil, err
	}
	res.ID = id

	if err := s.store.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	return &res, nil
}

// DeleteReservation deletes a reservation
func (s *ReservationService) DeleteReservation(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

// buildReservation validates req and serializes its date and time.
func buildReservation(req models.ReservationRequest) (models.Reservation, error) {
	if err := validate(req); err != nil {
		return models.Reservation{}, err
	}
	if req.Date.IsZero() {
		return models.Reservation{}, invalid("date", "date is required")
	}
	if req.Time.IsZero() {
		return models.Reservation{}, invalid("time", "time is required")
	}

	return models.Reservation{
		Name:      req.Name,
		Date:      models.FormatDate(req.Date.Time),
		Time:      models.FormatClock(req.Time.Time),
		PartySize: req.PartySize,
	}, nil
}
