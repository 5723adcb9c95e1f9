package repository

import (
	"github.com/pizza-nz/backoffice-service/internal/db"
)

// Repositories provides access to all repository instances
type Repositories struct {
	Menu        *MenuRepository
	Reservation *ReservationRepository
	Order       *OrderRepository
	Staff       *StaffRepository
	User        *UserRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(database *db.Mongo) *Repositories {
	return &Repositories{
		Menu:        NewMenuRepository(database.DB, database.Timeout),
		Reservation: NewReservationRepository(database.DB, database.Timeout),
		Order:       NewOrderRepository(database.DB, database.Timeout),
		Staff:       NewStaffRepository(database.DB, database.Timeout),
		User:        NewUserRepository(database.DB, database.Timeout),
	}
}
