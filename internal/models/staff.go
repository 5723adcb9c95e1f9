package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Position is a staff job title
type Position string

const (
	PositionManager   Position = "Manager"
	PositionChef      Position = "Chef"
	PositionWaiter    Position = "Waiter"
	PositionCashier   Position = "Cashier"
	PositionCleaner   Position = "Cleaner"
	PositionHost      Position = "Host"
	PositionBartender Position = "Bartender"
)

var positions = []Position{
	PositionManager,
	PositionChef,
	PositionWaiter,
	PositionCashier,
	PositionCleaner,
	PositionHost,
	PositionBartender,
}

// Positions lists the accepted positions in display order.
func Positions() []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// Valid reports whether p is one of the accepted positions.
func (p Position) Valid() bool {
	for _, known := range positions {
		if p == known {
			return true
		}
	}
	return false
}

// StaffMember represents an employee
type StaffMember struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Position Position           `bson:"position" json:"position"`
	Contact  string             `bson:"contact" json:"contact"`
}

// StaffRequest is used for staff creation/update
type StaffRequest struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Position Position `json:"position" validate:"required,position"`
	Contact  string   `json:"contact" validate:"required,max=100"`
}
