package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation represents a table booking
type Reservation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	PartySize int                `bson:"party_size" json:"party_size"`
}

// Schedule parses the stored date and time back into a single value.
func (r Reservation) Schedule() (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+ClockLayout, r.Date+" "+r.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("reservation %s has malformed schedule: %w", r.ID.Hex(), err)
	}
	return t, nil
}

// ReservationRequest is used for reservation creation/update. Date and Time
// are structured values; the service serializes them before storage.
type ReservationRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Date      Date   `json:"date"`
	Time      Clock  `json:"time"`
	PartySize int    `json:"party_size" validate:"min=1"`
}
