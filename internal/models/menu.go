package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a dish or drink on the menu
type MenuItem struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
}

// DisplayPrice formats the price the way the menu shows it
func (m MenuItem) DisplayPrice() string {
	return fmt.Sprintf("%.2f", m.Price)
}

// MenuItemRequest is used for menu item creation/update
type MenuItemRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
}
