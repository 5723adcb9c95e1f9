package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a customer order
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Date         string             `bson:"date" json:"date"`
	Items        []OrderItem        `bson:"items" json:"items"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	Name     string `bson:"name" json:"name"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// FormatItems renders items in the "name: quantity, name: quantity" form
// accepted by the order item parser.
func FormatItems(items []OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Name+": "+strconv.Itoa(item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// OrderRequest is used for order creation/update. Items is the raw
// comma-separated item list.
type OrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	Date         Date   `json:"date"`
	Items        string `json:"items" validate:"required"`
}
