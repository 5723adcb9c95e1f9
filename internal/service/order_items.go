package service

import (
	"strconv"
	"strings"

	"github.com/pizza-nz/backoffice-service/internal/models"
)

// ParseItems parses a comma-separated list of "name: quantity" pairs.
// Each segment is split on its first colon and both sides are trimmed.
// Any bad segment fails the whole list.
func ParseItems(text string) ([]models.OrderItem, error) {
	segments := strings.Split(text, ",")
	items := make([]models.OrderItem, 0, len(segments))

	for _, segment := range segments {
		name, qty, ok := strings.Cut(segment, ":")
		if !ok {
			return nil, &MalformedItemsError{Segment: segment, Reason: `expected "name: quantity"`}
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &MalformedItemsError{Segment: segment, Reason: "item name is empty"}
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, &MalformedItemsError{Segment: segment, Reason: "quantity is not an integer"}
		}
		if quantity < 1 {
			return nil, &MalformedItemsError{Segment: segment, Reason: "quantity must be at least 1"}
		}

		items = append(items, models.OrderItem{Name: name, Quantity: quantity})
	}

	return items, nil
}
