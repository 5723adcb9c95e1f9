package service

import (
	"testing"

	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.OrderItem
	}{
		{"two items", "Coffee: 2, Toast: 1", []models.OrderItem{{Name: "Coffee", Quantity: 2}, {Name: "Toast", Quantity: 1}}},
		{"no spaces", "Coffee:2", []models.OrderItem{{Name: "Coffee", Quantity: 2}}},
		{"padded", "  Flat White :  3 ", []models.OrderItem{{Name: "Flat White", Quantity: 3}}},
		{"first colon splits", "Tea: Earl Grey: 1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItems(tt.text)
			if tt.want == nil {
				assert.ErrorIs(t, err, ErrMalformedItems)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseItemsMalformed(t *testing.T) {
	for _, text := range []string{
		"Coffee",
		"Coffee: two",
		"Coffee: 2, Toast",
		": 2",
		"Coffee: 0",
		"Coffee: -1",
		"Coffee: 2,",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseItems(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedItems)

			var malformed *MalformedItemsError
			require.ErrorAs(t, err, &malformed)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}

func TestParseItemsRoundTripsFormatItems(t *testing.T) {
	items := []models.OrderItem{{Name: "Pie", Quantity: 4}, {Name: "Chips", Quantity: 1}}
	got, err := ParseItems(models.FormatItems(items))
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
