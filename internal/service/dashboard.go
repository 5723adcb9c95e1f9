package service

import (
	"context"
	"fmt"

	"github.com/pizza-nz/backoffice-service/internal/models"
)

// DashboardService reports record totals for the home page
type DashboardService struct {
	menu, reservations, orders, staff Counter
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(menu, reservations, orders, staff Counter) *DashboardService {
	return &DashboardService{
		menu:         menu,
		reservations: reservations,
		orders:       orders,
		staff:        staff,
	}
}

// Summary counts the records in each collection
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary

	counts := []struct {
		name    string
		counter Counter
		dest    *int64
	}{
		{"menu items", s.menu, &summary.MenuItems},
		{"reservations", s.reservations, &summary.Reservations},
		{"orders", s.orders, &summary.Orders},
		{"staff", s.staff, &summary.Staff},
	}

	for _, c := range counts {
		n, err := c.counter.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.dest = n
	}

	return &summary, nil
}
