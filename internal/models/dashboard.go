package models

// DashboardSummary holds the record counts shown on the home page
type DashboardSummary struct {
	MenuItems    int64 `json:"menu_items"`
	Reservations int64 `json:"reservations"`
	Orders       int64 `json:"orders"`
	Staff        int64 `json:"staff"`
}
