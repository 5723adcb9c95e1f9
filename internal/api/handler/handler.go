package handler

// Notifier publishes record changes to connected dashboards
type Notifier interface {
	Notify(collection, action, id string)
}
