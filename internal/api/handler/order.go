package handler

import (
	"net/http"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/pizza-nz/backoffice-service/internal/websockets"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService *service.OrderService
	notifier     Notifier
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, notifier Notifier) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		notifier:     notifier,
	}
}

// orderView is an order as the dashboard shows it: the parsed items plus
// the same list in its editable text form.
type orderView struct {
	*models.Order
	ItemsText string `json:"items_text"`
}

func viewOrder(order *models.Order) orderView {
	return orderView{Order: order, ItemsText: models.FormatItems(order.Items)}
}

// HandleOrders handles requests for orders
func (h *OrderHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	path := api.PathID(r, "/orders")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.listOrders(w, r)
		case http.MethodPost:
			h.createOrder(w, r)
		default:
			api.MethodNotAllowed(w)
		}
		return
	}

	id, ok := api.ParseID(w, path)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getOrder(w, r, id)
	case http.MethodPut:
		h.updateOrder(w, r, id)
	case http.MethodDelete:
		h.deleteOrder(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, viewOrder(&orders[i]))
	}
	api.RespondJSON(w, http.StatusOK, views)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, viewOrder(order))
}

func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !api.Decode(w, r, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionOrders, websockets.ActionCreate, order.ID.Hex())
	api.RespondJSON(w, http.StatusCreated, viewOrder(order))
}

func (h *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	var req models.OrderRequest
	if !api.Decode(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionOrders, websockets.ActionUpdate, id.Hex())
	api.RespondJSON(w, http.StatusOK, viewOrder(order))
}

func (h *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionOrders, websockets.ActionDelete, id.Hex())
	w.WriteHeader(http.StatusNoContent)
}
