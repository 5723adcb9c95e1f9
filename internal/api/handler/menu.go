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

// MenuHandler handles menu-related requests
type MenuHandler struct {
	menuService *service.MenuService
	notifier    Notifier
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, notifier Notifier) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		notifier:    notifier,
	}
}

// menuView adds the two-decimal display price to a menu item
type menuView struct {
	models.MenuItem
	DisplayPrice string `json:"display_price"`
}

func viewMenuItem(item models.MenuItem) menuView {
	return menuView{MenuItem: item, DisplayPrice: item.DisplayPrice()}
}

// HandleMenuItems handles requests for menu items
func (h *MenuHandler) HandleMenuItems(w http.ResponseWriter, r *http.Request) {
	path := api.PathID(r, "/menu/items")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.listItems(w, r)
		case http.MethodPost:
			h.createItem(w, r)
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
		h.getItem(w, r, id)
	case http.MethodPut:
		h.updateItem(w, r, id)
	case http.MethodDelete:
		h.deleteItem(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

// listItems lists all menu items
func (h *MenuHandler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuService.ListItems(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	views := make([]menuView, 0, len(items))
	for _, item := range items {
		views = append(views, viewMenuItem(item))
	}

	api.RespondJSON(w, http.StatusOK, views)
}

// getItem gets a menu item by ID
func (h *MenuHandler) getItem(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	item, err := h.menuService.GetItem(r.Context(), id)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, viewMenuItem(*item))
}

// createItem creates a new menu item
func (h *MenuHandler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
	if !api.Decode(w, r, &req) {
		return
	}

	item, err := h.menuService.CreateItem(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionMenu, websockets.ActionCreate, item.ID.Hex())
	api.RespondJSON(w, http.StatusCreated, viewMenuItem(*item))
}

// updateItem updates a menu item
func (h *MenuHandler) updateItem(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	var req models.MenuItemRequest
	if !api.Decode(w, r, &req) {
		return
	}

	item, err := h.menuService.UpdateItem(r.Context(), id, req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionMenu, websockets.ActionUpdate, id.Hex())
	api.RespondJSON(w, http.StatusOK, viewMenuItem(*item))
}

// deleteItem deletes a menu item
func (h *MenuHandler) deleteItem(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	if err := h.menuService.DeleteItem(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionMenu, websockets.ActionDelete, id.Hex())
	w.WriteHeader(http.StatusNoContent)
}
