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

// StaffHandler handles staff-related requests
type StaffHandler struct {
	staffService *service.StaffService
	notifier     Notifier
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService, notifier Notifier) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		notifier:     notifier,
	}
}

// HandleStaff handles requests for staff members
func (h *StaffHandler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	path := api.PathID(r, "/staff")

	// Check for special endpoints
	if path == "positions" {
		if r.Method != http.MethodGet {
			api.MethodNotAllowed(w)
			return
		}
		api.RespondJSON(w, http.StatusOK, models.Positions())
		return
	}

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.listStaff(w, r)
		case http.MethodPost:
			h.createStaff(w, r)
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
		h.getStaff(w, r, id)
	case http.MethodPut:
		h.updateStaff(w, r, id)
	case http.MethodDelete:
		h.deleteStaff(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

func (h *StaffHandler) listStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffService.ListStaff(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) getStaff(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	member, err := h.staffService.GetStaff(r.Context(), id)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) createStaff(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if !api.Decode(w, r, &req) {
		return
	}

	member, err := h.staffService.CreateStaff(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionStaff, websockets.ActionCreate, member.ID.Hex())
	api.RespondJSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) updateStaff(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	var req models.StaffRequest
	if !api.Decode(w, r, &req) {
		return
	}

	member, err := h.staffService.UpdateStaff(r.Context(), id, req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionStaff, websockets.ActionUpdate, id.Hex())
	api.RespondJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) deleteStaff(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	if err := h.staffService.DeleteStaff(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionStaff, websockets.ActionDelete, id.Hex())
	w.WriteHeader(http.StatusNoContent)
}
