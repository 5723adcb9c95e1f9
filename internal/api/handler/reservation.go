package handler

import (
	"net/http"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/pizza-nz/backoffice-service/internal/websockets"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationHandler handles table booking requests
type ReservationHandler struct {
	reservationService *service.ReservationService
	notifier           Notifier
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService, notifier Notifier) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		notifier:           notifier,
	}
}

// HandleReservations handles requests for reservations
func (h *ReservationHandler) HandleReservations(w http.ResponseWriter, r *http.Request) {
	path := api.PathID(r, "/reservations")

	if path == "upcoming" {
		if r.Method != http.MethodGet {
			api.MethodNotAllowed(w)
			return
		}
		h.upcomingReservations(w, r)
		return
	}

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.listReservations(w, r)
		case http.MethodPost:
			h.createReservation(w, r)
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
		h.getReservation(w, r, id)
	case http.MethodPut:
		h.updateReservation(w, r, id)
	case http.MethodDelete:
		h.deleteReservation(w, r, id)
	default:
		api.MethodNotAllowed(w)
	}
}

// upcomingReservations lists bookings from now, or from the start of the
// ?from=YYYY-MM-DD day, in schedule order
func (h *ReservationHandler) upcomingReservations(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if raw := r.URL.Query().Get("from"); raw != "" {
		day, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			api.BadRequest(w, "from must be a YYYY-MM-DD date")
			return
		}
		from = day
	}

	reservations, err := h.reservationService.Upcoming(r.Context(), from)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationService.ListReservations(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) getReservation(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	res, err := h.reservationService.GetReservation(r.Context(), id)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if !api.Decode(w, r, &req) {
		return
	}

	res, err := h.reservationService.CreateReservation(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionReservations, websockets.ActionCreate, res.ID.Hex())
	api.RespondJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) updateReservation(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	var req models.ReservationRequest
	if !api.Decode(w, r, &req) {
		return
	}

	res, err := h.reservationService.UpdateReservation(r.Context(), id, req)
	if err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionReservations, websockets.ActionUpdate, id.Hex())
	api.RespondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) deleteReservation(w http.ResponseWriter, r *http.Request, id primitive.ObjectID) {
	if err := h.reservationService.DeleteReservation(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}

	h.notifier.Notify(repository.CollectionReservations, websockets.ActionDelete, id.Hex())
	w.WriteHeader(http.StatusNoContent)
}
