package handler

import (
	"net/http"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/middleware"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/pizza-nz/backoffice-service/internal/session"
)

// UserHandler handles account and session requests
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// LoginResponse carries the bearer token for a new session
type LoginResponse struct {
	Token   string           `json:"token"`
	Session *session.Session `json:"session"`
}

// Register creates an account
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.RegisterRequest
	if !api.Decode(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusCreated, user)
}

// Login authenticates and opens a session
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.LoginRequest
	if !api.Decode(w, r, &req) {
		return
	}

	token, sess, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, LoginResponse{Token: token, Session: sess})
}

// Logout ends the caller's session
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		api.Unauthorized(w, "not logged in")
		return
	}

	if err := h.authService.Logout(sess); err != nil {
		api.Unauthorized(w, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session returns the caller's session
func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		api.Unauthorized(w, "not logged in")
		return
	}

	api.RespondJSON(w, http.StatusOK, sess)
}

// ChangePassword changes the password of the logged-in user
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		api.MethodNotAllowed(w)
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		api.Unauthorized(w, "not logged in")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if !api.Decode(w, r, &req) {
		return
	}

	if err := h.authService.ChangePassword(r.Context(), sess.Username, req.CurrentPassword, req.NewPassword); err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUsers lists accounts and deletes them by ID
func (h *UserHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	path := api.PathID(r, "/users")

	if path == "" {
		if r.Method != http.MethodGet {
			api.MethodNotAllowed(w)
			return
		}
		users, err := h.authService.ListUsers(r.Context())
		if err != nil {
			api.Error(w, err)
			return
		}
		api.RespondJSON(w, http.StatusOK, users)
		return
	}

	id, ok := api.ParseID(w, path)
	if !ok {
		return
	}
	if r.Method != http.MethodDelete {
		api.MethodNotAllowed(w)
		return
	}

	if err := h.authService.DeleteUser(r.Context(), id); err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
