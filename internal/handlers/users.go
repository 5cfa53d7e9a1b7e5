package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alfagnish/places-api/internal/apperr"
	"github.com/alfagnish/places-api/internal/logger"
	"github.com/alfagnish/places-api/internal/metrics"
	"github.com/alfagnish/places-api/internal/store"
	"github.com/alfagnish/places-api/internal/validation"
)

// createUserRequest is the only accepted shape of a POST /data body.
type createUserRequest struct {
	ID        string `json:"id" validate:"required" example:"3"`
	Firstname string `json:"Firstname" validate:"required" example:"Ana"`
	Surname   string `json:"Surname" validate:"required" example:"Lee"`
}

var createUserSchema = validation.NewSchema[createUserRequest](validation.Strict())

// UsersHandler serves the user collection under /data.
type UsersHandler struct {
	users *store.UserStore
	log   *logger.Logger
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(users *store.UserStore, log *logger.Logger) *UsersHandler {
	metrics.StoreRecords.WithLabelValues("users").Set(float64(users.Len()))
	return &UsersHandler{users: users, log: log}
}

// Routes registers user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
}

// List returns all users in insertion order.
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	store.User
//	@Router		/data [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.users.List())
}

// Get returns a single user by id.
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	store.User
//	@Failure	404	{object}	errorResponse
//	@Router		/data/{id} [get]
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = apperr.UserNotFound
		}
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Create adds a user. A duplicate id is rejected with 400, not 409.
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		createUserRequest	true	"Exactly id, Firstname and Surname"
//	@Success	201		{object}	store.User
//	@Failure	400		{object}	errorResponse
//	@Failure	415		{object}	errorResponse
//	@Router		/data [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON(r, createUserSchema)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	user := store.User{ID: req.ID, Firstname: req.Firstname, Surname: req.Surname}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			err = apperr.DuplicateUser
		}
		writeError(w, r, h.log, err)
		return
	}

	metrics.StoreRecords.WithLabelValues("users").Set(float64(h.users.Len()))
	h.log.WithFields(r.Context(), logger.Fields{"user_id": user.ID}).Infof("user created")
	writeJSON(w, http.StatusCreated, user)
}
