package handlers

import (
	"net/http"

	"github.com/alfagnish/places-api/internal/apperr"
	"github.com/alfagnish/places-api/internal/logger"
	"github.com/alfagnish/places-api/internal/store"
)

// SystemHandler provides the landing endpoints, the health check, and the
// router's fallback responses.
type SystemHandler struct {
	users  *store.UserStore
	places *store.PlaceStore
	log    *logger.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(users *store.UserStore, places *store.PlaceStore, log *logger.Logger) *SystemHandler {
	return &SystemHandler{users: users, places: places, log: log}
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
	Users  int    `json:"users" example:"2"`
	Places int    `json:"places" example:"2"`
}

// Home answers the root path with a fixed greeting.
//
//	@Summary	Home page
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ [get]
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"home": "Home page"})
}

// Index is the hello-world endpoint.
//
//	@Summary	Hello world
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/index [get]
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"hello": "Hello World!"})
}

// Health reports liveness together with the size of each store.
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Users:  h.users.Len(),
		Places: h.places.Len(),
	})
}

// NotFound is the router fallback for unmatched paths.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, h.log, apperr.RouteNotFound)
}

// MethodNotAllowed is the router fallback for a known path with the wrong method.
func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, h.log, apperr.MethodNotAllowed)
}
