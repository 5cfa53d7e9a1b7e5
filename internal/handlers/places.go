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

// putPlaceRequest is the body of PUT /places/{place_id}. Other keys are
// ignored; the id always comes from the path.
type putPlaceRequest struct {
	Name     string `json:"name" validate:"required" example:"Louvre"`
	Location string `json:"location" validate:"required" example:"Paris"`
}

var putPlaceSchema = validation.NewSchema[putPlaceRequest]()

// PlacesHandler serves the place collection under /places.
type PlacesHandler struct {
	places *store.PlaceStore
	log    *logger.Logger
}

// NewPlacesHandler creates a new PlacesHandler.
func NewPlacesHandler(places *store.PlaceStore, log *logger.Logger) *PlacesHandler {
	metrics.StoreRecords.WithLabelValues("places").Set(float64(places.Len()))
	return &PlacesHandler{places: places, log: log}
}

// Routes registers place routes on the given chi router.
func (h *PlacesHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{place_id}", h.Get)
	r.Put("/{place_id}", h.Put)
	r.Delete("/{place_id}", h.Delete)
}

// List returns all places in insertion order.
//
//	@Summary	List places
//	@Tags		places
//	@Produce	json
//	@Success	200	{array}	store.Place
//	@Router		/places [get]
func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.places.List())
}

// Get returns a single place by id.
//
//	@Summary	Get a place
//	@Tags		places
//	@Produce	json
//	@Param		place_id	path		string	true	"Place id"
//	@Success	200			{object}	store.Place
//	@Failure	404			{object}	errorResponse
//	@Router		/places/{place_id} [get]
func (h *PlacesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "place_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	place, err := h.places.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = apperr.PlaceNotFound
		}
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

// Put creates or replaces the place at place_id.
//
//	@Summary	Create or replace a place
//	@Tags		places
//	@Accept		json
//	@Produce	json
//	@Param		place_id	path		string			true	"Place id"
//	@Param		place		body		putPlaceRequest	true	"Place name and location"
//	@Success	200			{object}	store.Place		"Replaced"
//	@Success	201			{object}	store.Place		"Created"
//	@Failure	400			{object}	errorResponse
//	@Failure	415			{object}	errorResponse
//	@Router		/places/{place_id} [put]
func (h *PlacesHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "place_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	req, err := decodeJSON(r, putPlaceSchema)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	place, created := h.places.Upsert(store.Place{ID: id, Name: req.Name, Location: req.Location})

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		metrics.StoreRecords.WithLabelValues("places").Set(float64(h.places.Len()))
	}
	h.log.WithFields(r.Context(), logger.Fields{"place_id": id, "created": created}).Infof("place stored")
	writeJSON(w, status, place)
}

// Delete removes the place at place_id.
//
//	@Summary	Delete a place
//	@Tags		places
//	@Param		place_id	path	string	true	"Place id"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Router		/places/{place_id} [delete]
func (h *PlacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "place_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.places.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = apperr.PlaceNotFound
		}
		writeError(w, r, h.log, err)
		return
	}

	metrics.StoreRecords.WithLabelValues("places").Set(float64(h.places.Len()))
	h.log.WithFields(r.Context(), logger.Fields{"place_id": id}).Infof("place deleted")
	w.WriteHeader(http.StatusNoContent)
}
