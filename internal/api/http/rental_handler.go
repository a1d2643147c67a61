package http

import (
	"errors"
	"net/http"
	"strconv"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/repository"
	"boardcamp-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type RentalHandler struct {
	svc      service.RentalService
	validate *validator.Validate
}

func NewRentalHandler(svc service.RentalService, validate *validator.Validate) *RentalHandler {
	return &RentalHandler{svc: svc, validate: validate}
}

type createRentalRequest struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	GameID     int64 `json:"gameId" validate:"required,gt=0"`
	DaysRented int   `json:"daysRented" validate:"required,gt=0"`
}

// POST /rentals
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Create(r.Context(), req.CustomerID, req.GameID, req.DaysRented); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "customer or game not found")
			return
		}
		logger.Error("Rental create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// GET /rentals?customerId=&gameId=&offset=&limit=
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := parseListSpec(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := h.svc.List(r.Context(), spec)
	if err != nil {
		logger.Error("Rental list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if listings == nil {
		listings = []domain.RentalListing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

// POST /rentals/{id}/return
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Return(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "rental not found")
		case errors.Is(err, domain.ErrAlreadyReturned):
			writeError(w, http.StatusBadRequest, "rental already returned")
		default:
			logger.Error("Rental return failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DELETE /rentals/{id}
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	// Deleting an id that no longer exists still succeeds; delete is
	// idempotent from the caller's point of view.
	if err := h.svc.Delete(r.Context(), id); err != nil {
		logger.Error("Rental delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func parseListSpec(r *http.Request) (repository.RentalListSpec, error) {
	var spec repository.RentalListSpec
	q := r.URL.Query()

	if raw := q.Get("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return spec, errors.New("invalid customerId")
		}
		spec.CustomerID = &id
	}
	if raw := q.Get("gameId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return spec, errors.New("invalid gameId")
		}
		spec.GameID = &id
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return spec, errors.New("invalid offset")
		}
		spec.Offset = uint(n)
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return spec, errors.New("invalid limit")
		}
		spec.Limit = uint(n)
	}
	return spec, nil
}
