package http

import (
	"errors"
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type CustomerHandler struct {
	svc      service.CustomerService
	validate *validator.Validate
}

func NewCustomerHandler(svc service.CustomerService, validate *validator.Validate) *CustomerHandler {
	return &CustomerHandler{svc: svc, validate: validate}
}

type createCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,numeric,min=10,max=11"`
}

// POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer := &domain.Customer{Name: req.Name, Phone: req.Phone}
	if err := h.svc.Create(r.Context(), customer); err != nil {
		logger.Error("Customer create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		logger.Error("Customer list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// GET /customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	customer, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		logger.Error("Customer get failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, customer)
}
