package http

import (
	"errors"
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	svc      service.CategoryService
	validate *validator.Validate
}

func NewCategoryHandler(svc service.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{svc: svc, validate: validate}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "category already exists")
			return
		}
		logger.Error("Category create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		logger.Error("Category list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}
