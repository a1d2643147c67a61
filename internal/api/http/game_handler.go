package http

import (
	"errors"
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type GameHandler struct {
	svc      service.GameService
	validate *validator.Validate
}

func NewGameHandler(svc service.GameService, validate *validator.Validate) *GameHandler {
	return &GameHandler{svc: svc, validate: validate}
}

type createGameRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"required"`
	StockTotal  int    `json:"stockTotal" validate:"required,gte=1"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	PricePerDay int64  `json:"pricePerDay" validate:"required,gte=1"`
}

// POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	game := &domain.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	}
	if err := h.svc.Create(r.Context(), game); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusBadRequest, "invalid category id")
		case errors.Is(err, domain.ErrConflict):
			writeError(w, http.StatusConflict, "game already exists")
		default:
			logger.Error("Game create failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

// GET /games?name=
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		logger.Error("Game list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}
