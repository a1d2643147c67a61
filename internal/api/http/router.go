package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Category *CategoryHandler
	Game     *GameHandler
	Customer *CustomerHandler
	Rental   *RentalHandler
}

func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, Logging, Recover)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/categories", h.Category.List).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.Category.Create).Methods(http.MethodPost)

	r.HandleFunc("/games", h.Game.List).Methods(http.MethodGet)
	r.HandleFunc("/games", h.Game.Create).Methods(http.MethodPost)

	r.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	r.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id:[0-9]+}", h.Customer.Get).Methods(http.MethodGet)

	r.HandleFunc("/rentals", h.Rental.List).Methods(http.MethodGet)
	r.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id:[0-9]+}/return", h.Rental.Return).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id:[0-9]+}", h.Rental.Delete).Methods(http.MethodDelete)

	return r
}
