package postgres

import (
	"database/sql"

	"boardcamp-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CategoryRepository
	repository.GameRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CategoryRepository: NewCategoryRepository(db),
		GameRepository:     NewGameRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}
