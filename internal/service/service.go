package service

import (
	"context"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type GameService interface {
	Create(ctx context.Context, game *domain.Game) error
	List(ctx context.Context, namePrefix string) ([]domain.Game, error)
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type RentalService interface {
	// Create opens a rental for an existing customer and game, pricing it at
	// the game's daily price times daysRented.
	Create(ctx context.Context, customerID, gameID int64, daysRented int) error
	List(ctx context.Context, spec repository.RentalListSpec) ([]domain.RentalListing, error)
	// Return finalizes an open rental, computing the delay fee from how many
	// days past due it comes back.
	Return(ctx context.Context, rentalID int64) error
	Delete(ctx context.Context, rentalID int64) error
}
