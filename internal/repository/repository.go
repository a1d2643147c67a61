package repository

import (
	"context"
	"time"

	"boardcamp-backend/internal/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// List returns all games, or only those whose name starts with
	// namePrefix (case-insensitive) when it is non-empty.
	List(ctx context.Context, namePrefix string) ([]domain.Game, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

// RentalListSpec selects which rentals a listing returns. With no filters the
// listing is ordered by id and paginated by Offset/Limit; as soon as either
// filter is set, pagination is ignored and every match is returned.
type RentalListSpec struct {
	CustomerID *int64
	GameID     *int64
	Offset     uint
	Limit      uint
}

// Filtered reports whether any filter is present, which switches the listing
// out of its paginated default mode.
func (s RentalListSpec) Filtered() bool {
	return s.CustomerID != nil || s.GameID != nil
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context, spec RentalListSpec) ([]domain.RentalListing, error)
	// MarkReturned finalizes the rental in a single conditional update so a
	// concurrent return cannot overwrite an already-recorded one. Updating a
	// missing or already-returned rental is a no-op, not an error.
	MarkReturned(ctx context.Context, id int64, returnDate time.Time, delayFee int64) error
	// Delete removes the rental row. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
