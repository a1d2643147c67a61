package service

import (
	"context"
	"time"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
	"boardcamp-backend/internal/utils"

	"github.com/pkg/errors"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	gameRepo     repository.GameRepository
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	gameRepo repository.GameRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		gameRepo:     gameRepo,
		now:          time.Now,
	}
}

func (s *rentalService) Create(ctx context.Context, customerID, gameID int64, daysRented int) error {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return errors.Wrap(err, "customer")
	}

	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return errors.Wrap(err, "game")
	}

	rental := &domain.Rental{
		CustomerID:    customerID,
		GameID:        gameID,
		DaysRented:    daysRented,
		OriginalPrice: utils.OriginalPrice(game.PricePerDay, daysRented),
		RentDate:      utils.TruncateToDay(s.now()),
	}
	return s.rentalRepo.Create(ctx, rental)
}

func (s *rentalService) List(ctx context.Context, spec repository.RentalListSpec) ([]domain.RentalListing, error) {
	return s.rentalRepo.List(ctx, spec)
}

func (s *rentalService) Return(ctx context.Context, rentalID int64) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return errors.Wrap(err, "rental")
	}
	if rental.Returned() {
		return domain.ErrAlreadyReturned
	}

	today := utils.TruncateToDay(s.now())
	lateDays := utils.LateDays(rental.RentDate, rental.DaysRented, today)
	fee := utils.DelayFee(lateDays, rental.OriginalPrice)

	// Return date and fee land in one conditional statement, so even if a
	// concurrent return slipped in between the read above and this write,
	// the first one wins and this call is a no-op.
	return s.rentalRepo.MarkReturned(ctx, rentalID, today, fee)
}

func (s *rentalService) Delete(ctx context.Context, rentalID int64) error {
	return s.rentalRepo.Delete(ctx, rentalID)
}
