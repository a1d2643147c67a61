package service

import (
	"context"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/pkg/errors"
)

type gameService struct {
	gameRepo     repository.GameRepository
	categoryRepo repository.CategoryRepository
}

func NewGameService(gameRepo repository.GameRepository, categoryRepo repository.CategoryRepository) GameService {
	return &gameService{gameRepo: gameRepo, categoryRepo: categoryRepo}
}

func (s *gameService) Create(ctx context.Context, game *domain.Game) error {
	if _, err := s.categoryRepo.GetByID(ctx, game.CategoryID); err != nil {
		return errors.Wrap(err, "category")
	}

	// Game names are unique case-insensitively.
	exists, err := s.gameRepo.ExistsByName(ctx, game.Name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrConflict
	}

	return s.gameRepo.Create(ctx, game)
}

func (s *gameService) List(ctx context.Context, namePrefix string) ([]domain.Game, error) {
	return s.gameRepo.List(ctx, namePrefix)
}
