package service_test

import (
	"context"
	"testing"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestGameService_Create(t *testing.T) {
	ctx := context.Background()

	game := func() *domain.Game {
		return &domain.Game{Name: "Detetive", Image: "http://example.com/d.jpg", StockTotal: 2, CategoryID: 1, PricePerDay: 2000}
	}

	t.Run("Success", func(t *testing.T) {
		gameRepo := new(MockGameRepo)
		categoryRepo := new(MockCategoryRepo)
		svc := service.NewGameService(gameRepo, categoryRepo)

		categoryRepo.On("GetByID", ctx, int64(1)).Return(&domain.Category{ID: 1, Name: "Investigacao"}, nil)
		gameRepo.On("ExistsByName", ctx, "Detetive").Return(false, nil)
		gameRepo.On("Create", ctx, game()).Return(nil)

		assert.NoError(t, svc.Create(ctx, game()))
	})

	t.Run("Unknown category", func(t *testing.T) {
		gameRepo := new(MockGameRepo)
		categoryRepo := new(MockCategoryRepo)
		svc := service.NewGameService(gameRepo, categoryRepo)

		categoryRepo.On("GetByID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		assert.ErrorIs(t, svc.Create(ctx, game()), domain.ErrNotFound)
		gameRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate name", func(t *testing.T) {
		gameRepo := new(MockGameRepo)
		categoryRepo := new(MockCategoryRepo)
		svc := service.NewGameService(gameRepo, categoryRepo)

		categoryRepo.On("GetByID", ctx, int64(1)).Return(&domain.Category{ID: 1}, nil)
		gameRepo.On("ExistsByName", ctx, "Detetive").Return(true, nil)

		assert.ErrorIs(t, svc.Create(ctx, game()), domain.ErrConflict)
		gameRepo.AssertNotCalled(t, "Create")
	})
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		svc := service.NewCategoryService(categoryRepo)

		categoryRepo.On("ExistsByName", ctx, "Estrategia").Return(false, nil)
		categoryRepo.On("Create", ctx, &domain.Category{Name: "Estrategia"}).Return(nil)

		category, err := svc.Create(ctx, "Estrategia")
		assert.NoError(t, err)
		assert.Equal(t, "Estrategia", category.Name)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		svc := service.NewCategoryService(categoryRepo)

		categoryRepo.On("ExistsByName", ctx, "Estrategia").Return(true, nil)

		_, err := svc.Create(ctx, "Estrategia")
		assert.ErrorIs(t, err, domain.ErrConflict)
		categoryRepo.AssertNotCalled(t, "Create")
	})
}
