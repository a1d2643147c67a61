package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/pkg/errors"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	query := `INSERT INTO games (name, image, "stockTotal", "categoryId", "pricePerDay")
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		game.Name, game.Image, game.StockTotal, game.CategoryID, game.PricePerDay,
	).Scan(&game.ID)
	if err != nil {
		return errors.Wrap(err, "insert game")
	}
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	g := &domain.Game{}
	query := `SELECT id, name, image, "stockTotal", "categoryId", "pricePerDay" FROM games WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get game")
	}
	return g, nil
}

func (r *gameRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM games WHERE name ILIKE $1)`
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check game name")
	}
	return exists, nil
}

func (r *gameRepository) List(ctx context.Context, namePrefix string) ([]domain.Game, error) {
	query := `SELECT id, name, image, "stockTotal", "categoryId", "pricePerDay" FROM games`
	args := []interface{}{}
	if namePrefix != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, namePrefix+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list games")
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.CategoryID, &g.PricePerDay); err != nil {
			return nil, errors.Wrap(err, "scan game")
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
