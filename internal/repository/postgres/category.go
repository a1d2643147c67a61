package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/pkg/errors"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return errors.Wrap(err, "insert category")
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name FROM categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get category")
	}
	return c, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name ILIKE $1)`
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check category name")
	}
	return exists, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.Wrap(err, "scan category")
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
