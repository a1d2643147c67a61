package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/pkg/errors"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (name, phone) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, customer.Name, customer.Phone).Scan(&customer.ID); err != nil {
		return errors.Wrap(err, "insert customer")
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, phone FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get customer")
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, phone FROM customers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list customers")
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, errors.Wrap(err, "scan customer")
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
