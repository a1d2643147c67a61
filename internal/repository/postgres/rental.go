package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type rentalRepository struct {
	db  *sql.DB
	dbx *sqlx.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db, dbx: sqlx.NewDb(db, dialectPostgres)}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals ("customerId", "gameId", "daysRented", "originalPrice", "rentDate", "returnDate", "delayFee")
	          VALUES ($1, $2, $3, $4, $5, NULL, NULL) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		rental.CustomerID, rental.GameID, rental.DaysRented, rental.OriginalPrice, rental.RentDate,
	).Scan(&rental.ID)
	if err != nil {
		return errors.Wrap(err, "insert rental")
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var returnDate sql.NullTime
	var delayFee sql.NullInt64

	query := `SELECT id, "customerId", "gameId", "rentDate", "daysRented", "returnDate", "originalPrice", "delayFee"
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented,
		&returnDate, &rt.OriginalPrice, &delayFee,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get rental")
	}

	if returnDate.Valid {
		t := returnDate.Time
		rt.ReturnDate = &t
	}
	if delayFee.Valid {
		v := delayFee.Int64
		rt.DelayFee = &v
	}
	return rt, nil
}

// rentalListRow is the flat shape of one joined listing row; List reshapes it
// into the nested domain.RentalListing.
type rentalListRow struct {
	ID            int64         `db:"id"`
	CustomerID    int64         `db:"customerId"`
	GameID        int64         `db:"gameId"`
	RentDate      time.Time     `db:"rentDate"`
	DaysRented    int           `db:"daysRented"`
	ReturnDate    sql.NullTime  `db:"returnDate"`
	OriginalPrice int64         `db:"originalPrice"`
	DelayFee      sql.NullInt64 `db:"delayFee"`
	CustomerName  string        `db:"customerName"`
	GameName      string        `db:"gameName"`
	CategoryID    int64         `db:"categoryId"`
	CategoryName  string        `db:"categoryName"`
}

func (row rentalListRow) toListing() domain.RentalListing {
	listing := domain.RentalListing{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		GameID:        row.GameID,
		RentDate:      row.RentDate.Format(domain.DateLayout),
		DaysRented:    row.DaysRented,
		OriginalPrice: row.OriginalPrice,
		Customer: domain.RentalCustomer{
			ID:   row.CustomerID,
			Name: row.CustomerName,
		},
		Game: domain.RentalGame{
			ID:           row.GameID,
			Name:         row.GameName,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
		},
	}
	if row.ReturnDate.Valid {
		s := row.ReturnDate.Time.Format(domain.DateLayout)
		listing.ReturnDate = &s
	}
	if row.DelayFee.Valid {
		v := row.DelayFee.Int64
		listing.DelayFee = &v
	}
	return listing
}

func (r *rentalRepository) List(ctx context.Context, spec repository.RentalListSpec) ([]domain.RentalListing, error) {
	query, args, err := buildRentalListQuery(spec)
	if err != nil {
		return nil, err
	}

	rows, err := r.dbx.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list rentals")
	}
	defer rows.Close()

	var listings []domain.RentalListing
	for rows.Next() {
		var row rentalListRow
		if err := rows.StructScan(&row); err != nil {
			return nil, errors.Wrap(err, "scan rental listing")
		}
		listings = append(listings, row.toListing())
	}
	return listings, rows.Err()
}

func (r *rentalRepository) MarkReturned(ctx context.Context, id int64, returnDate time.Time, delayFee int64) error {
	// The returnDate IS NULL guard makes the return transition atomic against
	// a concurrent return of the same rental. Rows affected is deliberately
	// not inspected: a no-op update is reported as success.
	query := `UPDATE rentals SET "returnDate" = $1, "delayFee" = $2
	          WHERE id = $3 AND "returnDate" IS NULL`
	if _, err := r.db.ExecContext(ctx, query, returnDate, delayFee, id); err != nil {
		return errors.Wrap(err, "mark rental returned")
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rentals WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return errors.Wrap(err, "delete rental")
	}
	return nil
}
