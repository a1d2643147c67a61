package postgres

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/pkg/errors"

	"boardcamp-backend/internal/repository"
)

const dialectPostgres = "postgres"

// buildRentalListQuery assembles the rentals listing statement from the spec.
// Only the clause structure depends on the spec: which filters appear in the
// WHERE, and whether default ordering and pagination apply. Every value is a
// bound parameter; nothing from the spec is ever spliced into the SQL text.
//
// Unfiltered listings are ordered by rental id with OFFSET/LIMIT applied.
// Filtered listings (either or both of customer and game, AND semantics)
// return all matches and ignore pagination.
func buildRentalListQuery(spec repository.RentalListSpec) (string, []interface{}, error) {
	stmt := goqu.Dialect(dialectPostgres).
		From(goqu.T("rentals")).
		Select(
			goqu.I("rentals.id").As("id"),
			goqu.I("rentals.customerId").As("customerId"),
			goqu.I("rentals.gameId").As("gameId"),
			goqu.I("rentals.rentDate").As("rentDate"),
			goqu.I("rentals.daysRented").As("daysRented"),
			goqu.I("rentals.returnDate").As("returnDate"),
			goqu.I("rentals.originalPrice").As("originalPrice"),
			goqu.I("rentals.delayFee").As("delayFee"),
			goqu.I("customers.name").As("customerName"),
			goqu.I("games.name").As("gameName"),
			goqu.I("games.categoryId").As("categoryId"),
			goqu.I("categories.name").As("categoryName"),
		).
		Join(goqu.T("customers"), goqu.On(goqu.I("customers.id").Eq(goqu.I("rentals.customerId")))).
		Join(goqu.T("games"), goqu.On(goqu.I("games.id").Eq(goqu.I("rentals.gameId")))).
		Join(goqu.T("categories"), goqu.On(goqu.I("categories.id").Eq(goqu.I("games.categoryId"))))

	if spec.Filtered() {
		if spec.CustomerID != nil {
			stmt = stmt.Where(goqu.I("rentals.customerId").Eq(*spec.CustomerID))
		}
		if spec.GameID != nil {
			stmt = stmt.Where(goqu.I("rentals.gameId").Eq(*spec.GameID))
		}
	} else {
		stmt = stmt.Order(goqu.I("rentals.id").Asc())
		if spec.Offset > 0 {
			stmt = stmt.Offset(spec.Offset)
		}
		if spec.Limit > 0 {
			stmt = stmt.Limit(spec.Limit)
		}
	}

	query, args, err := stmt.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errors.Wrap(err, "build rental listing query")
	}
	return query, args, nil
}
