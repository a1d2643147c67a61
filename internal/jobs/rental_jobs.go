package jobs

import (
	"context"
	"time"

	"boardcamp-backend/internal/logger"
)

// OverdueRentalsReport logs every open rental that is past its due date
func (jr *JobRunner) OverdueRentalsReport() {
	jr.runWithRecovery("OverdueRentalsReport", func() {
		ctx := context.Background()

		// Open rentals whose due date (rentDate + daysRented) is in the past
		query := `
			SELECT r.id, r."customerId", c.name, r."rentDate", r."daysRented"
			FROM rentals r
			JOIN customers c ON c.id = r."customerId"
			WHERE r."returnDate" IS NULL
			  AND r."rentDate" + r."daysRented" * INTERVAL '1 day' < $1
			ORDER BY r."rentDate"
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		var overdueRentals []struct {
			ID           int64
			CustomerID   int64
			CustomerName string
			RentDate     time.Time
			DaysRented   int
		}

		for rows.Next() {
			var rental struct {
				ID           int64
				CustomerID   int64
				CustomerName string
				RentDate     time.Time
				DaysRented   int
			}
			if err := rows.Scan(&rental.ID, &rental.CustomerID, &rental.CustomerName, &rental.RentDate, &rental.DaysRented); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				continue
			}
			overdueRentals = append(overdueRentals, rental)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rentals report", "count", count)

		for _, rental := range overdueRentals {
			logger.Debug("Rental overdue",
				"rental_id", rental.ID,
				"customer_id", rental.CustomerID,
				"customer_name", rental.CustomerName,
				"rent_date", rental.RentDate.Format("2006-01-02"),
				"days_rented", rental.DaysRented)
		}
	})
}
