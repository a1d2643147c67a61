package domain

import "time"

// DateLayout is the wire format for calendar dates. Rentals only carry
// dates, never times of day.
const DateLayout = "2006-01-02"

type Rental struct {
	ID            int64      `json:"id"`
	CustomerID    int64      `json:"customerId"`
	GameID        int64      `json:"gameId"`
	RentDate      time.Time  `json:"rentDate"`
	DaysRented    int        `json:"daysRented"`
	ReturnDate    *time.Time `json:"returnDate"`
	OriginalPrice int64      `json:"originalPrice"`
	DelayFee      *int64     `json:"delayFee"`
}

// Returned reports whether the rental has been finalized. ReturnDate and
// DelayFee are set together in a single update, so checking one is enough.
func (r *Rental) Returned() bool {
	return r.ReturnDate != nil
}

// RentalListing is a rental row joined with its customer and game for the
// listing endpoint. Dates are rendered as yyyy-mm-dd strings; ReturnDate is
// null while the rental is still open.
type RentalListing struct {
	ID            int64          `json:"id"`
	CustomerID    int64          `json:"customerId"`
	GameID        int64          `json:"gameId"`
	RentDate      string         `json:"rentDate"`
	DaysRented    int            `json:"daysRented"`
	ReturnDate    *string        `json:"returnDate"`
	OriginalPrice int64          `json:"originalPrice"`
	DelayFee      *int64         `json:"delayFee"`
	Customer      RentalCustomer `json:"customer"`
	Game          RentalGame     `json:"game"`
}

type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RentalGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
