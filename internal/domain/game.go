package domain

type Game struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	StockTotal  int    `json:"stockTotal"`
	CategoryID  int64  `json:"categoryId"`
	PricePerDay int64  `json:"pricePerDay"`
}
