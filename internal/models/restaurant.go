package models

type Restaurant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

// MenuItem relates a restaurant to a product it may stock.
// Only entries with Availability true count towards eligibility.
type MenuItem struct {
	RestaurantID string `json:"restaurant_id"`
	ProductID    string `json:"product_id"`
	Availability bool   `json:"availability"`
}
