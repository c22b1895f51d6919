package models

const (
	OrderStatusUnprocessed = "unprocessed"
	OrderStatusProcessed   = "processed"
)

type Order struct {
	ID            string      `json:"id"`
	FirstName     string      `json:"firstname"`
	LastName      string      `json:"lastname"`
	PhoneNumber   string      `json:"phonenumber"`
	Address       string      `json:"address"`
	Status        string      `json:"status"`
	Comment       string      `json:"comment"`
	PaymentMethod string      `json:"payment_method"` // e.g., "card", "cash"
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at order time
}

// TotalPrice is the sum of line price times quantity.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ProductIDs returns the distinct product identifiers of the order,
// in first-seen order. Quantities are irrelevant to eligibility.
func (o *Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
