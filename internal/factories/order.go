package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/foodcart/restorank/internal/models"
)

type OrderFactory struct{}

func (of *OrderFactory) CreateOrder(config *models.Config, products []*models.Product) *models.Order {
	itemCount := rand.Intn(3) + 1
	items := make([]models.OrderItem, 0, itemCount)
	picked := make(map[string]struct{}, itemCount)
	for len(items) < itemCount && len(picked) < len(products) {
		product := products[rand.Intn(len(products))]
		if _, ok := picked[product.ID]; ok {
			continue
		}
		picked[product.ID] = struct{}{}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  rand.Intn(3) + 1,
			Price:     product.Price,
		})
	}

	return &models.Order{
		ID:            cuid.New(),
		FirstName:     fake.Person().FirstName(),
		LastName:      fake.Person().LastName(),
		PhoneNumber:   fake.Phone().Number(),
		Address:       randomAddress(config),
		Status:        models.OrderStatusUnprocessed,
		Comment:       fake.Lorem().Sentence(6),
		PaymentMethod: randomPaymentMethod(),
		Items:         items,
	}
}

func randomPaymentMethod() string {
	methods := []string{"card", "cash"}
	return methods[rand.Intn(len(methods))]
}
