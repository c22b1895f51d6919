package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/foodcart/restorank/internal/models"
)

type ProductFactory struct{}

func (pf *ProductFactory) CreateProduct() *models.Product {
	return &models.Product{
		ID:          cuid.New(),
		Name:        generateRandomDish(),
		Price:       fake.Float64(2, 5, 50),
		Description: fake.Lorem().Sentence(8),
	}
}

// CreateMenuItems gives the restaurant a menu entry per product, each
// available with probability availability.
func (pf *ProductFactory) CreateMenuItems(restaurant *models.Restaurant, products []*models.Product, availability float64) []*models.MenuItem {
	items := make([]*models.MenuItem, 0, len(products))
	for _, product := range products {
		items = append(items, &models.MenuItem{
			RestaurantID: restaurant.ID,
			ProductID:    product.ID,
			Availability: rand.Float64() < availability,
		})
	}
	return items
}

func generateRandomDish() string {
	dishes := []string{
		"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme",
		"Chicken Tikka Masala", "Vegetable Curry", "Beef Madras",
		"Pad Thai", "Ramen", "Carbonara", "Lasagna", "Caesar Salad",
		"Falafel Wrap", "Shawarma", "Burrito", "Fish and Chips",
		"Cheeseburger", "Tom Yum Soup", "Pho", "Gyoza",
	}
	return dishes[rand.Intn(len(dishes))]
}
