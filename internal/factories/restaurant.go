package factories

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/foodcart/restorank/internal/models"
)

var fake = faker.New()

type RestaurantFactory struct{}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config) *models.Restaurant {
	return &models.Restaurant{
		ID:           cuid.New(),
		Name:         fake.Company().Name(),
		Address:      randomAddress(config),
		ContactPhone: fake.Phone().Number(),
	}
}

// randomAddress produces a street address within the configured city so
// seeded restaurants and orders share a geocodable locality.
func randomAddress(config *models.Config) string {
	city := config.CityName
	if city == "" {
		city = fake.Address().City()
	}
	return fmt.Sprintf("%s, %s %d", city, fake.Address().StreetName(), rand.Intn(200)+1)
}
