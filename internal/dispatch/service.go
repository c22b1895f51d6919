package dispatch

import (
	"context"
	"encoding/json"
	"log"

	"github.com/foodcart/restorank/internal/models"
	"github.com/foodcart/restorank/internal/repositories"
)

// OutputDestination receives ranked-order events. Satisfied by the
// output package's Kafka and console destinations.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
}

// OrderAssignment is the per-order result of a ranking run. Err is set
// when the order could not be ranked (unresolvable address, no line
// items); other orders of the same batch are unaffected.
type OrderAssignment struct {
	Order      *models.Order      `json:"order"`
	TotalPrice float64            `json:"total_price"`
	Ranked     []RankedRestaurant `json:"ranked_restaurants"`
	Err        error              `json:"-"`
}

type Service struct {
	restaurants repositories.RestaurantRepository
	menuItems   repositories.MenuItemRepository
	orders      repositories.OrderRepository
	resolver    Resolver

	output      OutputDestination
	rankedTopic string
}

func NewService(
	restaurants repositories.RestaurantRepository,
	menuItems repositories.MenuItemRepository,
	orders repositories.OrderRepository,
	resolver Resolver,
) *Service {
	return &Service{
		restaurants: restaurants,
		menuItems:   menuItems,
		orders:      orders,
		resolver:    resolver,
	}
}

// WithOutput publishes each successful assignment as a JSON event to
// the given destination and topic.
func (s *Service) WithOutput(output OutputDestination, topic string) *Service {
	s.output = output
	s.rankedTopic = topic
	return s
}

// AssignAll ranks every unprocessed order against the current menu
// state. The menu index and restaurant set are snapshotted once and
// used consistently across the whole batch. A failing order is
// reported in its assignment and never aborts the others.
func (s *Service) AssignAll(ctx context.Context) ([]OrderAssignment, error) {
	orders, err := s.orders.GetUnprocessed(ctx)
	if err != nil {
		return nil, err
	}
	return s.Assign(ctx, orders)
}

// Assign ranks the given orders. See AssignAll.
func (s *Service) Assign(ctx context.Context, orders []*models.Order) ([]OrderAssignment, error) {
	snapshot, err := s.menuItems.AvailabilitySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	index := NewMenuIndex(snapshot)

	allRestaurants, err := s.restaurants.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	assignments := make([]OrderAssignment, 0, len(orders))
	for _, order := range orders {
		assignment := OrderAssignment{
			Order:      order,
			TotalPrice: order.TotalPrice(),
		}

		eligible, err := EligibleRestaurants(order, index)
		if err != nil {
			log.Printf("order %s: eligibility failed: %v", order.ID, err)
			assignment.Err = err
			assignments = append(assignments, assignment)
			continue
		}

		ranked, err := rankByDistance(ctx, s.resolver, order, eligible, allRestaurants)
		if err != nil {
			log.Printf("order %s: ranking failed: %v", order.ID, err)
			assignment.Err = err
			assignments = append(assignments, assignment)
			continue
		}
		assignment.Ranked = ranked

		s.publish(&assignment)
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func (s *Service) publish(assignment *OrderAssignment) {
	if s.output == nil {
		return
	}
	msg, err := json.Marshal(assignment)
	if err != nil {
		log.Printf("order %s: marshalling assignment event: %v", assignment.Order.ID, err)
		return
	}
	if err := s.output.WriteMessage(s.rankedTopic, msg); err != nil {
		log.Printf("order %s: publishing assignment event: %v", assignment.Order.ID, err)
	}
}
